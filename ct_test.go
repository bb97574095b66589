// ct_test.go - Constant-time utility tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectBytes(t *testing.T) {
	require := require.New(t)

	a := []byte{0x01, 0x02, 0x03, 0x04}
	b := []byte{0xFF, 0xEE, 0xDD, 0xCC}
	r := make([]byte, 4)

	selectBytes(r, a, b, 0)
	require.Equal(a, r, "cond = 0 selects a")

	selectBytes(r, a, b, 1)
	require.Equal(b, r, "cond = 1 selects b")
}

func TestCmov(t *testing.T) {
	require := require.New(t)

	x := []byte{0xAA, 0xBB, 0xCC, 0xDD}

	r := []byte{0x01, 0x02, 0x03, 0x04}
	cmov(r, x, 0)
	require.Equal([]byte{0x01, 0x02, 0x03, 0x04}, r, "cond = 0 leaves r")

	cmov(r, x, 1)
	require.Equal(x, r, "cond = 1 copies x")
}

func TestCtMemcmp(t *testing.T) {
	require := require.New(t)

	a := []byte{0x00, 0x01, 0x7F, 0x80, 0xFF}
	b := []byte{0x00, 0x01, 0x7F, 0x80, 0xFF}

	require.EqualValues(0, ctMemcmp(a, b), "equal slices")

	for i := range b {
		c := make([]byte, len(b))
		copy(c, b)
		c[i] ^= 0x40
		require.NotEqualValues(0, ctMemcmp(a, c), "differing byte %v", i)
	}
}

func TestCtCondBit(t *testing.T) {
	require := require.New(t)

	require.EqualValues(0, ctCondBit(0), "zero accumulator")
	for i := 1; i < 256; i++ {
		require.EqualValues(1, ctCondBit(byte(i)), "accumulator %#02x", i)
	}
}
