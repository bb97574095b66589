// indcpa_test.go - Kyber IND-CPA tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestRejUniform(t *testing.T) {
	require := require.New(t)

	var r [kyberN]int16

	// Both 12-bit candidates out of range, nothing accepted.
	require.Equal(0, rejUniform(r[:], []byte{0xFF, 0xFF, 0xFF}), "all-ones triple")

	// val0 = 1, val1 = 2, both accepted.
	require.Equal(2, rejUniform(r[:], []byte{0x01, 0x20, 0x00}), "in-range triple")
	require.EqualValues(1, r[0], "val0")
	require.EqualValues(2, r[1], "val1")

	// val0 = 3329 is rejected (q itself is out of range), val1 = 3328 is
	// the largest accepted value.
	require.Equal(1, rejUniform(r[:], []byte{0x01, 0x0D, 0xD0}), "boundary triple")
	require.EqualValues(3328, r[0], "val1 at boundary")

	// Partial triples are never consumed.
	require.Equal(0, rejUniform(r[:], []byte{0x01, 0x20}), "partial triple")
}

func TestGenMatrix(t *testing.T) {
	require := require.New(t)

	p := Kyber768
	var seed [SymSize]byte
	sha3.ShakeSum128(seed[:], []byte("gen matrix"))

	a := p.allocMatrix()
	genMatrix(a, seed[:], false)

	// Coefficients are uniform in [0, q).
	var sum, n int64
	for i := range a {
		for j := range a[i].vec {
			for _, v := range a[i].vec[j].coeffs {
				require.GreaterOrEqual(v, int16(0), "A[%v][%v]", i, j)
				require.Less(v, int16(kyberQ), "A[%v][%v]", i, j)
				sum += int64(v)
				n++
			}
		}
	}
	mean := sum / n
	require.InDelta(kyberQ/2, mean, 100, "sample mean far from q/2")

	// Regenerating from the same seed is deterministic.
	a2 := p.allocMatrix()
	genMatrix(a2, seed[:], false)
	require.Equal(a, a2, "regenerated matrix")

	// The transposed variant swaps the XOF domain separation indices.
	at := p.allocMatrix()
	genMatrix(at, seed[:], true)
	for i := range a {
		for j := range a[i].vec {
			require.Equal(a[i].vec[j], at[j].vec[i], "A[%v][%v] vs At[%v][%v]", i, j, j, i)
		}
	}
}

func TestIndcpaRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, p := range allParams {
		pk, sk, err := p.indcpaKeyPair(newTestRng([]byte("indcpa " + p.Name())))
		require.NoError(err, "indcpaKeyPair()")

		var msg, coins, dec [SymSize]byte
		sha3.ShakeSum256(msg[:], []byte("indcpa message"))
		sha3.ShakeSum256(coins[:], []byte("indcpa coins"))

		ct := make([]byte, p.indcpaSize)
		p.indcpaEncrypt(ct, msg[:], pk, coins[:])
		p.indcpaDecrypt(dec[:], ct, sk)
		require.Equal(msg, dec, "%v: decrypted message", p.Name())

		// Encryption is deterministic in (pk, m, coins).
		ct2 := make([]byte, p.indcpaSize)
		p.indcpaEncrypt(ct2, msg[:], pk, coins[:])
		require.Equal(ct, ct2, "%v: replayed ciphertext", p.Name())
	}
}
