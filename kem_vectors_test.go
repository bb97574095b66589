// kem_vectors_test.go - Kyber KEM test vector tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// testRng is a deterministic io.Reader for reproducible test flows, backed
// by SHAKE-256 over a fixed seed.
type testRng struct {
	xof sha3.ShakeHash
}

func newTestRng(seed []byte) *testRng {
	xof := sha3.NewShake256()
	xof.Write([]byte("kyber test rng"))
	xof.Write(seed)
	return &testRng{xof: xof}
}

func (r *testRng) Read(b []byte) (int, error) {
	return r.xof.Read(b)
}

type vector struct {
	RngSeed string `json:"rngSeed"`
	Pk      string `json:"pk"`
	Sk      string `json:"sk"`
	Ct      string `json:"ct"`
	Ss      string `json:"ss"`
}

// TestKEMVectors checks the full KEM flow against known-answer vectors
// generated from the reference implementation with the deterministic test
// RNG. The vector files are large and are not checked into the git
// repository; the test is skipped when they are absent.
func TestKEMVectors(t *testing.T) {
	forceDisableHardwareAcceleration()
	doTestKEMVectors(t)

	if !canAccelerate {
		t.Log("Hardware acceleration not supported on this host.")
		return
	}
	mustInitHardwareAcceleration()
	doTestKEMVectors(t)
}

func doTestKEMVectors(t *testing.T) {
	impl := "_" + hardwareAccelImpl.name
	for _, p := range allParams {
		t.Run(p.Name()+impl, func(t *testing.T) { doTestKEMVectorsPick(t, p) })
	}
}

func doTestKEMVectorsPick(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	vecs, err := loadTestVectors(p)
	if err != nil {
		t.Skipf("loadTestVectors(): %v", err)
	}

	for idx, vec := range vecs {
		rng := newTestRng(mustUnhex(require, vec.RngSeed))

		pk, sk, err := p.GenerateKeyPair(rng)
		require.NoError(err, "GenerateKeyPair(): %v", idx)
		require.Equal(mustUnhex(require, vec.Pk), pk.Bytes(), "pk: %v", idx)
		require.Equal(mustUnhex(require, vec.Sk), sk.Bytes(), "sk: %v", idx)

		ct, ss, err := pk.KEMEncrypt(rng)
		require.NoError(err, "KEMEncrypt(): %v", idx)
		require.Equal(mustUnhex(require, vec.Ct), ct, "ct: %v", idx)
		require.Equal(mustUnhex(require, vec.Ss), ss, "ss: %v", idx)

		ss2 := sk.KEMDecrypt(ct)
		require.Equal(ss, ss2, "KEMDecrypt(): %v", idx)
	}
}

func loadTestVectors(p *ParameterSet) ([]*vector, error) {
	f, err := os.Open(filepath.Join("testdata", p.Name()+".json"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vecs []*vector
	if err = json.NewDecoder(f).Decode(&vecs); err != nil {
		return nil, err
	}

	return vecs, nil
}

func mustUnhex(require *require.Assertions, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(err, "hex.DecodeString()")
	return b
}
