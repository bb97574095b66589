// indcpa.go - Kyber IND-CPA encryption.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// Serialize the public key as concatenation of the serialized vector of
// polynomials pk and the public seed used to generate the matrix A.
func packPublicKey(r []byte, pk *polyVec, seed []byte) {
	pk.toBytes(r)
	copy(r[len(pk.vec)*polySize:], seed[:SymSize])
}

// De-serialize public key from a byte array; inverse of packPublicKey.
func unpackPublicKey(pk *polyVec, seed, packedPk []byte) {
	pk.fromBytes(packedPk)

	off := len(pk.vec) * polySize
	copy(seed, packedPk[off:off+SymSize])
}

// Serialize the ciphertext as concatenation of the compressed and serialized
// vector of polynomials b and the compressed and serialized polynomial v.
func packCiphertext(r []byte, b *polyVec, v *poly, p *ParameterSet) {
	b.compress(r, p.du)
	v.compress(r[p.polyVecCompressedSize:], p.dv)
}

// De-serialize and decompress ciphertext from a byte array; approximate
// inverse of packCiphertext.
func unpackCiphertext(b *polyVec, v *poly, c []byte, p *ParameterSet) {
	b.decompress(c, p.du)
	v.decompress(c[p.polyVecCompressedSize:], p.dv)
}

// Serialize the secret key.
func packSecretKey(r []byte, sk *polyVec) {
	sk.toBytes(r)
}

// De-serialize the secret key; inverse of packSecretKey.
func unpackSecretKey(sk *polyVec, packedSk []byte) {
	sk.fromBytes(packedSk)
}

// Run rejection sampling on uniform random bytes to generate uniform random
// integers mod q, two 12-bit candidates per 3 bytes. Returns the number of
// sampled coefficients.
func rejUniform(r []int16, buf []byte) int {
	var ctr, pos int
	for ctr < len(r) && pos+3 <= len(buf) {
		val0 := (uint16(buf[pos]) | uint16(buf[pos+1])<<8) & 0xFFF
		val1 := (uint16(buf[pos+1])>>4 | uint16(buf[pos+2])<<4) & 0xFFF
		pos += 3

		if val0 < kyberQ {
			r[ctr] = int16(val0)
			ctr++
		}
		if ctr < len(r) && val1 < kyberQ {
			r[ctr] = int16(val1)
			ctr++
		}
	}

	return ctr
}

// Deterministically generate matrix A (or the transpose of A) from a seed.
// Entries of the matrix are polynomials that look uniformly random. Performs
// rejection sampling on the output of SHAKE-128.
func genMatrix(a []polyVec, seed []byte, transposed bool) {
	const (
		shake128Rate     = 168 // xof.BlockSize() is not a constant.
		genMatrixNBlocks = (12*kyberN/8*(1<<12)/kyberQ + shake128Rate) / shake128Rate
	)
	var buf [genMatrixNBlocks * shake128Rate]byte

	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], seed)

	xof := sha3.NewShake128()

	for i, v := range a {
		for j, p := range v.vec {
			if transposed {
				extSeed[SymSize] = byte(i)
				extSeed[SymSize+1] = byte(j)
			} else {
				extSeed[SymSize] = byte(j)
				extSeed[SymSize+1] = byte(i)
			}

			xof.Write(extSeed[:])
			xof.Read(buf[:])

			bufLen := len(buf)
			ctr := rejUniform(p.coeffs[:], buf[:bufLen])
			for ctr < kyberN {
				// Preserve the unconsumed tail across the refill so that
				// no partial 3-byte group is dropped.
				off := bufLen % 3
				copy(buf[:off], buf[bufLen-off:bufLen])
				xof.Read(buf[off : off+shake128Rate])
				bufLen = off + shake128Rate
				ctr += rejUniform(p.coeffs[ctr:], buf[:bufLen])
			}

			xof.Reset()
		}
	}
}

type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) toBytes() []byte {
	return pk.packed
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = sha3.Sum256(b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// Generates public and private key for the CPA-secure public-key encryption
// scheme underlying Kyber.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	buf := make([]byte, SymSize+SymSize)
	if _, err := io.ReadFull(rng, buf[:SymSize]); err != nil {
		return nil, nil, err
	}

	sk := &indcpaSecretKey{
		packed: make([]byte, p.indcpaSecretKeySize),
	}
	pk := &indcpaPublicKey{
		packed: make([]byte, p.indcpaPublicKeySize),
	}

	h := sha3.New512()
	h.Write(buf[:SymSize])
	buf = h.Sum(buf[:0]) // (publicSeed || noiseSeed) = G(d)
	publicSeed, noiseSeed := buf[:SymSize], buf[SymSize:]

	a := p.allocMatrix()
	genMatrix(a, publicSeed, false)

	var nonce byte
	skpv := p.allocPolyVec()
	for _, pv := range skpv.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}

	skpv.ntt()
	e.ntt()

	// matrix-vector multiplication
	pkpv := p.allocPolyVec()
	for i, pv := range pkpv.vec {
		pv.pointwiseAcc(&a[i], &skpv)
		pv.tomont()
	}

	pkpv.add(&pkpv, &e)
	pkpv.reduce()

	packSecretKey(sk.packed, &skpv)
	packPublicKey(pk.packed, &pkpv, publicSeed)
	pk.h = sha3.Sum256(pk.packed)

	return pk, sk, nil
}

// Encryption function of the CPA-secure public-key encryption scheme
// underlying Kyber. Fully deterministic in (pk, m, coins).
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var k, v, epp poly
	var seed [SymSize]byte

	pkpv := p.allocPolyVec()
	unpackPublicKey(&pkpv, seed[:], pk.packed)

	k.fromMsg(m)

	at := p.allocMatrix()
	genMatrix(at, seed[:], true)

	var nonce byte
	sp := p.allocPolyVec()
	for _, pv := range sp.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}

	ep := p.allocPolyVec()
	for _, pv := range ep.vec {
		pv.getNoise(coins, nonce, p.eta2)
		nonce++
	}

	epp.getNoise(coins, nonce, p.eta2) // Don't need to increment nonce.

	sp.ntt()

	// matrix-vector multiplication
	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.pointwiseAcc(&at[i], &sp)
	}

	bp.invntt()
	bp.add(&bp, &ep)
	bp.reduce()

	v.pointwiseAcc(&pkpv, &sp)
	v.invntt()
	v.add(&v, &epp)
	v.add(&v, &k)
	v.reduce()

	packCiphertext(c, &bp, &v, p)
}

// Decryption function of the CPA-secure public-key encryption scheme
// underlying Kyber.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	var v, mp poly

	skpv, bp := p.allocPolyVec(), p.allocPolyVec()
	unpackCiphertext(&bp, &v, c, p)
	unpackSecretKey(&skpv, sk.packed)

	bp.ntt()

	mp.pointwiseAcc(&skpv, &bp)
	mp.invntt()

	mp.sub(&v, &mp)
	mp.reduce()

	mp.toMsg(m)
}

func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, 0, p.k)
	for i := 0; i < p.k; i++ {
		m = append(m, p.allocPolyVec())
	}
	return m
}

func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, 0, p.k)
	for i := 0; i < p.k; i++ {
		vec = append(vec, new(poly))
	}

	return polyVec{vec}
}
