// poly.go - Kyber polynomial.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// Elements of R_q = Z_q[X]/(X^n + 1). Represents polynomial coeffs[0] +
// X*coeffs[1] + X^2*coeffs[2] + ... + X^{n-1}*coeffs[n-1].
//
// Coefficients are kept as signed 16-bit centered representatives; callers
// track whether a given polynomial is in standard or bit-reversed (NTT)
// order, and whether it carries the Montgomery factor.
type poly struct {
	coeffs [kyberN]int16
}

// Compression and subsequent serialization of a polynomial, with d bits
// per coefficient (4 or 5).
func (p *poly) compress(r []byte, d int) {
	var t [8]uint16

	switch d {
	case 4:
		for i := 0; i < kyberN/2; i++ {
			for j := 0; j < 2; j++ {
				u := p.coeffs[2*i+j]
				u += (u >> 15) & kyberQ
				t[j] = ((uint16(u)<<4 + kyberQ/2) / kyberQ) & 15
			}
			r[i] = byte(t[0] | t[1]<<4)
		}
	case 5:
		for i := 0; i < kyberN/8; i++ {
			for j := 0; j < 8; j++ {
				u := p.coeffs[8*i+j]
				u += (u >> 15) & kyberQ
				t[j] = uint16(((uint32(u)<<5 + kyberQ/2) / kyberQ) & 31)
			}
			r[5*i+0] = byte(t[0] | t[1]<<5)
			r[5*i+1] = byte(t[1]>>3 | t[2]<<2 | t[3]<<7)
			r[5*i+2] = byte(t[3]>>1 | t[4]<<4)
			r[5*i+3] = byte(t[4]>>4 | t[5]<<1 | t[6]<<6)
			r[5*i+4] = byte(t[6]>>2 | t[7]<<3)
		}
	default:
		panic("kyber: d must be in {4,5}")
	}
}

// De-serialization and subsequent decompression of a polynomial; approximate
// inverse of poly.compress().
func (p *poly) decompress(a []byte, d int) {
	switch d {
	case 4:
		for i := 0; i < kyberN/2; i++ {
			p.coeffs[2*i+0] = int16((uint16(a[i]&15)*kyberQ + 8) >> 4)
			p.coeffs[2*i+1] = int16((uint16(a[i]>>4)*kyberQ + 8) >> 4)
		}
	case 5:
		var t [8]byte
		for i := 0; i < kyberN/8; i++ {
			t[0] = a[5*i+0]
			t[1] = a[5*i+0]>>5 | a[5*i+1]<<3
			t[2] = a[5*i+1] >> 2
			t[3] = a[5*i+1]>>7 | a[5*i+2]<<1
			t[4] = a[5*i+2]>>4 | a[5*i+3]<<4
			t[5] = a[5*i+3] >> 1
			t[6] = a[5*i+3]>>6 | a[5*i+4]<<2
			t[7] = a[5*i+4] >> 3

			for j := 0; j < 8; j++ {
				p.coeffs[8*i+j] = int16((uint32(t[j]&31)*kyberQ + 16) >> 5)
			}
		}
	default:
		panic("kyber: d must be in {4,5}")
	}
}

// Serialization of a polynomial, 12 bits per coefficient.
func (p *poly) toBytes(r []byte) {
	for i := 0; i < kyberN/2; i++ {
		// Map to positive standard representatives.
		t0 := uint16(p.coeffs[2*i])
		t0 += uint16(int16(t0)>>15) & kyberQ
		t1 := uint16(p.coeffs[2*i+1])
		t1 += uint16(int16(t1)>>15) & kyberQ

		r[3*i+0] = byte(t0)
		r[3*i+1] = byte(t0>>8) | byte(t1<<4)
		r[3*i+2] = byte(t1 >> 4)
	}
}

// De-serialization of a polynomial; inverse of poly.toBytes().
func (p *poly) fromBytes(a []byte) {
	for i := 0; i < kyberN/2; i++ {
		p.coeffs[2*i+0] = int16((uint16(a[3*i+0]) | uint16(a[3*i+1])<<8) & 0xFFF)
		p.coeffs[2*i+1] = int16((uint16(a[3*i+1])>>4 | uint16(a[3*i+2])<<4) & 0xFFF)
	}
}

// Convert a 32-byte message to a polynomial.
func (p *poly) fromMsg(msg []byte) {
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			mask := -int16((v >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & ((kyberQ + 1) / 2)
		}
	}
}

// Convert a polynomial to a 32-byte message.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := uint16(p.coeffs[8*i+j])
			t += uint16(int16(t)>>15) & kyberQ
			t = ((t << 1) + kyberQ/2) / kyberQ & 1
			msg[i] |= byte(t << uint(j))
		}
	}
}

// Sample a polynomial deterministically from a seed and a nonce, with the
// output polynomial close to a centered binomial distribution with
// parameter eta.
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, seed[:SymSize]...)
	extSeed = append(extSeed, nonce)

	buf := make([]byte, eta*kyberN/4)
	sha3.ShakeSum256(buf, extSeed)

	p.cbd(buf, eta)
}

// Computes negacyclic number-theoretic transform (NTT) of a polynomial in
// place, followed by a Barrett reduction of all coefficients; inputs
// assumed to be in normal order, output in bit-reversed order.
func (p *poly) ntt() {
	hardwareAccelImpl.nttFn(&p.coeffs)
	p.reduce()
}

// Computes inverse of negacyclic number-theoretic transform (NTT) of a
// polynomial in place; inputs assumed to be in bit-reversed order, output
// in normal order.
func (p *poly) invntt() {
	hardwareAccelImpl.invnttFn(&p.coeffs)
}

// Multiplication of two polynomials in the NTT domain.
func (p *poly) basemulMontgomery(a, b *poly) {
	for i := 0; i < kyberN/4; i++ {
		basemul(p.coeffs[4*i:], a.coeffs[4*i:], b.coeffs[4*i:], zetas[64+i])
		basemul(p.coeffs[4*i+2:], a.coeffs[4*i+2:], b.coeffs[4*i+2:], -zetas[64+i])
	}
}

// Multiply every coefficient by the Montgomery factor 2^16.
func (p *poly) tomont() {
	const f = (1 << 32) % kyberQ
	for i, v := range p.coeffs {
		p.coeffs[i] = montgomeryReduce(int32(v) * f)
	}
}

// Apply Barrett reduction to all coefficients.
func (p *poly) reduce() {
	for i, v := range p.coeffs {
		p.coeffs[i] = barrettReduce(v)
	}
}

// Add two polynomials; no reduction is performed.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

// Subtract two polynomials; no reduction is performed.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}
