// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// Powers of the primitive 256-th root of unity (zeta = 17) in Montgomery
// form and bit-reversed order.
var zetas = [128]int16{
	2285, 2571, 2970, 1812, 1493, 1422, 287, 202,
	3158, 622, 1577, 182, 962, 2127, 1855, 1468,
	573, 2004, 264, 383, 2500, 1458, 1727, 3199,
	2648, 1017, 732, 608, 1787, 411, 3124, 1758,
	1223, 652, 2777, 1015, 2036, 1491, 3047, 1785,
	516, 3321, 3009, 2663, 1711, 2167, 126, 1469,
	2476, 3239, 3058, 830, 107, 1908, 3082, 2378,
	2931, 961, 1821, 2604, 448, 2264, 677, 2054,
	2226, 430, 555, 843, 2078, 871, 1550, 105,
	422, 587, 177, 3094, 3038, 2869, 1574, 1653,
	3083, 778, 1159, 3182, 2552, 1483, 2727, 1119,
	1739, 644, 2457, 349, 418, 329, 3173, 3254,
	817, 1097, 603, 610, 1322, 2044, 1864, 384,
	2114, 3193, 1218, 1994, 2455, 220, 2142, 1670,
	2144, 1799, 2051, 794, 1819, 2475, 2459, 478,
	3221, 3021, 996, 991, 958, 1869, 1522, 1628,
}

// Computes negacyclic number-theoretic transform (NTT) of a polynomial
// (vector of 256 coefficients) in place; inputs assumed to be in normal
// order, output is in bit-reversed order.
func nttRef(p *[kyberN]int16) {
	var j int
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start = j + length {
			zeta := zetas[k]
			k++
			for j = start; j < start+length; j++ {
				t := fqmul(zeta, p[j+length])
				p[j+length] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// Computes inverse of negacyclic number-theoretic transform (NTT) of a
// polynomial (vector of 256 coefficients) in place, and multiplies by the
// Montgomery factor 2^16; inputs assumed to be in bit-reversed order,
// output is in normal order.
func invnttRef(p *[kyberN]int16) {
	const f = 1441 // mont^2/128

	var j int
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start = j + length {
			zeta := zetas[k]
			k--
			for j = start; j < start+length; j++ {
				t := p[j]
				p[j] = barrettReduce(t + p[j+length])
				p[j+length] = p[j+length] - t
				p[j+length] = fqmul(zeta, p[j+length])
			}
		}
	}

	for i, v := range p {
		p[i] = fqmul(v, f)
	}
}

// Multiplication of polynomials in Z_q[X]/(X^2-zeta), used for the
// multiplication of elements in R_q in the NTT domain.
func basemul(r, a, b []int16, zeta int16) {
	r[0] = fqmul(a[1], b[1])
	r[0] = fqmul(r[0], zeta)
	r[0] += fqmul(a[0], b[0])
	r[1] = fqmul(a[0], b[1])
	r[1] += fqmul(a[1], b[0])
}
