// reduce.go - Montgomery and Barrett reduction.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const qInv = 62209 // q^-1 mod 2^16

// Montgomery reduction; given a 32-bit integer a, computes a 16-bit integer
// congruent to a * R^-1 mod q, where R=2^16, in {-q+1,...,q-1}.
func montgomeryReduce(a int32) int16 {
	u := int16(a * qInv)
	t := int32(u) * kyberQ
	return int16((a - t) >> 16)
}

// Barrett reduction; given a 16-bit integer a, computes the centered
// representative congruent to a mod q in {-(q-1)/2,...,(q-1)/2}.
func barrettReduce(a int16) int16 {
	const v = int16(((1 << 26) + kyberQ/2) / kyberQ)

	t := int16((int32(v)*int32(a) + (1 << 25)) >> 26)
	return a - t*kyberQ
}

// Multiplication of two field elements followed by Montgomery reduction.
func fqmul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}
