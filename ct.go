// ct.go - Constant-time utilities.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// Compare two equal length byte slices without branching on the contents.
// The return value is the OR-accumulated XOR of corresponding bytes, and
// is zero iff a and b are equal.
func ctMemcmp(a, b []byte) byte {
	var r byte
	for i, v := range a {
		r |= v ^ b[i]
	}
	return r
}

// Collapse an accumulator (eg: the output of ctMemcmp) to a condition bit,
// 0 iff x is 0 and 1 otherwise, without branching.
func ctCondBit(x byte) byte {
	return (x | -x) >> 7
}

// Conditional move; overwrite r with x when cond is 1 and leave r untouched
// when cond is 0, without branching. cond MUST be 0 or 1.
func cmov(r, x []byte, cond byte) {
	mask := -cond
	for i := range r {
		r[i] ^= mask & (r[i] ^ x[i])
	}
}

// Conditional selection; write a into r when cond is 0 and b when cond is 1,
// without branching. cond MUST be 0 or 1.
func selectBytes(r, a, b []byte, cond byte) {
	mask := -cond
	for i := range r {
		r[i] = a[i] ^ mask&(a[i]^b[i])
	}
}
