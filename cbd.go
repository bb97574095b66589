// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// Load 3 bytes into a 32-bit integer in little-endian order.
func load24LittleEndian(x []byte) uint32 {
	r := uint32(x[0])
	r |= uint32(x[1]) << 8
	r |= uint32(x[2]) << 16
	return r
}

// Load 4 bytes into a 32-bit integer in little-endian order.
func load32LittleEndian(x []byte) uint32 {
	r := uint32(x[0])
	r |= uint32(x[1]) << 8
	r |= uint32(x[2]) << 16
	r |= uint32(x[3]) << 24
	return r
}

// Given an array of uniformly random bytes, compute a polynomial with
// coefficients distributed according to a centered binomial distribution
// with parameter eta.
func (p *poly) cbd(buf []byte, eta int) {
	hardwareAccelImpl.cbdFn(p, buf, eta)
}

func cbdRef(p *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		for i := 0; i < kyberN/8; i++ {
			t := load32LittleEndian(buf[4*i:])
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555

			for j := 0; j < 8; j++ {
				a := int16((d >> uint(4*j)) & 0x3)
				b := int16((d >> uint(4*j+2)) & 0x3)
				p.coeffs[8*i+j] = a - b
			}
		}
	case 3:
		for i := 0; i < kyberN/4; i++ {
			t := load24LittleEndian(buf[3*i:])
			d := t & 0x00249249
			d += (t >> 1) & 0x00249249
			d += (t >> 2) & 0x00249249

			for j := 0; j < 4; j++ {
				a := int16((d >> uint(6*j)) & 0x7)
				b := int16((d >> uint(6*j+3)) & 0x7)
				p.coeffs[4*i+j] = a - b
			}
		}
	default:
		panic("kyber: eta must be in {2,3}")
	}
}
