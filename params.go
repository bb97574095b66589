// params.go - Kyber parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	polySize = 384 // 12 bits per coefficient.
)

var (
	// Kyber512 is the Kyber-512 parameter set, which aims to provide security
	// equivalent to AES-128.
	//
	// This parameter set has a 1632 byte private key, 800 byte public key,
	// and a 768 byte cipher text.
	Kyber512 = newParameterSet("Kyber-512", 2)

	// Kyber768 is the Kyber-768 parameter set, which aims to provide security
	// equivalent to AES-192.
	//
	// This parameter set has a 2400 byte private key, 1184 byte public key,
	// and a 1088 byte cipher text.
	Kyber768 = newParameterSet("Kyber-768", 3)

	// Kyber1024 is the Kyber-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	//
	// This parameter set has a 3168 byte private key, 1568 byte public key,
	// and a 1568 byte cipher text.
	Kyber1024 = newParameterSet("Kyber-1024", 4)
)

// ParameterSet is a Kyber parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyCompressedSize    int
	polyVecSize           int
	polyVecCompressedSize int

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta2 = 2
	switch k {
	case 2:
		p.eta1 = 3
		p.du, p.dv = 10, 4
		p.polyCompressedSize = 128
		p.polyVecCompressedSize = k * 320
	case 3:
		p.eta1 = 2
		p.du, p.dv = 10, 4
		p.polyCompressedSize = 128
		p.polyVecCompressedSize = k * 320
	case 4:
		p.eta1 = 2
		p.du, p.dv = 11, 5
		p.polyCompressedSize = 160
		p.polyVecCompressedSize = k * 352
	default:
		panic("kyber: k must be in {2,3,4}")
	}

	p.polyVecSize = k * polySize

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.polyVecCompressedSize + p.polyCompressedSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // H(pk) and z
	p.cipherTextSize = p.indcpaSize

	return &p
}
