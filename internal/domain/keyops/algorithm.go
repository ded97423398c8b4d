package keyops

import (
	"fmt"
	"sync"
)

// AlgorithmID identifies one of the supported cryptographic algorithms.
// It is immutable once assigned to a key handle.
type AlgorithmID string

// Supported algorithm identifiers.
const (
	AlgorithmECCP256   AlgorithmID = "ECC-P256"
	AlgorithmECCP384   AlgorithmID = "ECC-P384"
	AlgorithmECCP521   AlgorithmID = "ECC-P521"
	AlgorithmKyber512  AlgorithmID = "Kyber512"
	AlgorithmKyber768  AlgorithmID = "Kyber768"
	AlgorithmKyber1024 AlgorithmID = "Kyber1024"
)

// SchemeKind distinguishes the two families of supported algorithms.
type SchemeKind string

// Scheme kind constants.
const (
	SchemeSignature SchemeKind = "signature"
	SchemeKEM       SchemeKind = "kem"
)

// SharedSecretSize is the shared secret length in bytes, fixed across all
// supported Kyber parameter sets.
const SharedSecretSize = 32

// Key, signature and ciphertext sizes in bytes per algorithm.
//
// ECC public keys use the uncompressed point encoding (0x04 || X || Y),
// private keys are the fixed-width scalar, signatures the fixed-width
// r || s concatenation. Kyber sizes follow FIPS 203 / the circl encoding.
const (
	ECCP256PublicKeySize  = 65
	ECCP256PrivateKeySize = 32
	ECCP256SignatureSize  = 64

	ECCP384PublicKeySize  = 97
	ECCP384PrivateKeySize = 48
	ECCP384SignatureSize  = 96

	ECCP521PublicKeySize  = 133
	ECCP521PrivateKeySize = 66
	ECCP521SignatureSize  = 132

	Kyber512PublicKeySize  = 800
	Kyber512PrivateKeySize = 1632
	Kyber512CiphertextSize = 768

	Kyber768PublicKeySize  = 1184
	Kyber768PrivateKeySize = 2400
	Kyber768CiphertextSize = 1088

	Kyber1024PublicKeySize  = 1568
	Kyber1024PrivateKeySize = 3168
	Kyber1024CiphertextSize = 1568
)

// AlgorithmParams holds the read-only parameter metadata for one algorithm.
type AlgorithmParams struct {
	ID             AlgorithmID
	Kind           SchemeKind
	PublicKeySize  int
	PrivateKeySize int
	// SignatureSize is set for signature algorithms, zero otherwise.
	SignatureSize int
	// CiphertextSize is set for KEM algorithms, zero otherwise.
	CiphertextSize int
	// SharedSecretSize is set for KEM algorithms, zero otherwise.
	SharedSecretSize int
	SecurityLevel    string
}

var (
	registry     map[AlgorithmID]AlgorithmParams
	registryOnce sync.Once
)

func buildRegistry() {
	registry = map[AlgorithmID]AlgorithmParams{
		AlgorithmECCP256: {
			ID:             AlgorithmECCP256,
			Kind:           SchemeSignature,
			PublicKeySize:  ECCP256PublicKeySize,
			PrivateKeySize: ECCP256PrivateKeySize,
			SignatureSize:  ECCP256SignatureSize,
			SecurityLevel:  "128-bit classical",
		},
		AlgorithmECCP384: {
			ID:             AlgorithmECCP384,
			Kind:           SchemeSignature,
			PublicKeySize:  ECCP384PublicKeySize,
			PrivateKeySize: ECCP384PrivateKeySize,
			SignatureSize:  ECCP384SignatureSize,
			SecurityLevel:  "192-bit classical",
		},
		AlgorithmECCP521: {
			ID:             AlgorithmECCP521,
			Kind:           SchemeSignature,
			PublicKeySize:  ECCP521PublicKeySize,
			PrivateKeySize: ECCP521PrivateKeySize,
			SignatureSize:  ECCP521SignatureSize,
			SecurityLevel:  "256-bit classical",
		},
		AlgorithmKyber512: {
			ID:               AlgorithmKyber512,
			Kind:             SchemeKEM,
			PublicKeySize:    Kyber512PublicKeySize,
			PrivateKeySize:   Kyber512PrivateKeySize,
			CiphertextSize:   Kyber512CiphertextSize,
			SharedSecretSize: SharedSecretSize,
			SecurityLevel:    "NIST level 1",
		},
		AlgorithmKyber768: {
			ID:               AlgorithmKyber768,
			Kind:             SchemeKEM,
			PublicKeySize:    Kyber768PublicKeySize,
			PrivateKeySize:   Kyber768PrivateKeySize,
			CiphertextSize:   Kyber768CiphertextSize,
			SharedSecretSize: SharedSecretSize,
			SecurityLevel:    "NIST level 3",
		},
		AlgorithmKyber1024: {
			ID:               AlgorithmKyber1024,
			Kind:             SchemeKEM,
			PublicKeySize:    Kyber1024PublicKeySize,
			PrivateKeySize:   Kyber1024PrivateKeySize,
			CiphertextSize:   Kyber1024CiphertextSize,
			SharedSecretSize: SharedSecretSize,
			SecurityLevel:    "NIST level 5",
		},
	}
}

// Params returns the parameter metadata for the given algorithm identifier.
// It returns ErrUnsupportedAlgorithm for any identifier outside the six
// supported constants. The registry is built once and never mutated, so
// Params is safe for concurrent use.
func Params(id AlgorithmID) (AlgorithmParams, error) {
	registryOnce.Do(buildRegistry)

	params, ok := registry[id]
	if !ok {
		return AlgorithmParams{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, id)
	}
	return params, nil
}

// Algorithms returns the identifiers of all supported algorithms.
func Algorithms() []AlgorithmID {
	return []AlgorithmID{
		AlgorithmECCP256,
		AlgorithmECCP384,
		AlgorithmECCP521,
		AlgorithmKyber512,
		AlgorithmKyber768,
		AlgorithmKyber1024,
	}
}
