package keyops

// EncapsulationResult carries the output of a KEM encapsulation: the
// ciphertext to transmit and the locally derived shared secret.
type EncapsulationResult struct {
	Ciphertext   []byte
	SharedSecret []byte
}

// SignatureAdapter handles elliptic curve signature operations for the
// supported NIST curves. The low-level point arithmetic is delegated to the
// ECC primitive provider; the adapter never reimplements field arithmetic.
type SignatureAdapter interface {
	// GenerateKey generates a signing key pair for the given curve algorithm.
	// The returned handle is full. Fails with ErrRandomnessUnavailable if the
	// secure random source cannot be read.
	GenerateKey(algorithm AlgorithmID) (*KeyHandle, error)

	// Sign signs a message with a full handle. The message is hashed with the
	// digest bound to the handle's curve before signing. Fails with
	// ErrInvalidKey if the handle is public-only or malformed.
	Sign(handle *KeyHandle, message []byte) ([]byte, error)

	// Verify verifies a signature with a public-only or full handle. A
	// structurally valid but cryptographically incorrect signature yields
	// false without an error; a signature whose length matches no valid
	// encoding for the curve fails with ErrMalformedSignature.
	Verify(handle *KeyHandle, message, signature []byte) (bool, error)

	// DeriveSharedSecret performs an ECDH exchange between a full handle and
	// a peer public key in uncompressed point encoding, returning the raw
	// shared secret.
	DeriveSharedSecret(handle *KeyHandle, peerPublic []byte) ([]byte, error)
}

// KEMAdapter handles key encapsulation operations for the supported Kyber
// parameter sets, delegating the lattice math to the KEM primitive provider.
type KEMAdapter interface {
	// GenerateKey generates a KEM key pair for the given parameter set. The
	// returned handle is full. Fails with ErrRandomnessUnavailable if the
	// secure random source cannot be read.
	GenerateKey(algorithm AlgorithmID) (*KeyHandle, error)

	// Encapsulate derives a fresh shared secret against a public-only or
	// full handle. Every call draws new randomness; two encapsulations
	// against the same key never repeat a ciphertext.
	Encapsulate(handle *KeyHandle) (*EncapsulationResult, error)

	// Decapsulate recovers the shared secret from a ciphertext with a full
	// handle. A ciphertext of the wrong length fails with
	// ErrMalformedCiphertext; a well-sized but corrupted ciphertext yields a
	// deterministic pseudorandom secret instead of an error (implicit
	// rejection), so the error/success channel never reveals ciphertext
	// validity.
	Decapsulate(handle *KeyHandle, ciphertext []byte) ([]byte, error)
}

// KeyOperationService is the unified facade over both adapters. Each call
// validates that the handle's algorithm belongs to the scheme kind the
// operation implies before dispatching, so cross-family confusion is
// reported uniformly as ErrSchemeMismatch. Adapter errors propagate
// unchanged. The facade holds no state between calls and is safe for
// concurrent use.
type KeyOperationService interface {
	// GenerateKey creates a full key handle for any supported algorithm.
	GenerateKey(algorithm AlgorithmID) (*KeyHandle, error)

	// Sign signs a message with a full signature-scheme handle.
	Sign(handle *KeyHandle, message []byte) ([]byte, error)

	// Verify checks a signature with a signature-scheme handle.
	Verify(handle *KeyHandle, message, signature []byte) (bool, error)

	// Encapsulate derives a fresh ciphertext and shared secret against a
	// KEM handle.
	Encapsulate(handle *KeyHandle) (*EncapsulationResult, error)

	// Decapsulate recovers the shared secret from a ciphertext with a full
	// KEM handle.
	Decapsulate(handle *KeyHandle, ciphertext []byte) ([]byte, error)

	// DeriveSharedSecret performs an ECDH exchange with a full
	// signature-scheme handle and a peer public key.
	DeriveSharedSecret(handle *KeyHandle, peerPublic []byte) ([]byte, error)
}
