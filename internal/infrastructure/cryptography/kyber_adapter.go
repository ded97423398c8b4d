package cryptography

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/schemes"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
	"github.com/keyops/crypto-keyops/internal/pkg/logger"
)

// kyberAdapter implements the KEMAdapter interface on top of the circl
// CRYSTALS-Kyber provider.
type kyberAdapter struct {
	rand   io.Reader
	logger logger.Logger
}

// NewKyberAdapter creates a KEM adapter for the Kyber 512, 768 and 1024
// parameter sets. rand is the secure random source used for key generation
// and encapsulation seeds; it must be safe for concurrent use.
func NewKyberAdapter(rand io.Reader, logger logger.Logger) (keyops.KEMAdapter, error) {
	if rand == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	return &kyberAdapter{
		rand:   rand,
		logger: logger,
	}, nil
}

// schemeFor maps a KEM algorithm to the matching circl scheme.
func schemeFor(algorithm keyops.AlgorithmID) (kem.Scheme, error) {
	switch algorithm {
	case keyops.AlgorithmKyber512:
		return schemes.ByName("Kyber512"), nil
	case keyops.AlgorithmKyber768:
		return schemes.ByName("Kyber768"), nil
	case keyops.AlgorithmKyber1024:
		return schemes.ByName("Kyber1024"), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a Kyber parameter set",
			keyops.ErrSchemeMismatch, algorithm)
	}
}

// GenerateKey generates a Kyber key pair for the requested parameter set and
// returns it as a full key handle.
func (a *kyberAdapter) GenerateKey(algorithm keyops.AlgorithmID) (*keyops.KeyHandle, error) {
	scheme, err := schemeFor(algorithm)
	if err != nil {
		return nil, err
	}

	seed := make([]byte, scheme.SeedSize())
	if _, err := io.ReadFull(a.rand, seed); err != nil {
		return nil, fmt.Errorf("%w: %v", keyops.ErrRandomnessUnavailable, err)
	}
	defer zero(seed)

	publicKey, privateKey := scheme.DeriveKeyPair(seed)

	// Marshalling keys freshly derived by the scheme cannot fail.
	public, _ := publicKey.MarshalBinary()
	private, _ := privateKey.MarshalBinary()

	handle, err := keyops.ImportKeyHandle(algorithm, public, private)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Generated ", algorithm, " key pair")
	return handle, nil
}

// Encapsulate derives a fresh ciphertext and shared secret against the
// handle's public key. A new encapsulation seed is drawn per call, so two
// encapsulations against the same key never repeat.
func (a *kyberAdapter) Encapsulate(handle *keyops.KeyHandle) (*keyops.EncapsulationResult, error) {
	scheme, err := schemeFor(handle.Algorithm())
	if err != nil {
		return nil, err
	}

	publicKey, err := scheme.UnmarshalBinaryPublicKey(handle.PublicMaterial())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keyops.ErrInvalidKey, err)
	}

	seed := make([]byte, scheme.EncapsulationSeedSize())
	if _, err := io.ReadFull(a.rand, seed); err != nil {
		return nil, fmt.Errorf("%w: %v", keyops.ErrRandomnessUnavailable, err)
	}
	defer zero(seed)

	ciphertext, sharedSecret, err := scheme.EncapsulateDeterministically(publicKey, seed)
	if err != nil {
		return nil, fmt.Errorf("encapsulation failed: %w", err)
	}

	a.logger.Info(handle.Algorithm(), " encapsulation succeeded")
	return &keyops.EncapsulationResult{
		Ciphertext:   ciphertext,
		SharedSecret: sharedSecret,
	}, nil
}

// Decapsulate recovers the shared secret from a ciphertext. Only the
// ciphertext length is validated here; a well-sized but corrupted ciphertext
// decapsulates to the scheme's deterministic implicit-rejection secret, so
// neither the error channel nor timing reveals ciphertext validity.
func (a *kyberAdapter) Decapsulate(handle *keyops.KeyHandle, ciphertext []byte) ([]byte, error) {
	scheme, err := schemeFor(handle.Algorithm())
	if err != nil {
		return nil, err
	}
	params, err := keyops.Params(handle.Algorithm())
	if err != nil {
		return nil, err
	}

	if !handle.IsFull() {
		return nil, fmt.Errorf("%w: decapsulation requires private key material",
			keyops.ErrInvalidKey)
	}
	if len(ciphertext) != params.CiphertextSize {
		return nil, fmt.Errorf("%w: ciphertext for %s must be %d bytes, got %d",
			keyops.ErrMalformedCiphertext, handle.Algorithm(), params.CiphertextSize, len(ciphertext))
	}

	privateKey, err := scheme.UnmarshalBinaryPrivateKey(handle.PrivateMaterial())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keyops.ErrInvalidKey, err)
	}

	sharedSecret, err := scheme.Decapsulate(privateKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decapsulation failed: %w", err)
	}

	a.logger.Info(handle.Algorithm(), " decapsulation succeeded")
	return sharedSecret, nil
}

// zero overwrites a seed buffer once it is no longer needed.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
