package app

import (
	"fmt"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
	"github.com/keyops/crypto-keyops/internal/pkg/logger"
)

// keyOperationService implements the KeyOperationService facade. It routes
// each call to the signature or KEM adapter after checking that the handle's
// algorithm belongs to the scheme kind the operation implies. That check is
// the facade's only independent logic; adapter errors propagate unchanged.
type keyOperationService struct {
	signatureAdapter keyops.SignatureAdapter
	kemAdapter       keyops.KEMAdapter
	logger           logger.Logger
}

// NewKeyOperationService creates the unified facade over both adapters.
func NewKeyOperationService(
	signatureAdapter keyops.SignatureAdapter,
	kemAdapter keyops.KEMAdapter,
	logger logger.Logger,
) (keyops.KeyOperationService, error) {
	if signatureAdapter == nil || kemAdapter == nil {
		return nil, fmt.Errorf("both adapters are required")
	}
	return &keyOperationService{
		signatureAdapter: signatureAdapter,
		kemAdapter:       kemAdapter,
		logger:           logger,
	}, nil
}

// GenerateKey creates a full key handle for any supported algorithm.
func (s *keyOperationService) GenerateKey(algorithm keyops.AlgorithmID) (*keyops.KeyHandle, error) {
	params, err := keyops.Params(algorithm)
	if err != nil {
		return nil, err
	}

	switch params.Kind {
	case keyops.SchemeSignature:
		return s.signatureAdapter.GenerateKey(algorithm)
	case keyops.SchemeKEM:
		return s.kemAdapter.GenerateKey(algorithm)
	default:
		return nil, fmt.Errorf("%w: %s", keyops.ErrUnsupportedAlgorithm, algorithm)
	}
}

// Sign signs a message with a full signature-scheme handle.
func (s *keyOperationService) Sign(handle *keyops.KeyHandle, message []byte) ([]byte, error) {
	if err := requireKind(handle, keyops.SchemeSignature, "sign"); err != nil {
		return nil, err
	}
	return s.signatureAdapter.Sign(handle, message)
}

// Verify checks a signature with a signature-scheme handle.
func (s *keyOperationService) Verify(handle *keyops.KeyHandle, message, signature []byte) (bool, error) {
	if err := requireKind(handle, keyops.SchemeSignature, "verify"); err != nil {
		return false, err
	}
	return s.signatureAdapter.Verify(handle, message, signature)
}

// Encapsulate derives a fresh ciphertext and shared secret against a KEM handle.
func (s *keyOperationService) Encapsulate(handle *keyops.KeyHandle) (*keyops.EncapsulationResult, error) {
	if err := requireKind(handle, keyops.SchemeKEM, "encapsulate"); err != nil {
		return nil, err
	}
	return s.kemAdapter.Encapsulate(handle)
}

// Decapsulate recovers the shared secret from a ciphertext with a full KEM handle.
func (s *keyOperationService) Decapsulate(handle *keyops.KeyHandle, ciphertext []byte) ([]byte, error) {
	if err := requireKind(handle, keyops.SchemeKEM, "decapsulate"); err != nil {
		return nil, err
	}
	return s.kemAdapter.Decapsulate(handle, ciphertext)
}

// DeriveSharedSecret performs an ECDH exchange with a full signature-scheme
// handle and a peer public key.
func (s *keyOperationService) DeriveSharedSecret(handle *keyops.KeyHandle, peerPublic []byte) ([]byte, error) {
	if err := requireKind(handle, keyops.SchemeSignature, "derive shared secret"); err != nil {
		return nil, err
	}
	return s.signatureAdapter.DeriveSharedSecret(handle, peerPublic)
}

// requireKind rejects cross-family operations before any adapter is invoked,
// so algorithm confusion is reported uniformly regardless of the target
// adapter.
func requireKind(handle *keyops.KeyHandle, kind keyops.SchemeKind, operation string) error {
	params, err := keyops.Params(handle.Algorithm())
	if err != nil {
		return err
	}
	if params.Kind != kind {
		return fmt.Errorf("%w: cannot %s with a %s key (%s scheme)",
			keyops.ErrSchemeMismatch, operation, handle.Algorithm(), params.Kind)
	}
	return nil
}
