package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
	"github.com/keyops/crypto-keyops/internal/domain/keys"
	"github.com/keyops/crypto-keyops/internal/pkg/logger"
)

// keyVaultService implements the KeyVaultService interface. It is the
// retaining caller of the key-operations facade: generated key pairs are
// stored as a public and a private row sharing a KeyPairID, and stored keys
// are reassembled into handles per operation.
type keyVaultService struct {
	keyRepo keys.KeyRepository
	keyOps  keyops.KeyOperationService
	logger  logger.Logger
}

// NewKeyVaultService creates a new keyVaultService instance.
func NewKeyVaultService(
	keyRepo keys.KeyRepository,
	keyOps keyops.KeyOperationService,
	logger logger.Logger,
) (keys.KeyVaultService, error) {
	if keyRepo == nil {
		return nil, fmt.Errorf("key repository cannot be nil")
	}
	if keyOps == nil {
		return nil, fmt.Errorf("key operation service cannot be nil")
	}
	return &keyVaultService{
		keyRepo: keyRepo,
		keyOps:  keyOps,
		logger:  logger,
	}, nil
}

// Generate creates a key pair for the given algorithm and stores both halves.
func (s *keyVaultService) Generate(ctx context.Context, userID, algorithm string) ([]*keys.KeyMeta, error) {
	handle, err := s.keyOps.GenerateKey(keyops.AlgorithmID(algorithm))
	if err != nil {
		return nil, err
	}
	defer handle.Zeroize()

	private, err := handle.ExportPrivate()
	if err != nil {
		return nil, err
	}

	keyPairID := uuid.New().String()
	now := time.Now().UTC()

	halves := []*keys.Key{
		{
			Meta: keys.KeyMeta{
				ID:              uuid.New().String(),
				KeyPairID:       keyPairID,
				Algorithm:       algorithm,
				Type:            keys.KeyTypePublic,
				DateTimeCreated: now,
				UserID:          userID,
			},
			Material: handle.ExportPublic(),
		},
		{
			Meta: keys.KeyMeta{
				ID:              uuid.New().String(),
				KeyPairID:       keyPairID,
				Algorithm:       algorithm,
				Type:            keys.KeyTypePrivate,
				DateTimeCreated: now,
				UserID:          userID,
			},
			Material: private,
		},
	}

	metas := make([]*keys.KeyMeta, 0, len(halves))
	for _, half := range halves {
		if err := s.keyRepo.Create(ctx, half); err != nil {
			return nil, err
		}
		meta := half.Meta
		metas = append(metas, &meta)
	}

	s.logger.Info("Generated and stored ", algorithm, " key pair ", keyPairID)
	return metas, nil
}

// List retrieves key metadata, filtered by the query when set.
func (s *keyVaultService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	return s.keyRepo.List(ctx, query)
}

// GetByID retrieves the metadata of a stored key.
func (s *keyVaultService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	key, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	meta := key.Meta
	return &meta, nil
}

// DownloadByID retrieves the raw material of a stored key.
func (s *keyVaultService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	key, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	return key.Material, nil
}

// DeleteByID removes a stored key and its metadata.
func (s *keyVaultService) DeleteByID(ctx context.Context, keyID string) error {
	return s.keyRepo.DeleteByID(ctx, keyID)
}

// Sign signs a message with the stored private key identified by keyID.
func (s *keyVaultService) Sign(ctx context.Context, keyID string, message []byte) ([]byte, error) {
	handle, err := s.fullHandle(ctx, keyID)
	if err != nil {
		return nil, err
	}
	defer handle.Zeroize()

	return s.keyOps.Sign(handle, message)
}

// Verify checks a signature with the stored key identified by keyID. Either
// half of the pair may be referenced.
func (s *keyVaultService) Verify(ctx context.Context, keyID string, message, signature []byte) (bool, error) {
	handle, err := s.publicHandle(ctx, keyID)
	if err != nil {
		return false, err
	}
	return s.keyOps.Verify(handle, message, signature)
}

// Encapsulate derives a fresh ciphertext and shared secret against the
// stored key identified by keyID. Either half of the pair may be referenced.
func (s *keyVaultService) Encapsulate(ctx context.Context, keyID string) (*keyops.EncapsulationResult, error) {
	handle, err := s.publicHandle(ctx, keyID)
	if err != nil {
		return nil, err
	}
	return s.keyOps.Encapsulate(handle)
}

// Decapsulate recovers a shared secret from a ciphertext with the stored
// private key identified by keyID.
func (s *keyVaultService) Decapsulate(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error) {
	handle, err := s.fullHandle(ctx, keyID)
	if err != nil {
		return nil, err
	}
	defer handle.Zeroize()

	return s.keyOps.Decapsulate(handle, ciphertext)
}

// fullHandle reassembles a full key handle from the stored pair. keyID must
// reference the private half.
func (s *keyVaultService) fullHandle(ctx context.Context, keyID string) (*keyops.KeyHandle, error) {
	key, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if key.Meta.Type != keys.KeyTypePrivate {
		return nil, fmt.Errorf("%w: key %s is not a private key", keyops.ErrInvalidKey, keyID)
	}

	publicHalf, err := s.keyRepo.GetByPair(ctx, key.Meta.KeyPairID, keys.KeyTypePublic)
	if err != nil {
		return nil, err
	}

	return keyops.ImportKeyHandle(
		keyops.AlgorithmID(key.Meta.Algorithm), publicHalf.Material, key.Material)
}

// publicHandle builds a public-only handle from either half of a stored pair.
func (s *keyVaultService) publicHandle(ctx context.Context, keyID string) (*keyops.KeyHandle, error) {
	key, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}

	material := key.Material
	if key.Meta.Type == keys.KeyTypePrivate {
		publicHalf, err := s.keyRepo.GetByPair(ctx, key.Meta.KeyPairID, keys.KeyTypePublic)
		if err != nil {
			return nil, err
		}
		material = publicHalf.Material
	}

	return keyops.ImportKeyHandle(keyops.AlgorithmID(key.Meta.Algorithm), material, nil)
}
