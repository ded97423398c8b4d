package keys

import (
	"context"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
)

// KeyVaultService defines caller-side retention and use of generated keys:
// it persists key material and replays stored keys through the unified
// key-operations facade.
type KeyVaultService interface {
	// Generate creates a key pair for the given algorithm, stores both
	// halves under a shared KeyPairID and returns their metadata.
	Generate(ctx context.Context, userID, algorithm string) ([]*KeyMeta, error)

	// List retrieves key metadata, filtered by the query when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// GetByID retrieves the metadata of a stored key by its ID.
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)

	// DownloadByID retrieves the raw material of a stored key by its ID.
	DownloadByID(ctx context.Context, keyID string) ([]byte, error)

	// DeleteByID removes a stored key and its metadata.
	DeleteByID(ctx context.Context, keyID string) error

	// Sign signs a message with the stored private key identified by keyID.
	Sign(ctx context.Context, keyID string, message []byte) ([]byte, error)

	// Verify checks a signature with the stored key pair identified by keyID.
	Verify(ctx context.Context, keyID string, message, signature []byte) (bool, error)

	// Encapsulate derives a fresh ciphertext and shared secret against the
	// stored public key identified by keyID.
	Encapsulate(ctx context.Context, keyID string) (*keyops.EncapsulationResult, error)

	// Decapsulate recovers a shared secret from a ciphertext with the stored
	// private key identified by keyID.
	Decapsulate(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error)
}

// KeyRepository defines the persistence operations for stored keys.
type KeyRepository interface {
	Create(ctx context.Context, key *Key) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*Key, error)
	GetByPair(ctx context.Context, keyPairID, keyType string) (*Key, error)
	DeleteByID(ctx context.Context, keyID string) error
}
