//go:build integration
// +build integration

package app

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
	"github.com/keyops/crypto-keyops/internal/domain/keys"
	"github.com/keyops/crypto-keyops/internal/infrastructure/cryptography"
	"github.com/keyops/crypto-keyops/internal/infrastructure/persistence"
	"github.com/keyops/crypto-keyops/internal/pkg/testutil"
)

// TestServices bundles the fully wired service stack for integration tests.
type TestServices struct {
	DB       *gorm.DB
	KeyOps   keyops.KeyOperationService
	VaultSvc keys.KeyVaultService
	KeyRepo  keys.KeyRepository
}

// SetupTestServices wires real adapters, the facade and the vault service
// against a test database of the given type.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	db := persistence.SetupTestDB(t, dbType)

	keyRepo, err := persistence.NewGormKeyRepository(db, log)
	require.NoError(t, err, "Failed to create key repository")

	signatureAdapter, err := cryptography.NewECDSAAdapter(rand.Reader, log)
	require.NoError(t, err, "Failed to create ECDSA adapter")

	kemAdapter, err := cryptography.NewKyberAdapter(rand.Reader, log)
	require.NoError(t, err, "Failed to create Kyber adapter")

	keyOps, err := NewKeyOperationService(signatureAdapter, kemAdapter, log)
	require.NoError(t, err, "Failed to create key operation service")

	vaultSvc, err := NewKeyVaultService(keyRepo, keyOps, log)
	require.NoError(t, err, "Failed to create key vault service")

	return &TestServices{
		DB:       db,
		KeyOps:   keyOps,
		VaultSvc: vaultSvc,
		KeyRepo:  keyRepo,
	}
}
