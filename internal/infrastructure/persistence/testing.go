//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/keyops/crypto-keyops/internal/infrastructure/persistence/models"
	"github.com/keyops/crypto-keyops/internal/pkg/config"
)

// SetupTestDB creates a database connection for integration tests and
// migrates the key schema. SQLite tests run in-memory; postgres tests expect
// a reachable server configured through KEYOPS_DATABASE_DSN.
func SetupTestDB(t *testing.T, dbType string) *gorm.DB {
	t.Helper()

	settings := config.DatabaseSettings{Type: dbType}
	switch dbType {
	case config.SqliteDbType:
		settings.DSN = ":memory:"
	case config.PostgresDbType:
		settings.DSN = "host=localhost user=keyops password=keyops sslmode=disable"
		settings.Name = "keyops_test"
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.KeyModel{})
	require.NoError(t, err, "Failed to migrate test schema")

	t.Cleanup(func() {
		_ = db.Exec("DELETE FROM keys").Error
		_ = CloseDB(db)
	})

	return db
}
