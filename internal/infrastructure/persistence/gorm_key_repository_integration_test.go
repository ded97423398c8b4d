//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyops/crypto-keyops/internal/domain/keys"
	"github.com/keyops/crypto-keyops/internal/pkg/config"
	"github.com/keyops/crypto-keyops/internal/pkg/testutil"
)

func setupRepository(t *testing.T) keys.KeyRepository {
	t.Helper()

	db := SetupTestDB(t, config.SqliteDbType)
	repo, err := NewGormKeyRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return repo
}

func newTestKey(algorithm, keyType, keyPairID string) *keys.Key {
	return &keys.Key{
		Meta: keys.KeyMeta{
			ID:              uuid.New().String(),
			KeyPairID:       keyPairID,
			Algorithm:       algorithm,
			Type:            keyType,
			DateTimeCreated: time.Now().UTC(),
			UserID:          uuid.New().String(),
		},
		Material: []byte{0x04, 0xde, 0xad, 0xbe, 0xef},
	}
}

func TestGormKeyRepository_CreateAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	key := newTestKey("ECC-P256", keys.KeyTypePublic, uuid.New().String())
	require.NoError(t, repo.Create(ctx, key))

	t.Run("get by id returns meta and material", func(t *testing.T) {
		stored, err := repo.GetByID(ctx, key.Meta.ID)
		require.NoError(t, err)
		assert.Equal(t, key.Meta.ID, stored.Meta.ID)
		assert.Equal(t, key.Meta.Algorithm, stored.Meta.Algorithm)
		assert.Equal(t, key.Material, stored.Material)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("create rejects invalid metadata", func(t *testing.T) {
		invalid := newTestKey("ECC-P256", keys.KeyTypePublic, uuid.New().String())
		invalid.Meta.Algorithm = "DES"
		err := repo.Create(ctx, invalid)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})
}

func TestGormKeyRepository_GetByPair(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	keyPairID := uuid.New().String()

	public := newTestKey("Kyber768", keys.KeyTypePublic, keyPairID)
	private := newTestKey("Kyber768", keys.KeyTypePrivate, keyPairID)
	require.NoError(t, repo.Create(ctx, public))
	require.NoError(t, repo.Create(ctx, private))

	stored, err := repo.GetByPair(ctx, keyPairID, keys.KeyTypePrivate)
	require.NoError(t, err)
	assert.Equal(t, private.Meta.ID, stored.Meta.ID)

	_, err = repo.GetByPair(ctx, uuid.New().String(), keys.KeyTypePublic)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestGormKeyRepository_List(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	pairs := []struct {
		algorithm string
		keyType   string
	}{
		{"ECC-P256", keys.KeyTypePublic},
		{"ECC-P256", keys.KeyTypePrivate},
		{"Kyber512", keys.KeyTypePublic},
		{"Kyber512", keys.KeyTypePrivate},
	}
	for _, p := range pairs {
		require.NoError(t, repo.Create(ctx, newTestKey(p.algorithm, p.keyType, uuid.New().String())))
	}

	tests := []struct {
		name      string
		query     *keys.KeyQuery
		wantCount int
		wantErr   bool
	}{
		{name: "nil query lists everything", query: nil, wantCount: 4},
		{name: "filter by algorithm", query: &keys.KeyQuery{Algorithm: "ECC-P256"}, wantCount: 2},
		{name: "filter by type", query: &keys.KeyQuery{Type: keys.KeyTypePrivate}, wantCount: 2},
		{
			name:      "filter by algorithm and type",
			query:     &keys.KeyQuery{Algorithm: "Kyber512", Type: keys.KeyTypePublic},
			wantCount: 1,
		},
		{name: "limit applies", query: &keys.KeyQuery{Limit: 3}, wantCount: 3},
		{name: "offset applies", query: &keys.KeyQuery{Limit: 10, Offset: 3}, wantCount: 1},
		{name: "invalid algorithm filter", query: &keys.KeyQuery{Algorithm: "DES"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metas, err := repo.List(ctx, tt.query)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, metas, tt.wantCount)
		})
	}
}

func TestGormKeyRepository_DeleteByID(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	key := newTestKey("ECC-P521", keys.KeyTypePrivate, uuid.New().String())
	require.NoError(t, repo.Create(ctx, key))

	require.NoError(t, repo.DeleteByID(ctx, key.Meta.ID))

	_, err := repo.GetByID(ctx, key.Meta.ID)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	err = repo.DeleteByID(ctx, key.Meta.ID)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
