//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keyops/crypto-keyops/internal/domain/keys"
)

func TestKeyModel_ToDomain(t *testing.T) {
	keyModel := &KeyModel{
		ID:              "test-id",
		KeyPairID:       "test-keypair-id",
		Algorithm:       "Kyber768",
		Type:            "private",
		Material:        []byte{0x01, 0x02, 0x03},
		DateTimeCreated: time.Now(),
		UserID:          "user-id",
	}

	key := keyModel.ToDomain()

	assert.Equal(t, keyModel.ID, key.Meta.ID)
	assert.Equal(t, keyModel.KeyPairID, key.Meta.KeyPairID)
	assert.Equal(t, keyModel.Algorithm, key.Meta.Algorithm)
	assert.Equal(t, keyModel.Type, key.Meta.Type)
	assert.Equal(t, keyModel.DateTimeCreated, key.Meta.DateTimeCreated)
	assert.Equal(t, keyModel.UserID, key.Meta.UserID)
	assert.Equal(t, keyModel.Material, key.Material)
}

func TestKeyModel_FromDomain(t *testing.T) {
	key := &keys.Key{
		Meta: keys.KeyMeta{
			ID:              "test-id",
			KeyPairID:       "test-keypair-id",
			Algorithm:       "ECC-P384",
			Type:            "public",
			DateTimeCreated: time.Now(),
			UserID:          "user-id",
		},
		Material: []byte{0x04, 0x05, 0x06},
	}

	keyModel := &KeyModel{}
	keyModel.FromDomain(key)

	assert.Equal(t, key.Meta.ID, keyModel.ID)
	assert.Equal(t, key.Meta.KeyPairID, keyModel.KeyPairID)
	assert.Equal(t, key.Meta.Algorithm, keyModel.Algorithm)
	assert.Equal(t, key.Meta.Type, keyModel.Type)
	assert.Equal(t, key.Meta.DateTimeCreated, keyModel.DateTimeCreated)
	assert.Equal(t, key.Meta.UserID, keyModel.UserID)
	assert.Equal(t, key.Material, keyModel.Material)
}
