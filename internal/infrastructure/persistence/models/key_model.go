package models

import (
	"time"

	"github.com/keyops/crypto-keyops/internal/domain/keys"
)

// KeyModel is the GORM database model for stored keys (infrastructure
// concern). Material is the raw key bytes; everything else is metadata.
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Algorithm       string    `gorm:"type:varchar(20)"`
	Type            string    `gorm:"type:varchar(10)"`
	Material        []byte    `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
	UserID          string    `gorm:"not null;index;type:uuid"`
}

// TableName specifies the table name for GORM.
func (KeyModel) TableName() string {
	return "keys"
}

// ToDomain converts the GORM model to a domain entity.
func (m *KeyModel) ToDomain() *keys.Key {
	return &keys.Key{
		Meta: keys.KeyMeta{
			ID:              m.ID,
			KeyPairID:       m.KeyPairID,
			Algorithm:       m.Algorithm,
			Type:            m.Type,
			DateTimeCreated: m.DateTimeCreated,
			UserID:          m.UserID,
		},
		Material: m.Material,
	}
}

// FromDomain populates the GORM model from a domain entity.
func (m *KeyModel) FromDomain(k *keys.Key) {
	m.ID = k.Meta.ID
	m.KeyPairID = k.Meta.KeyPairID
	m.Algorithm = k.Meta.Algorithm
	m.Type = k.Meta.Type
	m.Material = k.Material
	m.DateTimeCreated = k.Meta.DateTimeCreated
	m.UserID = k.Meta.UserID
}
