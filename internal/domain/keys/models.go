package keys

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Key material type constants
const (
	KeyTypePublic  = "public"
	KeyTypePrivate = "private"
)

// KeyMeta is the metadata of one stored key half. A generated key pair is
// stored as two rows (public and private) sharing a KeyPairID.
type KeyMeta struct {
	ID              string    `validate:"required,uuid"`
	KeyPairID       string    `validate:"required,uuid"`
	Algorithm       string    `validate:"required,oneof=ECC-P256 ECC-P384 ECC-P521 Kyber512 Kyber768 Kyber1024"`
	Type            string    `validate:"required,oneof=public private"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required,uuid"`
}

// Validate checks the metadata fields.
func (m *KeyMeta) Validate() error {
	validate := validator.New()
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("validation failed for KeyMeta: %w", err)
	}
	return nil
}

// Key pairs stored key metadata with its raw material.
type Key struct {
	Meta     KeyMeta
	Material []byte
}

// KeyQuery is an optional filter for listing key metadata.
type KeyQuery struct {
	Algorithm string `validate:"omitempty,oneof=ECC-P256 ECC-P384 ECC-P521 Kyber512 Kyber768 Kyber1024"`
	Type      string `validate:"omitempty,oneof=public private"`
	Limit     int    `validate:"omitempty,gte=1,lte=1000"`
	Offset    int    `validate:"omitempty,gte=0"`
}

// Validate checks the query parameters.
func (q *KeyQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for KeyQuery: %w", err)
	}
	return nil
}
