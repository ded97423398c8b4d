package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/keyops/crypto-keyops/internal/pkg/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("algorithm", validators.AlgorithmValidation)
	return v
}

// GenerateKeyRequest is the payload for generating a key pair.
type GenerateKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"required,algorithm"`
}

// Validate checks the request fields.
func (r *GenerateKeyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for GenerateKeyRequest: %w", err)
	}
	return nil
}

// SignRequest is the payload for signing a message. Message is base64.
type SignRequest struct {
	Message string `json:"message" validate:"required,base64"`
}

// Validate checks the request fields.
func (r *SignRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for SignRequest: %w", err)
	}
	return nil
}

// VerifyRequest is the payload for verifying a signature. Both fields are
// base64.
type VerifyRequest struct {
	Message   string `json:"message" validate:"required,base64"`
	Signature string `json:"signature" validate:"required,base64"`
}

// Validate checks the request fields.
func (r *VerifyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for VerifyRequest: %w", err)
	}
	return nil
}

// DecapsulateRequest is the payload for recovering a shared secret.
// Ciphertext is base64.
type DecapsulateRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
}

// Validate checks the request fields.
func (r *DecapsulateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for DecapsulateRequest: %w", err)
	}
	return nil
}

// KeyMetaResponse mirrors stored key metadata.
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Algorithm       string    `json:"algorithm"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

// SignResponse carries a base64 signature.
type SignResponse struct {
	Signature string `json:"signature"`
}

// VerifyResponse carries the verification result.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// EncapsulateResponse carries a base64 ciphertext and shared secret.
type EncapsulateResponse struct {
	Ciphertext   string `json:"ciphertext"`
	SharedSecret string `json:"shared_secret"`
}

// DecapsulateResponse carries a base64 shared secret.
type DecapsulateResponse struct {
	SharedSecret string `json:"shared_secret"`
}

// ErrorResponse carries an error message.
type ErrorResponse struct {
	Message string `json:"message"`
}
