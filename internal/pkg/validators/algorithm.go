package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
)

// AlgorithmValidation validates that a string field carries one of the six
// supported algorithm identifiers.
func AlgorithmValidation(fl validator.FieldLevel) bool {
	_, err := keyops.Params(keyops.AlgorithmID(fl.Field().String()))
	return err == nil
}
