// Package validators adapts go-playground/validator to Echo's Validator
// interface.
package validators

import (
	"fmt"

	"github.com/collegegram/backend/internal/models"
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks a request struct against its validate tags
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}
