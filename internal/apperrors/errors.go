package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateName indicates that a product with the same name already exists.
var ErrDuplicateName = errors.New("product name already exists")

// ErrDuplicatePrice indicates that the product already has a price in the given currency.
var ErrDuplicatePrice = errors.New("price already exists for this product and currency")

// ErrInvalidReference indicates that a referenced entity (e.g. a currency) does not exist.
var ErrInvalidReference = errors.New("referenced resource does not exist")

// AppError wraps unexpected infrastructure failures with a status code and a
// message safe to surface to callers. Business-rule failures use the sentinel
// errors above instead.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError for infrastructure failures.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an error that matches ErrValidation via errors.Is.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
