package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidCPF            = errors.New("invalid cpf")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("resource already exists")
)
