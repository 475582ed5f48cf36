package truck

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPlate          = errors.New("invalid plate")
	ErrInvalidModel          = errors.New("invalid model")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrTruckNotFound = errors.New("truck not found")
	ErrConflict      = errors.New("resource already exists")
)
