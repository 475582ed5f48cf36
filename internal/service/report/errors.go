package report

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTitle          = errors.New("invalid title")

	ErrReportNotFound = errors.New("report not found")
)
