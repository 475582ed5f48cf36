package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCargoType      = errors.New("invalid cargo type")
	ErrInvalidRegion         = errors.New("invalid region")
	ErrInvalidCargoValue     = errors.New("invalid cargo value")

	// Booking rejections, one per rule so callers see exactly which
	// rule fired first.
	ErrNortheastLimit   = errors.New("driver already holds a northeast delivery")
	ErrInvalidWindow    = errors.New("end date precedes start date")
	ErrTruckMonthQuota  = errors.New("truck reached its monthly delivery limit")
	ErrStartInPast      = errors.New("start date is in the past")
	ErrEndBeforeStart   = errors.New("end date precedes start date")
	ErrEndInPast        = errors.New("end date is in the past")
	ErrDriverOverlap    = errors.New("driver has an overlapping booking")
	ErrDriverMonthQuota = errors.New("driver reached its monthly booking limit")
	ErrDriverBusy       = errors.New("driver already has a delivery in progress")
	ErrTruckClaimed     = errors.New("truck is already claimed by a delivery")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrNotInProgress    = errors.New("delivery is not in progress")
)
