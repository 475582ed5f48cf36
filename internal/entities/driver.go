package entities

import "time"

type Driver struct {
	ID     int64
	Name   string
	CPF    string
	Phone  string
	Status DriverStatusType
	// NortheastActive counts the driver's active northeast bookings,
	// at most one by business rule.
	NortheastActive     int
	DeliveriesThisMonth int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DriverStatusType string

const (
	DriverAvailable   DriverStatusType = "available"
	DriverUnavailable DriverStatusType = "unavailable"
)

func (t DriverStatusType) String() string {
	return string(t)
}

type DriverModify struct {
	ID                  *int64
	Name                *string
	CPF                 *string
	Phone               *string
	Status              *DriverStatusType
	NortheastActive     *int
	DeliveriesThisMonth *int
}
