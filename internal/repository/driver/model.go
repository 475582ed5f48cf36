package driver

import "time"

type DriverDB struct {
	ID                  int64
	Name                string
	CPF                 string
	Phone               string
	Status              string
	NortheastActive     int
	DeliveriesThisMonth int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DriverModifyDB struct {
	ID                  *int64
	Name                *string
	CPF                 *string
	Phone               *string
	Status              *string
	NortheastActive     *int
	DeliveriesThisMonth *int
}
