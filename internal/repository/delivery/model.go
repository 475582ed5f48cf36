package delivery

import "time"

type DeliveryDB struct {
	ID              int64
	TruckID         int64
	DriverID        int64
	CargoType       string
	CargoValue      float64
	SurchargedValue float64
	Destination     string
	Region          string
	HasInsurance    bool
	IsHighValue     bool
	IsHazardous     bool
	StartDate       time.Time
	EndDate         time.Time
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DeliveryModifyDB struct {
	ID              *int64
	TruckID         *int64
	DriverID        *int64
	CargoType       *string
	CargoValue      *float64
	SurchargedValue *float64
	Destination     *string
	Region          *string
	HasInsurance    *bool
	IsHighValue     *bool
	IsHazardous     *bool
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
}

// DeliveryViewDB carries the delivery row plus the display columns joined
// from trucks and drivers.
type DeliveryViewDB struct {
	DeliveryDB
	DriverName string
	TruckModel string
	TruckPlate string
}
