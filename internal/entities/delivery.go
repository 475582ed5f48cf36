package entities

import "time"

type Delivery struct {
	ID              int64
	TruckID         int64
	DriverID        int64
	CargoType       CargoType
	CargoValue      float64
	SurchargedValue float64
	Destination     string
	Region          RegionType
	HasInsurance    bool
	IsHighValue     bool
	IsHazardous     bool
	StartDate       time.Time
	EndDate         time.Time
	Status          DeliveryStatusType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CargoType string

const (
	CargoElectronics CargoType = "electronics"
	CargoFuel        CargoType = "fuel"
	CargoGeneral     CargoType = "general"
)

func (t CargoType) String() string {
	return string(t)
}

type RegionType string

const (
	RegionDomestic  RegionType = "domestic"
	RegionNortheast RegionType = "northeast"
	RegionAmazonia  RegionType = "amazonia"
	RegionArgentina RegionType = "argentina"
)

func (t RegionType) String() string {
	return string(t)
}

type DeliveryStatusType string

const (
	DeliveryAwaitingStart DeliveryStatusType = "awaiting_start"
	DeliveryInProgress    DeliveryStatusType = "in_progress"
	DeliveryCompleted     DeliveryStatusType = "completed"
	DeliveryRemoved       DeliveryStatusType = "removed"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

// IsTerminal reports whether no further transitions are allowed.
func (t DeliveryStatusType) IsTerminal() bool {
	return t == DeliveryCompleted || t == DeliveryRemoved
}

type DeliveryModify struct {
	ID           *int64
	TruckID      *int64
	DriverID     *int64
	CargoType    *CargoType
	CargoValue   *float64
	Destination  *string
	Region       *RegionType
	HasInsurance *bool
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *DeliveryStatusType

	// Derived fields, recomputed by the service rather than accepted
	// from callers.
	SurchargedValue *float64
	IsHighValue     *bool
	IsHazardous     *bool
}

// DeliveryView is a read projection resolving the claimed truck and driver
// to their display fields.
type DeliveryView struct {
	Delivery
	DriverName string
	TruckModel string
	TruckPlate string
}
