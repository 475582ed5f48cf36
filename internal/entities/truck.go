package entities

import "time"

type Truck struct {
	ID         int64
	Plate      string
	Model      string
	CapacityKg int
	Status     TruckStatusType
	// DeliveryID is a convenience back-reference to the delivery currently
	// claiming this truck. The delivery row is the source of truth.
	DeliveryID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TruckStatusType string

const (
	TruckAvailable TruckStatusType = "available"
	TruckInUse     TruckStatusType = "in_use"
)

func (t TruckStatusType) String() string {
	return string(t)
}

type TruckModify struct {
	ID         *int64
	Plate      *string
	Model      *string
	CapacityKg *int
	Status     *TruckStatusType
	DeliveryID *int64
	// ClearDelivery drops the back-reference; a nil DeliveryID alone means
	// "field not present" in a patch.
	ClearDelivery bool
}
