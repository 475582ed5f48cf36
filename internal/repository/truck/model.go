package truck

import "time"

type TruckDB struct {
	ID         int64
	Plate      string
	Model      string
	CapacityKg int
	Status     string
	DeliveryID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TruckModifyDB struct {
	ID         *int64
	Plate      *string
	Model      *string
	CapacityKg *int
	Status     *string
	DeliveryID *int64
}
