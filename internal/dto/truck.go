package dto

type TruckCreate struct {
	Plate      string `json:"plate"`
	Model      string `json:"model"`
	CapacityKg int    `json:"capacity_kg"`
	Status     string `json:"status,omitempty"`
}

type TruckCreateResponse struct {
	ID int64 `json:"id"`
}

type TruckUpdate struct {
	ID         int64   `json:"id"`
	Plate      *string `json:"plate,omitempty"`
	Model      *string `json:"model,omitempty"`
	CapacityKg *int    `json:"capacity_kg,omitempty"`
	Status     *string `json:"status,omitempty"`
}

type Truck struct {
	ID         int64  `json:"id"`
	Plate      string `json:"plate"`
	Model      string `json:"model"`
	CapacityKg int    `json:"capacity_kg"`
	Status     string `json:"status"`
	DeliveryID *int64 `json:"delivery_id,omitempty"`
}
