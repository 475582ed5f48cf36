package dto

import "time"

type DeliveryCreate struct {
	TruckID      int64   `json:"truck_id"`
	DriverID     int64   `json:"driver_id"`
	CargoType    string  `json:"cargo_type"`
	CargoValue   float64 `json:"cargo_value"`
	Destination  string  `json:"destination"`
	Region       string  `json:"region"`
	HasInsurance *bool   `json:"has_insurance,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

type DeliveryCreateResponse struct {
	ID              int64   `json:"id"`
	Status          string  `json:"status"`
	SurchargedValue float64 `json:"surcharged_value"`
}

type DeliveryUpdate struct {
	CargoType    *string  `json:"cargo_type,omitempty"`
	CargoValue   *float64 `json:"cargo_value,omitempty"`
	Destination  *string  `json:"destination,omitempty"`
	Region       *string  `json:"region,omitempty"`
	HasInsurance *bool    `json:"has_insurance,omitempty"`
}

type Delivery struct {
	ID              int64     `json:"id"`
	TruckID         int64     `json:"truck_id"`
	DriverID        int64     `json:"driver_id"`
	CargoType       string    `json:"cargo_type"`
	CargoValue      float64   `json:"cargo_value"`
	SurchargedValue float64   `json:"surcharged_value"`
	Destination     string    `json:"destination"`
	Region          string    `json:"region"`
	HasInsurance    bool      `json:"has_insurance"`
	IsHighValue     bool      `json:"is_high_value"`
	IsHazardous     bool      `json:"is_hazardous"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Status          string    `json:"status"`
}

// DeliveryView adds the resolved truck and driver display fields.
type DeliveryView struct {
	Delivery
	DriverName string `json:"driver_name"`
	TruckModel string `json:"truck_model"`
	TruckPlate string `json:"truck_plate"`
}
