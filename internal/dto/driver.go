package dto

type DriverCreate struct {
	Name   string `json:"name"`
	CPF    string `json:"cpf"`
	Phone  string `json:"phone"`
	Status string `json:"status,omitempty"`
}

type DriverCreateResponse struct {
	ID int64 `json:"id"`
}

type DriverUpdate struct {
	ID     int64   `json:"id"`
	Name   *string `json:"name,omitempty"`
	CPF    *string `json:"cpf,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
}

type Driver struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	CPF                 string `json:"cpf"`
	Phone               string `json:"phone"`
	Status              string `json:"status"`
	NortheastActive     int    `json:"northeast_active"`
	DeliveriesThisMonth int    `json:"deliveries_this_month"`
}
