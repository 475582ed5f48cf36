package dto

type ReportCreate struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
	CreatedBy   *string `json:"created_by,omitempty"`
}

type ReportCreateResponse struct {
	ID int64 `json:"id"`
}

type ReportUpdate struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

type Report struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedBy   string `json:"created_by,omitempty"`
}
