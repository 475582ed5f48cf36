package entities

import "time"

type Report struct {
	ID          int64
	Title       string
	Description string
	Image       string
	IsActive    bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReportModify struct {
	ID          *int64
	Title       *string
	Description *string
	Image       *string
	IsActive    *bool
	CreatedBy   *string
}
