package report

import "time"

type ReportDB struct {
	ID          int64
	Title       string
	Description string
	Image       *string
	IsActive    bool
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReportModifyDB struct {
	ID          *int64
	Title       *string
	Description *string
	Image       *string
	IsActive    *bool
	CreatedBy   *string
}
