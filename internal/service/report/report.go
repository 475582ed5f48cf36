package report

import (
	"context"
	"fmt"
	"strings"

	"fleet/internal/entities"

	"github.com/AlekSi/pointer"
)

type Report struct {
	repository Repository
}

func New(repository Repository) *Report {
	return &Report{
		repository: repository,
	}
}

func (s *Report) CreateReport(ctx context.Context, reportModify entities.ReportModify) (int64, error) {
	if reportModify.Title == nil || reportModify.Description == nil {
		return 0, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*reportModify.Title) == "" {
		return 0, ErrInvalidTitle
	}

	// New reports are active until explicitly finalized.
	if reportModify.IsActive == nil {
		reportModify.IsActive = pointer.To(true)
	}

	id, err := s.repository.Create(ctx, reportModify)
	if err != nil {
		return 0, fmt.Errorf("create report: %w", err)
	}

	return id, nil
}

func (s *Report) UpdateReport(ctx context.Context, reportModify entities.ReportModify) (*entities.Report, error) {
	if reportModify.Title == nil &&
		reportModify.Description == nil &&
		reportModify.Image == nil &&
		reportModify.IsActive == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if reportModify.Title != nil && strings.TrimSpace(*reportModify.Title) == "" {
		return nil, ErrInvalidTitle
	}

	report, err := s.repository.Update(ctx, reportModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return report, nil
}

// FinalizeReport deactivates a report; the record stays readable.
func (s *Report) FinalizeReport(ctx context.Context, id int64) (*entities.Report, error) {
	report, err := s.repository.Update(ctx, entities.ReportModify{
		ID:       &id,
		IsActive: pointer.To(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to finalize report: %w", err)
	}
	return report, nil
}

func (s *Report) GetReport(ctx context.Context, id int64) (*entities.Report, error) {
	report, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return report, nil
}

func (s *Report) GetReports(ctx context.Context) ([]entities.Report, error) {
	reports, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}

	return reports, nil
}

func (s *Report) DeleteReport(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	return nil
}
