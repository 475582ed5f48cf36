package report

import (
	"fleet/internal/entities"
)

func ToDomain(r *ReportDB) *entities.Report {
	if r == nil {
		return nil
	}

	report := &entities.Report{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Image != nil {
		report.Image = *r.Image
	}
	if r.CreatedBy != nil {
		report.CreatedBy = *r.CreatedBy
	}

	return report
}

func FromDomainModify(reportModify *entities.ReportModify) *ReportModifyDB {
	if reportModify == nil {
		return nil
	}

	return &ReportModifyDB{
		ID:          reportModify.ID,
		Title:       reportModify.Title,
		Description: reportModify.Description,
		Image:       reportModify.Image,
		IsActive:    reportModify.IsActive,
		CreatedBy:   reportModify.CreatedBy,
	}
}

func ToDomainList(reportsDB []ReportDB) []entities.Report {
	if len(reportsDB) == 0 {
		return []entities.Report{}
	}

	result := make([]entities.Report, len(reportsDB))
	for i, reportDB := range reportsDB {
		result[i] = *ToDomain(&reportDB)
	}
	return result
}
