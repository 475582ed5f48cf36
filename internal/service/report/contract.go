//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"

	"fleet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, reportModifyEntity entities.ReportModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Report, error)
	GetAll(ctx context.Context) ([]entities.Report, error)
	Update(ctx context.Context, reportModifyEntity entities.ReportModify) (*entities.Report, error)
	Delete(ctx context.Context, id int64) error
}
