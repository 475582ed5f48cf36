//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_put_test
package report_put

import (
	"context"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateReport(ctx context.Context, reportModify entities.ReportModify) (*entities.Report, error)
}
