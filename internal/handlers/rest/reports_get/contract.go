//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reports_get_test
package reports_get

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
	GetReports(ctx context.Context) ([]entities.Report, error)
}
