//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_delete_test
package report_delete

import (
	"context"

	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteReport(ctx context.Context, id int64) error
}
