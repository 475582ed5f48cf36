//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_finalize_put_test
package delivery_finalize_put

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
	Finalize(ctx context.Context, id int64) (*entities.DeliveryView, error)
}
