//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_get_test
package truck_get

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
	GetTruck(ctx context.Context, id int64) (*entities.Truck, error)
}
