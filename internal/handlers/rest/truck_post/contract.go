//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_post_test
package truck_post

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
	CreateTruck(ctx context.Context, truckModify entities.TruckModify) (int64, error)
}
