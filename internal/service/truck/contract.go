//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_test
package truck

import (
	"context"

	"fleet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, truckModifyEntity entities.TruckModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Truck, error)
	GetAll(ctx context.Context) ([]entities.Truck, error)
	Update(ctx context.Context, truckModifyEntity entities.TruckModify) (*entities.Truck, error)
	Delete(ctx context.Context, id int64) error
}
