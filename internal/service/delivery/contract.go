//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"fleet/internal/entities"
	"fleet/internal/pkg/factory/cargo_pricing"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryView, error)
	GetAll(ctx context.Context) ([]entities.DeliveryView, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)

	CountTruckDeliveriesInMonth(ctx context.Context, truckID int64, monthStart, monthEnd time.Time) (int64, error)
	HasAwaitingOverlap(ctx context.Context, driverID int64, start, end time.Time) (bool, error)
	CountDriverBookedInMonth(ctx context.Context, driverID int64, monthStart, monthEnd time.Time) (int64, error)
	HasActiveDelivery(ctx context.Context, driverID int64) (bool, error)
	TruckHasLiveClaim(ctx context.Context, truckID int64) (bool, error)

	TransitionStatus(ctx context.Context, id int64, from, to entities.DeliveryStatusType) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
	PromoteDueAwaiting(ctx context.Context, now time.Time) (int64, error)
	CompleteDueInProgress(ctx context.Context, now time.Time) (int64, error)
}

type TruckService interface {
	GetTruck(ctx context.Context, id int64) (*entities.Truck, error)
	UpdateTruck(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type Classifier interface {
	Classify(region entities.RegionType, cargoType entities.CargoType, baseValue float64, insurance *bool) (cargo_pricing.Classification, error)
}

type WindowFactory interface {
	AnchorStart(t time.Time) time.Time
	AnchorEnd(t time.Time) time.Time
	StartOfDay(t time.Time) time.Time
	MonthBounds(t time.Time) (time.Time, time.Time)
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
