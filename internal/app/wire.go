//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"fleet/internal/handlers/tasks/lifecycle_sweep"
	"fleet/internal/pkg/config"
	"fleet/internal/pkg/factory/booking_window"
	"fleet/internal/pkg/factory/cargo_pricing"

	deliveryRepo "fleet/internal/repository/delivery"
	driverRepo "fleet/internal/repository/driver"
	reportRepo "fleet/internal/repository/report"
	truckRepo "fleet/internal/repository/truck"
	deliveryService "fleet/internal/service/delivery"
	driverService "fleet/internal/service/driver"
	reportService "fleet/internal/service/report"
	truckService "fleet/internal/service/truck"

	"fleet/pkg/logger"
	"fleet/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,
		provideClock,

		provideDeliveryRepository,
		provideTruckRepository,
		provideDriverRepository,
		provideReportRepository,

		provideServiceTruck,
		provideServiceDriver,
		provideServiceReport,
		provideServiceDelivery,
		cargo_pricing.New,
		booking_window.New,

		provideLifecycleSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceTruck), new(*truckService.Truck)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(truckService.Repository), new(*truckRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(reportService.Repository), new(*reportRepo.Repository)),

		wire.Bind(new(deliveryService.TruckService), new(*truckService.Truck)),
		wire.Bind(new(deliveryService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(deliveryService.Classifier), new(*cargo_pricing.Classifier)),
		wire.Bind(new(deliveryService.WindowFactory), new(*booking_window.WindowFactory)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(lifecycle_sweep.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}
