package app

import (
	"context"
	"time"

	"fleet/internal/handlers/rest/deliveries_get"
	"fleet/internal/handlers/rest/delivery_delete"
	"fleet/internal/handlers/rest/delivery_finalize_put"
	"fleet/internal/handlers/rest/delivery_get"
	"fleet/internal/handlers/rest/delivery_post"
	"fleet/internal/handlers/rest/delivery_put"
	"fleet/internal/handlers/rest/driver_delete"
	"fleet/internal/handlers/rest/driver_get"
	"fleet/internal/handlers/rest/driver_post"
	"fleet/internal/handlers/rest/driver_put"
	"fleet/internal/handlers/rest/drivers_get"
	"fleet/internal/handlers/rest/report_delete"
	"fleet/internal/handlers/rest/report_finalize_put"
	"fleet/internal/handlers/rest/report_get"
	"fleet/internal/handlers/rest/report_post"
	"fleet/internal/handlers/rest/report_put"
	"fleet/internal/handlers/rest/reports_get"
	"fleet/internal/handlers/rest/truck_delete"
	"fleet/internal/handlers/rest/truck_get"
	"fleet/internal/handlers/rest/truck_post"
	"fleet/internal/handlers/rest/truck_put"
	"fleet/internal/handlers/rest/trucks_get"
	"fleet/internal/handlers/tasks/lifecycle_sweep"
	"fleet/internal/pkg/config"

	deliveryRepo "fleet/internal/repository/delivery"
	driverRepo "fleet/internal/repository/driver"
	reportRepo "fleet/internal/repository/report"
	truckRepo "fleet/internal/repository/truck"
	deliveryService "fleet/internal/service/delivery"
	driverService "fleet/internal/service/driver"
	reportService "fleet/internal/service/report"
	truckService "fleet/internal/service/truck"

	"fleet/pkg/background"
	"fleet/pkg/clock"
	"fleet/pkg/logger"
	"fleet/pkg/querier"
	"fleet/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceTruck      ServiceTruck
	ServiceDriver     ServiceDriver
	ServiceReport     ServiceReport
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	deliveries_get.Service
	delivery_put.Service
	delivery_finalize_put.Service
	delivery_delete.Service
}

type ServiceTruck interface {
	truck_post.Service
	truck_get.Service
	trucks_get.Service
	truck_put.Service
	truck_delete.Service
}

type ServiceDriver interface {
	driver_post.Service
	driver_get.Service
	drivers_get.Service
	driver_put.Service
	driver_delete.Service
}

type ServiceReport interface {
	report_post.Service
	report_get.Service
	reports_get.Service
	report_put.Service
	report_finalize_put.Service
	report_delete.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) *querier.Querier {
	return querier.New(pool, getter, cfg.Database.StoreTimeout)
}

func provideClock() deliveryService.Clock {
	return clock.New()
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideTruckRepository(querier *querier.Querier) *truckRepo.Repository {
	return truckRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideReportRepository(querier *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(querier)
}

func provideServiceTruck(repository truckService.Repository) *truckService.Truck {
	return truckService.New(repository)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceReport(repository reportService.Repository) *reportService.Report {
	return reportService.New(repository)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	truckSvc deliveryService.TruckService,
	driverSvc deliveryService.DriverService,
	classifier deliveryService.Classifier,
	windows deliveryService.WindowFactory,
	clk deliveryService.Clock,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		truckSvc,
		driverSvc,
		classifier,
		windows,
		clk,
		txManager,
	)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.LifecycleSweepInterval)
}

func provideLifecycleSweepTask(
	log logger.Logger,
	deliverySvc lifecycle_sweep.Service,
	interval SweepInterval,
) *lifecycle_sweep.LifecycleSweep {
	return lifecycle_sweep.NewLifecycleSweep(log, deliverySvc, time.Duration(interval))
}

func provideTaskList(
	lifecycleSweepTask *lifecycle_sweep.LifecycleSweep,
) []background.Task {
	return []background.Task{
		lifecycleSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
