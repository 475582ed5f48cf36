package delivery

import (
	"context"
	"fmt"

	"fleet/internal/entities"

	"github.com/AlekSi/pointer"
)

type Delivery struct {
	repository    Repository
	truckService  TruckService
	driverService DriverService
	classifier    Classifier
	windows       WindowFactory
	clock         Clock
	txManager     TxManager
}

func New(
	repository Repository,
	truckService TruckService,
	driverService DriverService,
	classifier Classifier,
	windows WindowFactory,
	clock Clock,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:    repository,
		truckService:  truckService,
		driverService: driverService,
		classifier:    classifier,
		windows:       windows,
		clock:         clock,
		txManager:     txManager,
	}
}

// Create books a delivery: classification, conflict/quota checks and the
// truck/driver claim run inside one serializable transaction, so two
// concurrent creates can never both claim the same truck or driver.
func (d *Delivery) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if err := validateCreate(deliveryModify); err != nil {
		return nil, err
	}

	classification, err := d.classifier.Classify(
		*deliveryModify.Region,
		*deliveryModify.CargoType,
		*deliveryModify.CargoValue,
		deliveryModify.HasInsurance,
	)
	if err != nil {
		return nil, err
	}

	start := d.windows.AnchorStart(*deliveryModify.StartDate)
	end := d.windows.AnchorEnd(*deliveryModify.EndDate)

	var created *entities.Delivery
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		truck, err := d.truckService.GetTruck(ctx, *deliveryModify.TruckID)
		if err != nil {
			return fmt.Errorf("get truck: %w", err)
		}
		driver, err := d.driverService.GetDriver(ctx, *deliveryModify.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		if err := d.checkBooking(ctx, booking{
			truck:  truck,
			driver: driver,
			region: *deliveryModify.Region,
			start:  start,
			end:    end,
		}); err != nil {
			return err
		}

		status := entities.DeliveryAwaitingStart
		if !start.After(d.clock.Now()) {
			status = entities.DeliveryInProgress
		}

		created, err = d.repository.Create(ctx, entities.Delivery{
			TruckID:         truck.ID,
			DriverID:        driver.ID,
			CargoType:       *deliveryModify.CargoType,
			CargoValue:      *deliveryModify.CargoValue,
			SurchargedValue: classification.SurchargedValue,
			Destination:     *deliveryModify.Destination,
			Region:          *deliveryModify.Region,
			HasInsurance:    classification.Insured,
			IsHighValue:     classification.HighValue,
			IsHazardous:     classification.Hazardous,
			StartDate:       start,
			EndDate:         end,
			Status:          status,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		return d.claimResources(ctx, created, driver)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// claimResources applies the side effects of an accepted booking. A
// delivery still awaiting its start date claims nothing yet.
func (d *Delivery) claimResources(ctx context.Context, created *entities.Delivery, driver *entities.Driver) error {
	driverModify := entities.DriverModify{
		ID:                  &driver.ID,
		DeliveriesThisMonth: pointer.To(driver.DeliveriesThisMonth + 1),
	}

	if created.Status == entities.DeliveryInProgress {
		if _, err := d.truckService.UpdateTruck(ctx, entities.TruckModify{
			ID:         &created.TruckID,
			Status:     pointer.To(entities.TruckInUse),
			DeliveryID: &created.ID,
		}); err != nil {
			return fmt.Errorf("claim truck: %w", err)
		}

		driverModify.Status = pointer.To(entities.DriverUnavailable)
		if created.Region == entities.RegionNortheast {
			driverModify.NortheastActive = pointer.To(driver.NortheastActive + 1)
		}
	} else {
		driverModify.Status = pointer.To(entities.DriverAvailable)
	}

	if _, err := d.driverService.UpdateDriver(ctx, driverModify); err != nil {
		return fmt.Errorf("claim driver: %w", err)
	}
	return nil
}

func (d *Delivery) GetDelivery(ctx context.Context, id int64) (*entities.DeliveryView, error) {
	view, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return view, nil
}

func (d *Delivery) GetDeliveries(ctx context.Context) ([]entities.DeliveryView, error) {
	views, err := d.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get deliveries: %w", err)
	}
	return views, nil
}

// UpdateDelivery merges a partial patch. A changed cargo value recomputes
// only the high-value flag; the full classifier/checker pipeline does not
// re-run on updates.
func (d *Delivery) UpdateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if err := validateUpdate(deliveryModify); err != nil {
		return nil, err
	}

	if deliveryModify.CargoValue != nil {
		deliveryModify.IsHighValue = pointer.To(*deliveryModify.CargoValue > 30000)
	}

	updated, err := d.repository.Update(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery: %w", err)
	}
	return updated, nil
}
