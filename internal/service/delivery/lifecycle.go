package delivery

import (
	"context"
	"fmt"

	"fleet/internal/entities"

	"github.com/AlekSi/pointer"
)

// Finalize completes an in-progress delivery and releases its truck and
// driver. The status read and the transition run in the same transaction,
// so a concurrent finalize or cancel loses cleanly on the conditional
// update instead of double-releasing.
func (d *Delivery) Finalize(ctx context.Context, id int64) (*entities.DeliveryView, error) {
	var finalized *entities.DeliveryView
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		view, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		if view.Status != entities.DeliveryInProgress {
			return ErrNotInProgress
		}

		ok, err := d.repository.TransitionStatus(ctx, id, entities.DeliveryInProgress, entities.DeliveryCompleted)
		if err != nil {
			return fmt.Errorf("transition delivery: %w", err)
		}
		if !ok {
			return ErrNotInProgress
		}

		if err := d.releaseResources(ctx, &view.Delivery); err != nil {
			return err
		}

		finalized = view
		finalized.Status = entities.DeliveryCompleted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return finalized, nil
}

// Cancel marks a delivery removed and compensates its side effects. The
// truck is released whatever the status: the sweep completes deliveries
// without touching their resources, and cancel is the only way to free a
// truck stuck behind such a completion. Driver compensation stays
// conditional on the delivery not having finished.
func (d *Delivery) Cancel(ctx context.Context, id int64) error {
	return d.txManager.Do(ctx, func(ctx context.Context) error {
		view, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		if view.Status == entities.DeliveryRemoved {
			return ErrDeliveryNotFound
		}

		ok, err := d.repository.Remove(ctx, id)
		if err != nil {
			return fmt.Errorf("remove delivery: %w", err)
		}
		if !ok {
			return ErrDeliveryNotFound
		}

		if _, err := d.truckService.UpdateTruck(ctx, entities.TruckModify{
			ID:            &view.TruckID,
			Status:        pointer.To(entities.TruckAvailable),
			ClearDelivery: true,
		}); err != nil {
			return fmt.Errorf("release truck: %w", err)
		}

		if view.Status == entities.DeliveryCompleted {
			return nil
		}
		return d.compensateDriver(ctx, &view.Delivery)
	})
}

// releaseResources returns the truck and driver of a finished delivery to
// the available pool.
func (d *Delivery) releaseResources(ctx context.Context, delivery *entities.Delivery) error {
	if _, err := d.truckService.UpdateTruck(ctx, entities.TruckModify{
		ID:            &delivery.TruckID,
		Status:        pointer.To(entities.TruckAvailable),
		ClearDelivery: true,
	}); err != nil {
		return fmt.Errorf("release truck: %w", err)
	}

	if _, err := d.driverService.UpdateDriver(ctx, entities.DriverModify{
		ID:     &delivery.DriverID,
		Status: pointer.To(entities.DriverAvailable),
	}); err != nil {
		return fmt.Errorf("release driver: %w", err)
	}
	return nil
}

// compensateDriver undoes the driver-side claims of a cancelled delivery,
// including the northeast slot the booking consumed.
func (d *Delivery) compensateDriver(ctx context.Context, delivery *entities.Delivery) error {
	driverModify := entities.DriverModify{
		ID:     &delivery.DriverID,
		Status: pointer.To(entities.DriverAvailable),
	}
	if delivery.Region == entities.RegionNortheast {
		driver, err := d.driverService.GetDriver(ctx, delivery.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		driverModify.NortheastActive = pointer.To(driver.NortheastActive - 1)
	}

	if _, err := d.driverService.UpdateDriver(ctx, driverModify); err != nil {
		return fmt.Errorf("release driver: %w", err)
	}
	return nil
}

// SweepLifecycle advances deliveries whose dates came due: awaiting ones
// whose start date arrived become in progress, in-progress ones whose end
// date passed become completed. The sweep only flips statuses; trucks and
// drivers keep their state until an explicit finalize or cancel.
func (d *Delivery) SweepLifecycle(ctx context.Context) (int64, int64, error) {
	now := d.clock.Now()

	promoted, err := d.repository.PromoteDueAwaiting(ctx, now)
	if err != nil {
		return 0, 0, fmt.Errorf("promote due deliveries: %w", err)
	}

	completed, err := d.repository.CompleteDueInProgress(ctx, now)
	if err != nil {
		return promoted, 0, fmt.Errorf("complete due deliveries: %w", err)
	}

	return promoted, completed, nil
}
