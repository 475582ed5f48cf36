package delivery

import (
	"context"
	"fmt"
	"time"

	"fleet/internal/entities"
)

const (
	truckMonthlyLimit  = 4
	driverMonthlyLimit = 2
)

// booking is a candidate assembled by Create: inputs already anchored,
// classification already derived.
type booking struct {
	truck  *entities.Truck
	driver *entities.Driver
	region entities.RegionType
	start  time.Time
	end    time.Time
}

// checkBooking evaluates the conflict and quota rules in a fixed order
// and returns the first violation. The order is observable behavior:
// when several rules are violated at once, callers see exactly this one.
func (d *Delivery) checkBooking(ctx context.Context, b booking) error {
	if b.region == entities.RegionNortheast && b.driver.NortheastActive >= 1 {
		return ErrNortheastLimit
	}

	if b.end.Before(b.start) {
		return ErrInvalidWindow
	}

	monthStart, monthEnd := d.windows.MonthBounds(b.start)
	truckCount, err := d.repository.CountTruckDeliveriesInMonth(ctx, b.truck.ID, monthStart, monthEnd)
	if err != nil {
		return fmt.Errorf("count truck deliveries in month: %w", err)
	}
	if truckCount >= truckMonthlyLimit {
		return ErrTruckMonthQuota
	}

	today := d.windows.StartOfDay(d.clock.Now())
	if b.start.Before(today) {
		return ErrStartInPast
	}
	if b.end.Before(b.start) {
		return ErrEndBeforeStart
	}
	if b.end.Before(today) {
		return ErrEndInPast
	}

	overlaps, err := d.repository.HasAwaitingOverlap(ctx, b.driver.ID, b.start, b.end)
	if err != nil {
		return fmt.Errorf("check driver overlap: %w", err)
	}
	if overlaps {
		return ErrDriverOverlap
	}

	driverCount, err := d.repository.CountDriverBookedInMonth(ctx, b.driver.ID, monthStart, monthEnd)
	if err != nil {
		return fmt.Errorf("count driver bookings in month: %w", err)
	}
	if driverCount >= driverMonthlyLimit {
		return ErrDriverMonthQuota
	}

	active, err := d.repository.HasActiveDelivery(ctx, b.driver.ID)
	if err != nil {
		return fmt.Errorf("check driver active delivery: %w", err)
	}
	if active {
		return ErrDriverBusy
	}

	claimed, err := d.repository.TruckHasLiveClaim(ctx, b.truck.ID)
	if err != nil {
		return fmt.Errorf("check truck claim: %w", err)
	}
	if claimed {
		return ErrTruckClaimed
	}

	return nil
}
