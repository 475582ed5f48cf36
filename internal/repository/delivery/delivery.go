package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, truck_id, driver_id, cargo_type, cargo_value, surcharged_value,
	destination, region, has_insurance, is_high_value, is_hazardous,
	start_date, end_date, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (truck_id, driver_id, cargo_type, cargo_value, surcharged_value,
			destination, region, has_insurance, is_high_value, is_hazardous,
			start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + deliveryColumns

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryEntity.TruckID,
		deliveryEntity.DriverID,
		deliveryEntity.CargoType.String(),
		deliveryEntity.CargoValue,
		deliveryEntity.SurchargedValue,
		deliveryEntity.Destination,
		deliveryEntity.Region.String(),
		deliveryEntity.HasInsurance,
		deliveryEntity.IsHighValue,
		deliveryEntity.IsHazardous,
		deliveryEntity.StartDate,
		deliveryEntity.EndDate,
		deliveryEntity.Status.String(),
	).Scan(
		&deliveryDB.ID,
		&deliveryDB.TruckID,
		&deliveryDB.DriverID,
		&deliveryDB.CargoType,
		&deliveryDB.CargoValue,
		&deliveryDB.SurchargedValue,
		&deliveryDB.Destination,
		&deliveryDB.Region,
		&deliveryDB.HasInsurance,
		&deliveryDB.IsHighValue,
		&deliveryDB.IsHazardous,
		&deliveryDB.StartDate,
		&deliveryDB.EndDate,
		&deliveryDB.Status,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", repository.WrapTransient(err))
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryView, error) {
	query := `
		SELECT d.id, d.truck_id, d.driver_id, d.cargo_type, d.cargo_value, d.surcharged_value,
			d.destination, d.region, d.has_insurance, d.is_high_value, d.is_hazardous,
			d.start_date, d.end_date, d.status, d.created_at, d.updated_at,
			dr.name, t.model, t.plate
		FROM deliveries d
		JOIN drivers dr ON dr.id = d.driver_id
		JOIN trucks t ON t.id = d.truck_id
		WHERE d.id = $1`

	var viewDB DeliveryViewDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&viewDB.ID,
		&viewDB.TruckID,
		&viewDB.DriverID,
		&viewDB.CargoType,
		&viewDB.CargoValue,
		&viewDB.SurchargedValue,
		&viewDB.Destination,
		&viewDB.Region,
		&viewDB.HasInsurance,
		&viewDB.IsHighValue,
		&viewDB.IsHazardous,
		&viewDB.StartDate,
		&viewDB.EndDate,
		&viewDB.Status,
		&viewDB.CreatedAt,
		&viewDB.UpdatedAt,
		&viewDB.DriverName,
		&viewDB.TruckModel,
		&viewDB.TruckPlate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}

		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", repository.WrapTransient(err))
	}

	return ToViewDomain(&viewDB), nil
}

// GetAll lists every delivery that has not been soft-removed.
func (r *Repository) GetAll(ctx context.Context) ([]entities.DeliveryView, error) {
	query := `
		SELECT d.id, d.truck_id, d.driver_id, d.cargo_type, d.cargo_value, d.surcharged_value,
			d.destination, d.region, d.has_insurance, d.is_high_value, d.is_hazardous,
			d.start_date, d.end_date, d.status, d.created_at, d.updated_at,
			dr.name, t.model, t.plate
		FROM deliveries d
		JOIN drivers dr ON dr.id = d.driver_id
		JOIN trucks t ON t.id = d.truck_id
		WHERE d.status != 'removed'
		ORDER BY d.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", repository.WrapTransient(err))
	}
	defer rows.Close()

	viewModels := make([]DeliveryViewDB, 0, 8)
	for rows.Next() {
		var viewDB DeliveryViewDB
		err := rows.Scan(
			&viewDB.ID,
			&viewDB.TruckID,
			&viewDB.DriverID,
			&viewDB.CargoType,
			&viewDB.CargoValue,
			&viewDB.SurchargedValue,
			&viewDB.Destination,
			&viewDB.Region,
			&viewDB.HasInsurance,
			&viewDB.IsHighValue,
			&viewDB.IsHazardous,
			&viewDB.StartDate,
			&viewDB.EndDate,
			&viewDB.Status,
			&viewDB.CreatedAt,
			&viewDB.UpdatedAt,
			&viewDB.DriverName,
			&viewDB.TruckModel,
			&viewDB.TruckPlate,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
		}
		viewModels = append(viewModels, viewDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", repository.WrapTransient(err))
	}

	return ToViewDomainList(viewModels), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	builder := qb.
		Update("deliveries")

	if deliveryModifyDB.CargoType != nil {
		builder = builder.Set("cargo_type", deliveryModifyDB.CargoType)
	}
	if deliveryModifyDB.CargoValue != nil {
		builder = builder.Set("cargo_value", deliveryModifyDB.CargoValue)
	}
	if deliveryModifyDB.SurchargedValue != nil {
		builder = builder.Set("surcharged_value", deliveryModifyDB.SurchargedValue)
	}
	if deliveryModifyDB.Destination != nil {
		builder = builder.Set("destination", deliveryModifyDB.Destination)
	}
	if deliveryModifyDB.Region != nil {
		builder = builder.Set("region", deliveryModifyDB.Region)
	}
	if deliveryModifyDB.HasInsurance != nil {
		builder = builder.Set("has_insurance", deliveryModifyDB.HasInsurance)
	}
	if deliveryModifyDB.IsHighValue != nil {
		builder = builder.Set("is_high_value", deliveryModifyDB.IsHighValue)
	}
	if deliveryModifyDB.IsHazardous != nil {
		builder = builder.Set("is_hazardous", deliveryModifyDB.IsHazardous)
	}
	if deliveryModifyDB.StartDate != nil {
		builder = builder.Set("start_date", deliveryModifyDB.StartDate)
	}
	if deliveryModifyDB.EndDate != nil {
		builder = builder.Set("end_date", deliveryModifyDB.EndDate)
	}
	if deliveryModifyDB.Status != nil {
		builder = builder.Set("status", deliveryModifyDB.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyDB.ID}).
		Where(sq.NotEq{"status": "removed"}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&deliveryDB.ID,
		&deliveryDB.TruckID,
		&deliveryDB.DriverID,
		&deliveryDB.CargoType,
		&deliveryDB.CargoValue,
		&deliveryDB.SurchargedValue,
		&deliveryDB.Destination,
		&deliveryDB.Region,
		&deliveryDB.HasInsurance,
		&deliveryDB.IsHighValue,
		&deliveryDB.IsHazardous,
		&deliveryDB.StartDate,
		&deliveryDB.EndDate,
		&deliveryDB.Status,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}

		return nil, fmt.Errorf("unexpected delivery repository update error: %w", repository.WrapTransient(err))
	}

	return ToDomain(&deliveryDB), nil
}

// CountTruckDeliveriesInMonth counts non-removed deliveries whose window
// intersects [monthStart, monthEnd).
func (r *Repository) CountTruckDeliveriesInMonth(ctx context.Context, truckID int64, monthStart, monthEnd time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE truck_id = $1
		  AND status != 'removed'
		  AND start_date < $3
		  AND end_date >= $2`

	var count int64
	err := r.querier.QueryRow(ctx, query, truckID, monthStart, monthEnd).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository truck month count error: %w", repository.WrapTransient(err))
	}

	return count, nil
}

func (r *Repository) HasAwaitingOverlap(ctx context.Context, driverID int64, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM deliveries
			WHERE driver_id = $1
			  AND status = 'awaiting_start'
			  AND start_date <= $3
			  AND end_date >= $2
		)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, driverID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository overlap check error: %w", repository.WrapTransient(err))
	}

	return exists, nil
}

func (r *Repository) CountDriverBookedInMonth(ctx context.Context, driverID int64, monthStart, monthEnd time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE driver_id = $1
		  AND status IN ('awaiting_start', 'completed')
		  AND start_date < $3
		  AND end_date >= $2`

	var count int64
	err := r.querier.QueryRow(ctx, query, driverID, monthStart, monthEnd).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository driver month count error: %w", repository.WrapTransient(err))
	}

	return count, nil
}

func (r *Repository) HasActiveDelivery(ctx context.Context, driverID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM deliveries
			WHERE driver_id = $1
			  AND status NOT IN ('awaiting_start', 'completed', 'removed')
		)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository active check error: %w", repository.WrapTransient(err))
	}

	return exists, nil
}

// TruckHasLiveClaim follows the truck's delivery back-reference and reports
// whether it points at a delivery that is still live.
func (r *Repository) TruckHasLiveClaim(ctx context.Context, truckID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM trucks t
			JOIN deliveries d ON d.id = t.delivery_id
			WHERE t.id = $1
			  AND d.status NOT IN ('completed', 'removed')
		)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, truckID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository claim check error: %w", repository.WrapTransient(err))
	}

	return exists, nil
}

// TransitionStatus flips the status only when the row is still in the
// expected prior state; false means someone else got there first.
func (r *Repository) TransitionStatus(ctx context.Context, id int64, from, to entities.DeliveryStatusType) (bool, error) {
	query := `
		UPDATE deliveries
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1
		  AND status = $2`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository transition error: %w", repository.WrapTransient(err))
	}

	return result.RowsAffected() > 0, nil
}

// Remove soft-deletes the delivery; the row stays for quota history.
func (r *Repository) Remove(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE deliveries
		SET status = 'removed',
			updated_at = NOW()
		WHERE id = $1
		  AND status != 'removed'`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository remove error: %w", repository.WrapTransient(err))
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) PromoteDueAwaiting(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE deliveries
		SET status = 'in_progress',
			updated_at = NOW()
		WHERE status = 'awaiting_start'
		  AND start_date <= $1`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository promote error: %w", repository.WrapTransient(err))
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CompleteDueInProgress(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE deliveries
		SET status = 'completed',
			updated_at = NOW()
		WHERE status = 'in_progress'
		  AND end_date <= $1`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository complete error: %w", repository.WrapTransient(err))
	}

	return result.RowsAffected(), nil
}
