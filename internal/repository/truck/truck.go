package truck

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/truck"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, truckModifyEntity entities.TruckModify) (int64, error) {
	truckModifyModel := FromDomainModify(&truckModifyEntity)
	query := `INSERT INTO trucks (plate, model, capacity_kg, status)
		VALUES ($1, $2, $3, COALESCE($4, 'available'))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		truckModifyModel.Plate,
		truckModifyModel.Model,
		truckModifyModel.CapacityKg,
		truckModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, truck.ErrConflict
		}
		return 0, fmt.Errorf("unexpected truck repository create error: %w", repository.WrapTransient(err))
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, truckModifyEntity entities.TruckModify) (*entities.Truck, error) {
	truckModifyModel := FromDomainModify(&truckModifyEntity)

	builder := qb.
		Update("trucks")

	if truckModifyModel.Plate != nil {
		builder = builder.Set("plate", truckModifyModel.Plate)
	}
	if truckModifyModel.Model != nil {
		builder = builder.Set("model", truckModifyModel.Model)
	}
	if truckModifyModel.CapacityKg != nil {
		builder = builder.Set("capacity_kg", truckModifyModel.CapacityKg)
	}
	if truckModifyModel.Status != nil {
		builder = builder.Set("status", truckModifyModel.Status)
	}
	if truckModifyEntity.ClearDelivery {
		builder = builder.Set("delivery_id", nil)
	} else if truckModifyModel.DeliveryID != nil {
		builder = builder.Set("delivery_id", truckModifyModel.DeliveryID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": truckModifyModel.ID}).
		Suffix("RETURNING id, plate, model, capacity_kg, status, delivery_id, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository update error: %w", err)
	}

	var truckModel TruckDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&truckModel.ID,
			&truckModel.Plate,
			&truckModel.Model,
			&truckModel.CapacityKg,
			&truckModel.Status,
			&truckModel.DeliveryID,
			&truckModel.CreatedAt,
			&truckModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, truck.ErrTruckNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, truck.ErrConflict
		}

		return nil, fmt.Errorf("unexpected truck repository update error: %w", repository.WrapTransient(err))
	}

	return ToDomain(&truckModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Truck, error) {
	query := `SELECT id, plate, model, capacity_kg, status, delivery_id, created_at, updated_at
		FROM trucks
		WHERE id = $1`

	var truckModel TruckDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&truckModel.ID,
			&truckModel.Plate,
			&truckModel.Model,
			&truckModel.CapacityKg,
			&truckModel.Status,
			&truckModel.DeliveryID,
			&truckModel.CreatedAt,
			&truckModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, truck.ErrTruckNotFound
		}

		return nil, fmt.Errorf("unexpected truck repository getbyid error: %w", repository.WrapTransient(err))
	}

	return ToDomain(&truckModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Truck, error) {
	query := `
	SELECT id, plate, model, capacity_kg, status, delivery_id, created_at, updated_at
	FROM trucks
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository getall error: %w", repository.WrapTransient(err))
	}
	defer rows.Close()

	truckModels := make([]TruckDB, 0, 8)
	for rows.Next() {
		var truckModel TruckDB
		err := rows.Scan(
			&truckModel.ID,
			&truckModel.Plate,
			&truckModel.Model,
			&truckModel.CapacityKg,
			&truckModel.Status,
			&truckModel.DeliveryID,
			&truckModel.CreatedAt,
			&truckModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected truck repository getall error: %w", err)
		}
		truckModels = append(truckModels, truckModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository getall error: %w", repository.WrapTransient(err))
	}

	return ToDomainList(truckModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM trucks WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected truck repository delete error: %w", repository.WrapTransient(err))
	}

	if result.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}
