package report

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/report"
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

func (r *Repository) Create(ctx context.Context, reportModifyEntity entities.ReportModify) (int64, error) {
	reportModifyModel := FromDomainModify(&reportModifyEntity)
	query := `INSERT INTO reports (title, description, image, is_active, created_by)
		VALUES ($1, $2, $3, COALESCE($4, TRUE), $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		reportModifyModel.Title,
		reportModifyModel.Description,
		reportModifyModel.Image,
		reportModifyModel.IsActive,
		reportModifyModel.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository create error: %w", repository.WrapTransient(err))
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, reportModifyEntity entities.ReportModify) (*entities.Report, error) {
	reportModifyModel := FromDomainModify(&reportModifyEntity)

	builder := qb.
		Update("reports")

	if reportModifyModel.Title != nil {
		builder = builder.Set("title", reportModifyModel.Title)
	}
	if reportModifyModel.Description != nil {
		builder = builder.Set("description", reportModifyModel.Description)
	}
	if reportModifyModel.Image != nil {
		builder = builder.Set("image", reportModifyModel.Image)
	}
	if reportModifyModel.IsActive != nil {
		builder = builder.Set("is_active", reportModifyModel.IsActive)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": reportModifyModel.ID}).
		Suffix("RETURNING id, title, description, image, is_active, created_by, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository update error: %w", err)
	}

	var reportModel ReportDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&reportModel.ID,
			&reportModel.Title,
			&reportModel.Description,
			&reportModel.Image,
			&reportModel.IsActive,
			&reportModel.CreatedBy,
			&reportModel.CreatedAt,
			&reportModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrReportNotFound
		}

		return nil, fmt.Errorf("unexpected report repository update error: %w", repository.WrapTransient(err))
	}

	return ToDomain(&reportModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Report, error) {
	query := `SELECT id, title, description, image, is_active, created_by, created_at, updated_at
		FROM reports
		WHERE id = $1`

	var reportModel ReportDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&reportModel.ID,
			&reportModel.Title,
			&reportModel.Description,
			&reportModel.Image,
			&reportModel.IsActive,
			&reportModel.CreatedBy,
			&reportModel.CreatedAt,
			&reportModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrReportNotFound
		}

		return nil, fmt.Errorf("unexpected report repository getbyid error: %w", repository.WrapTransient(err))
	}

	return ToDomain(&reportModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Report, error) {
	query := `
	SELECT id, title, description, image, is_active, created_by, created_at, updated_at
	FROM reports
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository getall error: %w", repository.WrapTransient(err))
	}
	defer rows.Close()

	reportModels := make([]ReportDB, 0, 8)
	for rows.Next() {
		var reportModel ReportDB
		err := rows.Scan(
			&reportModel.ID,
			&reportModel.Title,
			&reportModel.Description,
			&reportModel.Image,
			&reportModel.IsActive,
			&reportModel.CreatedBy,
			&reportModel.CreatedAt,
			&reportModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected report repository getall error: %w", err)
		}
		reportModels = append(reportModels, reportModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository getall error: %w", repository.WrapTransient(err))
	}

	return ToDomainList(reportModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reports WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected report repository delete error: %w", repository.WrapTransient(err))
	}

	if result.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}

	return nil
}
