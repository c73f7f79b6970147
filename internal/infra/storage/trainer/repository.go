package trainer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/pkg/dbmetrics"
	"github.com/fitbrawl/GMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий тренеров (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тренера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"specialization",
		"is_active",
	).
		From("trainers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Trainer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&t.Specialization,
		&t.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan trainer: %w", ErrScanRow, err)
	}

	return &t, nil
}
