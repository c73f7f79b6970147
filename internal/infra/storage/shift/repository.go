package shift

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/pkg/dbmetrics"
	"github.com/fitbrawl/GMS-BookingService/pkg/psqlbuilder"
)

var shiftColumns = []string{
	"id",
	"trainer_id",
	"weekday",
	"shift_start",
	"shift_end",
	"break_start",
	"break_end",
	"is_active",
}

// Repository репозиторий расписания смен тренеров
// Смены мутируются только админским контуром; этот сервис их читает
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTrainerAndWeekday получает активную смену тренера на день недели
// Отсутствие смены означает выходной день
func (r *Repository) GetByTrainerAndWeekday(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shiftColumns...).
		From("trainer_shifts").
		Where(squirrel.Eq{
			"trainer_id": trainerID,
			"weekday":    int(weekday),
			"is_active":  true,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrainerAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.ShiftSchedule
	var weekdayInt int

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.TrainerID,
		&weekdayInt,
		&schedule.ShiftStart,
		&schedule.ShiftEnd,
		&schedule.BreakStart,
		&schedule.BreakEnd,
		&schedule.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrainerAndWeekday - scan shift: %w", ErrScanRow, err)
	}

	schedule.Weekday = time.Weekday(weekdayInt)

	return &schedule, nil
}

// ListByTrainer получает все активные смены тренера (недельное расписание)
func (r *Repository) ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.ShiftSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shiftColumns...).
		From("trainer_shifts").
		Where(squirrel.Eq{
			"trainer_id": trainerID,
			"is_active":  true,
		}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTrainer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTrainer - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.ShiftSchedule, 0)
	for rows.Next() {
		var schedule domain.ShiftSchedule
		var weekdayInt int

		err := rows.Scan(
			&schedule.ID,
			&schedule.TrainerID,
			&weekdayInt,
			&schedule.ShiftStart,
			&schedule.ShiftEnd,
			&schedule.BreakStart,
			&schedule.BreakEnd,
			&schedule.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTrainer - scan row: %w", ErrScanRow, err)
		}

		schedule.Weekday = time.Weekday(weekdayInt)
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTrainer - rows error: %w", ErrScanRow, err)
	}

	return schedules, nil
}
