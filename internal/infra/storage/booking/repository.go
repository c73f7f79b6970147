package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/pkg/dbmetrics"
	"github.com/fitbrawl/GMS-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный набор колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"user_id",
	"trainer_id",
	"class_type",
	"booking_date",
	"start_time",
	"duration_minutes",
	"status",
	"trainer_name",
	"block_deadline",
	"block_reason",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Пересечение интервалов с активными бронированиями того же тренера
// отлавливается exclusion constraint'ом БД и возвращается как ErrSlotConflict -
// это последний рубеж защиты от гонки между проверкой слота и вставкой
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"trainer_id",
			"class_type",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"trainer_name",
		).
		Values(
			booking.UserID,
			booking.TrainerID,
			booking.ClassType,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.Status,
			booking.TrainerName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isOverlapViolation(err) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetActiveByTrainerAndDate получает активные бронирования тренера на дату,
// отсортированные по времени начала
// Внутри транзакции строки блокируются (FOR UPDATE) - используется
// usecase'ами создания и переноса бронирования
func (r *Repository) GetActiveByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"trainer_id":   trainerID,
			"booking_date": date,
			"status":       statusStrings(domain.ActiveStatuses),
		}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTrainerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTrainerAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByTrainerAndPeriod получает бронирования тренера за период (админский обзор)
func (r *Repository) GetByTrainerAndPeriod(ctx context.Context, trainerID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrainerAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrainerAndPeriod - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SumActiveMinutes суммирует минуты активных бронирований пользователя
// за период [from, to] по дате занятия
// Используется агрегатором недельного лимита; значение никогда не кешируется
func (r *Repository) SumActiveMinutes(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(duration_minutes), 0)").
		From("bookings").
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  statusStrings(domain.ActiveStatuses),
		}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumActiveMinutes - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumActiveMinutes - scan sum: %w", ErrScanRow, err)
	}

	return total, nil
}

// GetOverlappingConfirmed получает подтвержденные бронирования тренера на дату,
// пересекающиеся с окном [blockStart, blockEnd) в минутах с начала суток
// Общая логика поиска пересечений для preview и apply блокировки
func (r *Repository) GetOverlappingConfirmed(ctx context.Context, trainerID int64, date time.Time, blockStart, blockEnd int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Полуоткрытое пересечение: start < blockEnd AND blockStart < end
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"trainer_id":   trainerID,
			"booking_date": date,
			"status":       string(domain.StatusConfirmed),
		}).
		Where("start_minute < ?", blockEnd).
		Where("start_minute + duration_minutes > ?", blockStart).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingConfirmed - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListExpiredPendingResolution получает страницу бронирований в статусе
// pending_resolution с истекшим дедлайном
// limit ограничивает размер страницы, чтобы реконсилер не держал
// долгие транзакции под нагрузкой
func (r *Repository) ListExpiredPendingResolution(ctx context.Context, now time.Time, limit int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": string(domain.StatusPendingResolution)}).
		Where(squirrel.LtOrEq{"block_deadline": now}).
		OrderBy("block_deadline ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListExpiredPendingResolution - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListExpiredPendingResolution - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// MarkPendingResolution переводит confirmed-бронирование в pending_resolution
// с установкой дедлайна и причины блокировки
// Условие WHERE status = 'confirmed' гарантирует, что переход выполняется
// только из разрешенного состояния
func (r *Repository) MarkPendingResolution(ctx context.Context, id int64, deadline time.Time, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusPendingResolution).
		Set("block_deadline", deadline).
		Set("block_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": string(domain.StatusConfirmed),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPendingResolution - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, query, args, "MarkPendingResolution")
}

// MarkRescheduled переводит pending_resolution-бронирование в rescheduled
func (r *Repository) MarkRescheduled(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusRescheduled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": string(domain.StatusPendingResolution),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRescheduled - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, query, args, "MarkRescheduled")
}

// Cancel переводит бронирование в cancelled с указанием причины
// Разрешен только из confirmed и pending_resolution
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": statusStrings(domain.ActiveStatuses),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, query, args, "Cancel")
}

// CompleteElapsed переводит в completed все confirmed-бронирования,
// время окончания которых уже прошло
// Возвращает количество обновленных строк (housekeeping, не критично для безопасности)
func (r *Repository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed)}).
		Where("booking_date + start_time + make_interval(mins => duration_minutes) <= ?", now).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompleteElapsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteElapsed - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteElapsed - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// execTransition выполняет guarded-переход статуса
// 0 затронутых строк означает, что бронирование не найдено или его статус
// уже изменился конкурентной операцией
func (r *Repository) execTransition(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrStatusTransition
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TrainerID,
		&booking.ClassType,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.TrainerName,
		&booking.BlockDeadline,
		&booking.BlockReason,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// isOverlapViolation возвращает true для нарушений exclusion constraint
// пересечения интервалов (код 23P01)
func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23P01"
	}
	return false
}

// statusStrings конвертирует статусы в строки для squirrel.Eq
func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
