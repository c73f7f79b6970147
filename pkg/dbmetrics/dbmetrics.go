// Package dbmetrics обертка над *sql.DB со сбором метрик запросов
// и передачей активной транзакции через context.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/fitbrawl/GMS-BookingService/pkg/metrics"
)

// DBExecutor минимальный интерфейс для выполнения запросов
// Реализуется *sql.DB, *sql.Tx, *DB и *Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey struct{}

// WithTx кладет активную транзакцию в context
// Репозитории достают её через GetExecutor
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// GetExecutor возвращает транзакцию из context, если она есть,
// иначе переданный по умолчанию executor
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(ctxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в context есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return ok
}

// DB обертка над *sql.DB, записывающая длительность запросов в метрики
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB сбором метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновый сбор статистики
// connection pool; сбор останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				m.SetPoolStats(dbName, db.Stats())
			}
		}
	}()

	return wrapped
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start).Seconds())
	return result, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start).Seconds())
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start).Seconds())
	return row
}

// BeginTx начинает транзакцию; возвращаемый Tx также пишет метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

// Tx обертка над *sql.Tx со сбором метрик
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

// ExecContext выполняет запрос в транзакции с записью метрик
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", time.Since(start).Seconds())
	return result, err
}

// QueryContext выполняет запрос в транзакции с записью метрик
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", time.Since(start).Seconds())
	return rows, err
}

// QueryRowContext выполняет запрос в транзакции с записью метрик
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", time.Since(start).Seconds())
	return row
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
