// Package txmanager менеджер сериализуемых транзакций для БД,
// обернутой в dbmetrics.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fitbrawl/GMS-BookingService/pkg/dbmetrics"
)

// maxRetries максимальное число повторов при serialization failure
const maxRetries = 3

// ErrTxFailed возвращается, когда транзакция не смогла завершиться
var ErrTxFailed = errors.New("txmanager: transaction failed")

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в сериализуемых транзакциях
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE
// Транзакция передается вниз через context (dbmetrics.WithTx)
// При serialization failure или deadlock повторяет до maxRetries раз
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = m.runOnce(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTxFailed, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTxFailed, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	// Цепочка ошибки сохраняется: serialization failure при commit
	// должен остаться видимым для isRetryable
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTxFailed, err)
	}

	return nil
}

// isRetryable возвращает true для ошибок, при которых транзакцию
// можно безопасно повторить: serialization_failure (40001) и deadlock_detected (40P01)
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
