// Package simpletxmanager менеджер сериализуемых транзакций для чистого
// *sql.DB (без обертки метрик).
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fitbrawl/GMS-BookingService/pkg/dbmetrics"
)

const maxRetries = 3

// ErrTxFailed возвращается, когда транзакция не смогла завершиться
var ErrTxFailed = errors.New("simpletxmanager: transaction failed")

// TransactionManager выполняет функции в сериализуемых транзакциях
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE
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

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
