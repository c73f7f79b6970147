package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitbrawl/GMS-BookingService/pkg/dbmetrics"
)

type stubTx struct {
	commitErr  error
	rolledBack bool
}

func (t *stubTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *stubTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *stubTx) Commit() error { return t.commitErr }

func (t *stubTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type stubBeginner struct {
	attempts int
	lastOpts *sql.TxOptions
	txFn     func(attempt int) *stubTx
}

func (b *stubBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.attempts++
	b.lastOpts = opts
	return b.txFn(b.attempts), nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access"}
}

func TestDoSerializable_Success(t *testing.T) {
	beginner := &stubBeginner{txFn: func(attempt int) *stubTx { return &stubTx{} }}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, sql.LevelSerializable, beginner.lastOpts.Isolation)
}

func TestDoSerializable_RetriesOnCommitSerializationFailure(t *testing.T) {
	// Serialization failure при commit - штатный сигнал конкуренции
	// под SERIALIZABLE, транзакция повторяется целиком
	beginner := &stubBeginner{txFn: func(attempt int) *stubTx {
		return &stubTx{commitErr: serializationFailure()}
	}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, maxRetries, beginner.attempts)
}

func TestDoSerializable_SecondAttemptSucceeds(t *testing.T) {
	beginner := &stubBeginner{txFn: func(attempt int) *stubTx {
		if attempt == 1 {
			return &stubTx{commitErr: serializationFailure()}
		}
		return &stubTx{}
	}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.attempts)
}

func TestDoSerializable_RetriesOnDeadlockInsideTx(t *testing.T) {
	// Ошибка запроса внутри транзакции сохраняет цепочку через обертки,
	// поэтому deadlock (40P01) тоже распознается как повторяемый
	beginner := &stubBeginner{txFn: func(attempt int) *stubTx { return &stubTx{} }}
	m := NewTransactionManager(beginner)

	deadlock := &pq.Error{Code: "40P01", Message: "deadlock detected"}
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("wrapped: %w", deadlock)
	})

	require.Error(t, err)
	assert.Equal(t, maxRetries, beginner.attempts)
}

func TestDoSerializable_NonRetryableCommitError(t *testing.T) {
	beginner := &stubBeginner{txFn: func(attempt int) *stubTx {
		return &stubTx{commitErr: errors.New("connection reset")}
	}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 1, beginner.attempts)
}

func TestDoSerializable_FnErrorReturnedAsIsWithRollback(t *testing.T) {
	tx := &stubTx{}
	beginner := &stubBeginner{txFn: func(attempt int) *stubTx { return tx }}
	m := NewTransactionManager(beginner)

	sentinel := errors.New("business rule violated")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return sentinel })

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, beginner.attempts)
	assert.True(t, tx.rolledBack)
}
