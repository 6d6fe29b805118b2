// Package txmanager runs functions inside serializable transactions over a
// metrics-wrapped database handle.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/lepikeman/qrenoo-booking/pkg/dbmetrics"
)

// pq error code for serialization_failure.
const pqSerializationFailure = "40001"

// maxRetries bounds the automatic retries after a serialization failure.
const maxRetries = 3

// TxBeginner starts transactions. Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager runs callbacks inside transactions, exposing the open
// transaction to repositories through the context.
type TransactionManager struct {
	db TxBeginner
}

func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction and retries a
// bounded number of times on serialization failures.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("txmanager: serialization retries exhausted: %w", err)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("txmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}
