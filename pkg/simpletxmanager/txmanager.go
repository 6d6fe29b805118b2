// Package simpletxmanager is the txmanager twin for a plain *sql.DB,
// used when metrics are disabled.
package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/lepikeman/qrenoo-booking/pkg/dbmetrics"
	"github.com/lepikeman/qrenoo-booking/pkg/txmanager"
)

// sqlBeginner adapts *sql.DB to txmanager.TxBeginner; *sql.Tx already
// satisfies dbmetrics.TxExecutor.
type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// TransactionManager runs callbacks inside transactions over a raw *sql.DB.
// It delegates to txmanager, so both managers behave identically, including
// the bounded retry of serializable transactions after a 40001 failure.
type TransactionManager struct {
	inner *txmanager.TransactionManager
}

func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{inner: txmanager.NewTransactionManager(sqlBeginner{db: db})}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.Do(ctx, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction and retries a
// bounded number of times on serialization failures.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoSerializable(ctx, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoReadOnly(ctx, fn)
}
