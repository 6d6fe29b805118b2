package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepikeman/qrenoo-booking/pkg/dbmetrics"
)

var serializationErr = &pq.Error{Code: "40001"}

// stubTx satisfies dbmetrics.TxExecutor with a configurable commit error
type stubTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *stubTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *stubTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *stubTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *stubTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type stubBeginner struct {
	commitErrs []error // commit error per started transaction, in order
	begun      int
}

func (b *stubBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if b.begun < len(b.commitErrs) {
		commitErr = b.commitErrs[b.begun]
	}
	b.begun++
	return &stubTx{commitErr: commitErr}, nil
}

func TestDoSerializable_RetriesOnCommitConflict(t *testing.T) {
	// The first two commits lose to a concurrent writer, the third goes through
	beginner := &stubBeginner{commitErrs: []error{serializationErr, serializationErr, nil}}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, beginner.begun)
}

func TestDoSerializable_RetriesOnCallbackConflict(t *testing.T) {
	beginner := &stubBeginner{}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return serializationErr
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDoSerializable_RetriesExhausted(t *testing.T) {
	beginner := &stubBeginner{commitErrs: []error{serializationErr, serializationErr, serializationErr}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
	assert.Equal(t, maxRetries, beginner.begun)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	beginner := &stubBeginner{}
	m := NewTransactionManager(beginner)

	calls := 0
	wantErr := errors.New("boom")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}

func TestRun_PassesTransactionThroughContext(t *testing.T) {
	beginner := &stubBeginner{}
	m := NewTransactionManager(beginner)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		if !dbmetrics.IsInTransaction(ctx) {
			return errors.New("context does not carry the transaction")
		}
		return nil
	})

	require.NoError(t, err)
}
