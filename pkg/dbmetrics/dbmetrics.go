// Package dbmetrics wraps database/sql with query metrics and carries the
// active executor (plain connection or transaction) through the context.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/lepikeman/qrenoo-booking/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB, *sql.Tx and the
// metric wrappers.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB wraps *sql.DB and records query timings.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap wraps db with query metrics.
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{db: db, metrics: m, service: service}
}

// WrapWithDefault wraps db and starts a goroutine publishing connection pool
// gauges every 10 seconds until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues(d.service).Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsInUse.WithLabelValues(d.service).Set(float64(stats.InUse))
			d.metrics.DBConnectionsIdle.WithLabelValues(d.service).Set(float64(stats.Idle))
		}
	}
}

func (d *DB) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.DBQueriesTotal.WithLabelValues(op, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx opens a transaction whose statements are also measured.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin_tx", start, err)
	if err != nil {
		return nil, err
	}
	return &measuredTx{tx: tx, db: d}, nil
}

type measuredTx struct {
	tx *sql.Tx
	db *DB
}

func (t *measuredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe("tx_exec", start, err)
	return res, err
}

func (t *measuredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe("tx_query", start, err)
	return rows, err
}

func (t *measuredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe("tx_query_row", start, nil)
	return row
}

func (t *measuredTx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.db.observe("commit", start, err)
	return err
}

func (t *measuredTx) Rollback() error {
	return t.tx.Rollback()
}
