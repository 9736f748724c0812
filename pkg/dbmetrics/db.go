package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Recorder получатель метрик БД (реализуется pkg/metrics.Metrics)
type Recorder interface {
	ObserveDBQuery(operation string, duration time.Duration)
	SetDBStats(open, inUse, idle int, waitCount int64)
}

// DB обёртка над *sql.DB, измеряющая длительность запросов
// Если recorder == nil, работает как прозрачный прокси
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает *sql.DB
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// Unwrap возвращает исходный *sql.DB
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию, запросы внутри которой тоже измеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

// CollectStats периодически выгружает статистику пула соединений, пока не закрыт stop
func (d *DB) CollectStats(interval time.Duration, stop <-chan struct{}) {
	if d.recorder == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s := d.db.Stats()
			d.recorder.SetDBStats(s.OpenConnections, s.InUse, s.Idle, s.WaitCount)
		}
	}
}

func (d *DB) observe(query string, started time.Time) {
	if d.recorder == nil {
		return
	}
	d.recorder.ObserveDBQuery(operationName(query), time.Since(started))
}

// Tx транзакция с измерением запросов
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe(query, time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe(query, time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe(query, time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// operationName первое слово запроса: select, insert, update, delete, with ...
func operationName(query string) string {
	query = strings.TrimSpace(query)
	if idx := strings.IndexAny(query, " \n\t"); idx > 0 {
		query = query[:idx]
	}
	if query == "" {
		return "unknown"
	}
	return strings.ToLower(query)
}
