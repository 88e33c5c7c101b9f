// Package sql stores the local chain index, governance objects and registries in sqlite.
package sql

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	sqlite "github.com/go-llsqlite/crawshaw"
	"github.com/go-llsqlite/crawshaw/sqlitex"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/metrics"
)

var (
	// ErrNoConnection is returned when the pool has no connection for the caller.
	ErrNoConnection = errors.New("database: no free connection")
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("database: not found")
	// ErrObjectExists is returned when a unique or primary key constraint rejects an insert.
	ErrObjectExists = errors.New("database: object exists")
)

var queryLatency = metrics.NewHistogramWithBuckets(
	"query_seconds",
	"database",
	"latency of database queries in seconds",
	[]string{"query"},
	prometheus.ExponentialBuckets(0.0001, 2, 20),
)

// Statement is a prepared sqlite statement.
type Statement = sqlite.Stmt

// Encoder binds the parameters of a statement. Positional (?1) and named
// (@name) parameters are both supported.
type Encoder func(*Statement)

// Decoder receives every row of a result. Returning false stops the iteration.
type Decoder func(*Statement) bool

// Executor runs a single statement.
type Executor interface {
	Exec(string, Encoder, Decoder) (int, error)
}

// Migrations brings a fresh or older database to the current schema.
type Migrations func(Executor) error

type options struct {
	connections int
	migrations  Migrations
	latency     bool
	logger      *zap.Logger
}

// Opt configures a database.
type Opt func(*options)

// WithConnections sets the size of the connection pool.
func WithConnections(n int) Opt {
	return func(o *options) {
		o.connections = n
	}
}

// WithMigrations replaces the embedded migrations.
func WithMigrations(migrations Migrations) Opt {
	return func(o *options) {
		o.migrations = migrations
	}
}

// WithLatencyMetering records the latency of every query executed outside a transaction.
func WithLatencyMetering(enable bool) Opt {
	return func(o *options) {
		o.latency = enable
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(o *options) {
		o.logger = logger
	}
}

// InMemory opens a single connection in-memory database and panics on failure.
// It is meant for tests.
func InMemory(opts ...Opt) *Database {
	db, err := OpenInMemory(opts...)
	if err != nil {
		panic(err)
	}
	return db
}

// OpenInMemory opens a single connection in-memory database.
func OpenInMemory(opts ...Opt) (*Database, error) {
	return Open("file::memory:?mode=memory", append(opts, WithConnections(1))...)
}

// Open opens the database at uri in WAL mode and applies the migrations.
func Open(uri string, opts ...Opt) (*Database, error) {
	o := options{
		connections: 16,
		migrations:  embeddedMigrations,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	flags := sqlite.SQLITE_OPEN_READWRITE | sqlite.SQLITE_OPEN_CREATE | sqlite.SQLITE_OPEN_WAL |
		sqlite.SQLITE_OPEN_URI | sqlite.SQLITE_OPEN_NOMUTEX
	pool, err := sqlitex.Open(uri, flags, o.connections)
	if err != nil {
		return nil, fmt.Errorf("open db %s: %w", uri, err)
	}
	db := &Database{pool: pool, latency: o.latency}
	if o.migrations == nil {
		return db, nil
	}
	start := time.Now()
	if err := db.WithTx(context.Background(), func(tx *Tx) error {
		return o.migrations(tx)
	}); err != nil {
		return nil, errors.Join(fmt.Errorf("migrate db %s: %w", uri, err), db.Close())
	}
	o.logger.Debug("database ready", zap.String("uri", uri), zap.Duration("migration", time.Since(start)))
	return db, nil
}

// Database is a pool of sqlite connections.
type Database struct {
	pool    *sqlitex.Pool
	latency bool

	mu     sync.Mutex
	closed bool
}

func (db *Database) acquire(ctx context.Context) (*sqlite.Conn, error) {
	conn := db.pool.Get(ctx)
	if conn == nil {
		return nil, ErrNoConnection
	}
	return conn, nil
}

func (db *Database) begin(ctx context.Context, mode string) (*Tx, error) {
	conn, err := db.acquire(ctx)
	if err != nil {
		return nil, err
	}
	if err := step(conn, mode); err != nil {
		db.pool.Put(conn)
		return nil, fmt.Errorf("begin: %w", err)
	}
	return &Tx{db: db, conn: conn}, nil
}

// Tx starts a deferred transaction. It takes the write lock on the first
// write statement. The caller must Release it.
func (db *Database) Tx(ctx context.Context) (*Tx, error) {
	return db.begin(ctx, "BEGIN;")
}

// WithTx runs exec in an immediate transaction and commits when exec returns nil.
func (db *Database) WithTx(ctx context.Context, exec func(*Tx) error) error {
	tx, err := db.begin(ctx, "BEGIN IMMEDIATE;")
	if err != nil {
		return err
	}
	defer tx.Release()
	if err := exec(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Exec runs query on a pooled connection. Statements that must be atomic
// together, like a vote and its tally, belong in WithTx.
func (db *Database) Exec(query string, encoder Encoder, decoder Decoder) (int, error) {
	conn, err := db.acquire(context.Background())
	if err != nil {
		return 0, err
	}
	defer db.pool.Put(conn)
	if db.latency {
		defer func(start time.Time) {
			queryLatency.WithLabelValues(query).Observe(time.Since(start).Seconds())
		}(time.Now())
	}
	return exec(conn, query, encoder, decoder)
}

// Close closes the pool. Closing twice is a no-op.
func (db *Database) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil
	}
	if err := db.pool.Close(); err != nil {
		return fmt.Errorf("close pool: %w", err)
	}
	db.closed = true
	return nil
}

// Tx is a transaction on a single connection.
type Tx struct {
	db        *Database
	conn      *sqlite.Conn
	committed bool
}

// Commit commits the transaction.
func (tx *Tx) Commit() error {
	if err := step(tx.conn, "COMMIT;"); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	tx.committed = true
	return nil
}

// Release rolls back an uncommitted transaction and returns the connection to the pool.
func (tx *Tx) Release() error {
	defer tx.db.pool.Put(tx.conn)
	if tx.committed {
		return nil
	}
	return step(tx.conn, "ROLLBACK;")
}

func (tx *Tx) Exec(query string, encoder Encoder, decoder Decoder) (int, error) {
	return exec(tx.conn, query, encoder, decoder)
}

func step(conn *sqlite.Conn, query string) error {
	_, err := conn.Prep(query).Step()
	return err
}

func exec(conn *sqlite.Conn, query string, encoder Encoder, decoder Decoder) (int, error) {
	stmt, err := conn.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("prepare %s: %w", query, err)
	}
	defer stmt.ClearBindings()
	if encoder != nil {
		encoder(stmt)
	}
	var rows int
	for {
		more, err := stmt.Step()
		switch {
		case err != nil:
			return 0, classify(err, rows)
		case !more:
			return rows, nil
		}
		rows++
		if decoder != nil && !decoder(stmt) {
			if err := stmt.Reset(); err != nil {
				return rows, fmt.Errorf("reset statement: %w", err)
			}
			return rows, nil
		}
	}
}

func classify(err error, row int) error {
	switch sqlite.ErrCode(err) {
	case sqlite.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite.SQLITE_CONSTRAINT_UNIQUE:
		return ErrObjectExists
	default:
		return fmt.Errorf("step %d: %w", row, err)
	}
}

// IsNull reports whether column col of the current row is null.
func IsNull(stmt *Statement, col int) bool {
	return stmt.ColumnType(col) == sqlite.SQLITE_NULL
}

// ColumnBytes copies blob column col of the current row.
func ColumnBytes(stmt *Statement, col int) []byte {
	buf := make([]byte, stmt.ColumnLen(col))
	stmt.ColumnBytes(col, buf)
	return buf
}
