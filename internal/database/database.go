package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/RiskyOsDev/ariesrobot/internal/user"
)

// Supported values for the store driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DB owns the shared store handle. It is opened once at startup and
// injected into every invocation through the user repository.
type DB struct {
	driver string
	pool   *pgxpool.Pool
	sqlDB  *sql.DB
}

// Open connects to the store selected by driver and verifies the connection.
func Open(ctx context.Context, driver, databaseURL string) (*DB, error) {
	switch driver {
	case DriverPostgres:
		return openPostgres(ctx, databaseURL)
	case DriverSQLite:
		return openSQLite(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

func openPostgres(ctx context.Context, databaseURL string) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{driver: DriverPostgres, pool: pool}, nil
}

func openSQLite(ctx context.Context, dsn string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// SQLite allows a single writer; serialize through one connection.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{driver: DriverSQLite, sqlDB: sqlDB}, nil
}

// Users returns the user registry backed by this handle.
func (db *DB) Users() user.Repository {
	if db.driver == DriverPostgres {
		return user.NewRepository(db.pool)
	}
	return user.NewSQLiteRepository(db.sqlDB)
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	var (
		conn    *sql.DB
		dialect goose.Dialect
	)
	switch db.driver {
	case DriverPostgres:
		conn = stdlib.OpenDBFromPool(db.pool)
		defer conn.Close()
		dialect = goose.DialectPostgres
	default:
		conn = db.sqlDB
		dialect = goose.DialectSQLite3
	}

	provider, err := goose.NewProvider(dialect, conn, fsys)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("duration", r.Duration).
			Msg("migration applied")
	}

	return nil
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if db.driver == DriverPostgres {
		return db.pool.Ping(ctx)
	}
	return db.sqlDB.PingContext(ctx)
}

// Close releases the underlying connections.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.sqlDB != nil {
		db.sqlDB.Close()
	}
}
