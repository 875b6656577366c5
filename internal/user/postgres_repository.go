package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RiskyOsDev/ariesrobot/internal/platform"
)

const pgUniqueViolation = "23505"

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Lookup retrieves a single user by id.
func (r *PostgresRepository) Lookup(ctx context.Context, id platform.Snowflake) (*User, error) {
	query := `SELECT id, name FROM users WHERE id = $1`

	var (
		u   User
		raw int64
	)
	err := r.pool.QueryRow(ctx, query, int64(id)).Scan(&raw, &u.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fault("querying user", err)
	}
	u.ID = platform.Snowflake(raw)

	return &u, nil
}

// Insert adds a user record. The primary key decides concurrent inserts.
func (r *PostgresRepository) Insert(ctx context.Context, id platform.Snowflake, name string) error {
	query := `INSERT INTO users (id, name) VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, int64(id), name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrUserExists
		}
		return fault("inserting user", err)
	}

	return nil
}

// Delete removes a user after confirming it exists.
func (r *PostgresRepository) Delete(ctx context.Context, id platform.Snowflake) error {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)", int64(id)).Scan(&exists)
	if err != nil {
		return fault("checking user existence", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, int64(id))
	if err != nil {
		return fault("deleting user", err)
	}

	// A concurrent delete won between the check and the delete.
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Ping verifies the pool can reach the database.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
