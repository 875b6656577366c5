package user

import (
	"context"
	"database/sql"
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/RiskyOsDev/ariesrobot/internal/platform"
)

// SQLiteRepository implements Repository on a database/sql handle opened
// with the modernc.org/sqlite driver.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a Repository backed by the given SQLite handle.
func NewSQLiteRepository(db *sql.DB) Repository {
	return &SQLiteRepository{db: db}
}

// Lookup returns the user with the given id, or nil if none is registered.
func (r *SQLiteRepository) Lookup(ctx context.Context, id platform.Snowflake) (*User, error) {
	var (
		u   User
		raw int64
	)
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM users WHERE id = ?`, int64(id)).Scan(&raw, &u.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fault("querying user", err)
	}
	u.ID = platform.Snowflake(raw)

	return &u, nil
}

// Insert registers a new user. A primary key conflict maps to ErrUserExists.
func (r *SQLiteRepository) Insert(ctx context.Context, id platform.Snowflake, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, name) VALUES (?, ?)`, int64(id), name)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && isUniqueViolation(sqliteErr.Code()) {
			return ErrUserExists
		}
		return fault("inserting user", err)
	}
	return nil
}

// Delete removes a registered user. Returns ErrUserNotFound if id is absent,
// including when a concurrent delete wins between the check and the delete.
func (r *SQLiteRepository) Delete(ctx context.Context, id platform.Snowflake) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, int64(id)).Scan(&exists)
	if err != nil {
		return fault("checking user existence", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, int64(id))
	if err != nil {
		return fault("deleting user", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fault("deleting user", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Ping verifies the database connection is alive.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func isUniqueViolation(code int) bool {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT:
		return true
	}
	return false
}
