package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/RiskyOsDev/ariesrobot/internal/platform"
)

// ErrUserNotFound is returned when deleting a user that is not registered.
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned when inserting an id that is already registered.
var ErrUserExists = errors.New("user already exists")

// FaultError wraps an underlying storage failure. The driver diagnostic is
// kept intact so it can be surfaced to the caller.
type FaultError struct {
	Op  string
	Err error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

func fault(op string, err error) error {
	return &FaultError{Op: op, Err: err}
}

// Repository provides operations on the users table. Implementations are
// safe for concurrent use.
type Repository interface {
	// Lookup returns the user with the given id, or nil if none is registered.
	Lookup(ctx context.Context, id platform.Snowflake) (*User, error)
	// Insert registers a new user. Returns ErrUserExists if id is taken.
	Insert(ctx context.Context, id platform.Snowflake, name string) error
	// Delete removes a registered user. Returns ErrUserNotFound if id is absent.
	Delete(ctx context.Context, id platform.Snowflake) error
	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
