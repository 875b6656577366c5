// Package guard decides whether a caller may act on a target user.
//
// Decisions are pure functions of the caller, the target and the scope data
// resolved by the platform layer. Nothing is looked up remotely and nothing
// is persisted.
package guard

import (
	"errors"
	"fmt"

	"github.com/RiskyOsDev/ariesrobot/internal/platform"
)

// ErrRoleNotConfigured is returned when the scope has no role with the
// required name. It is a guild configuration problem, not a denial.
var ErrRoleNotConfigured = platform.ErrRoleNotConfigured

// Outcome is the binary result of a check.
type Outcome int

const (
	Denied Outcome = iota
	Granted
)

// Reason explains an outcome.
type Reason int

const (
	ReasonSelf Reason = iota + 1
	ReasonRoleHeld
	ReasonNoScope
	ReasonRoleLacking
)

func (r Reason) String() string {
	switch r {
	case ReasonSelf:
		return "self"
	case ReasonRoleHeld:
		return "role held"
	case ReasonNoScope:
		return "no scope"
	case ReasonRoleLacking:
		return "role lacking"
	default:
		return "unknown"
	}
}

// Decision is the guard's answer for one invocation.
type Decision struct {
	Outcome Outcome
	Reason  Reason
	Role    string
}

// Granted reports whether the action may proceed.
func (d Decision) Granted() bool {
	return d.Outcome == Granted
}

// Err returns nil for a granted decision and a *DeniedError otherwise.
func (d Decision) Err() error {
	if d.Granted() {
		return nil
	}
	return &DeniedError{Reason: d.Reason, Role: d.Role}
}

// DeniedError carries a denial through a handler's error return.
type DeniedError struct {
	Reason Reason
	Role   string
}

func (e *DeniedError) Error() string {
	if e.Reason == ReasonNoScope {
		return "permission denied: no scope"
	}
	return fmt.Sprintf("permission denied: role %s required", e.Role)
}

// ConfigError reports a required role that the scope does not define.
// It matches ErrRoleNotConfigured with errors.Is.
type ConfigError struct {
	Role string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("role %s is not configured in this guild", e.Role)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsDenied reports whether err is a denial with the given reason.
func IsDenied(err error, reason Reason) bool {
	var denied *DeniedError
	return errors.As(err, &denied) && denied.Reason == reason
}

// Check decides whether caller may act on target within scope. A nil scope
// means the invocation happened outside any guild.
//
// Acting on oneself is always granted. Otherwise the caller must hold the
// role named requiredRole in scope. A scope without that role yields
// ErrRoleNotConfigured.
func Check(caller platform.Member, target platform.Snowflake, scope *platform.Scope, requiredRole string) (Decision, error) {
	if target == caller.User.ID {
		return Decision{Outcome: Granted, Reason: ReasonSelf, Role: requiredRole}, nil
	}

	if scope == nil {
		return Decision{Outcome: Denied, Reason: ReasonNoScope, Role: requiredRole}, nil
	}

	roleID, err := scope.RoleByName(requiredRole)
	if err != nil {
		return Decision{}, &ConfigError{Role: requiredRole, Err: err}
	}

	if caller.HasRole(roleID) {
		return Decision{Outcome: Granted, Reason: ReasonRoleHeld, Role: requiredRole}, nil
	}
	return Decision{Outcome: Denied, Reason: ReasonRoleLacking, Role: requiredRole}, nil
}
