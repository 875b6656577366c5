package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiskyOsDev/ariesrobot/internal/guard"
	"github.com/RiskyOsDev/ariesrobot/internal/platform"
)

const (
	adminRole platform.Snowflake = 900
	otherRole platform.Snowflake = 901
)

func testScope() *platform.Scope {
	return &platform.Scope{
		ID: 1290689349897162803,
		Roles: map[string]platform.Snowflake{
			"bot_admin": adminRole,
			"member":    otherRole,
		},
	}
}

func member(id platform.Snowflake, roles ...platform.Snowflake) platform.Member {
	return platform.Member{User: platform.User{ID: id, Name: "user"}, Roles: roles}
}

func TestCheck_SelfAlwaysGranted(t *testing.T) {
	tests := []struct {
		name  string
		scope *platform.Scope
		role  string
	}{
		{name: "configured role", scope: testScope(), role: "bot_admin"},
		{name: "unconfigured role", scope: testScope(), role: "does_not_exist"},
		{name: "no scope", scope: nil, role: "bot_admin"},
		{name: "empty scope", scope: &platform.Scope{ID: 5}, role: "bot_admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := member(10)

			d, err := guard.Check(caller, 10, tt.scope, tt.role)

			require.NoError(t, err)
			assert.True(t, d.Granted())
			assert.Equal(t, guard.ReasonSelf, d.Reason)
			assert.NoError(t, d.Err())
		})
	}
}

func TestCheck_OtherTargetWithRole(t *testing.T) {
	caller := member(10, otherRole, adminRole)

	d, err := guard.Check(caller, 20, testScope(), "bot_admin")

	require.NoError(t, err)
	assert.True(t, d.Granted())
	assert.Equal(t, guard.ReasonRoleHeld, d.Reason)
}

func TestCheck_OtherTargetLackingRole(t *testing.T) {
	caller := member(10, otherRole)

	d, err := guard.Check(caller, 20, testScope(), "bot_admin")

	require.NoError(t, err)
	assert.False(t, d.Granted())
	assert.Equal(t, guard.ReasonRoleLacking, d.Reason)
	assert.True(t, guard.IsDenied(d.Err(), guard.ReasonRoleLacking))
	assert.EqualError(t, d.Err(), "permission denied: role bot_admin required")
}

func TestCheck_NoScope(t *testing.T) {
	caller := member(10, adminRole)

	d, err := guard.Check(caller, 20, nil, "bot_admin")

	require.NoError(t, err)
	assert.False(t, d.Granted())
	assert.Equal(t, guard.ReasonNoScope, d.Reason)
	assert.True(t, guard.IsDenied(d.Err(), guard.ReasonNoScope))
	assert.False(t, guard.IsDenied(d.Err(), guard.ReasonRoleLacking))
}

func TestCheck_RoleNotConfigured(t *testing.T) {
	caller := member(10, adminRole)
	scope := &platform.Scope{ID: 5, Roles: map[string]platform.Snowflake{"member": otherRole}}

	_, err := guard.Check(caller, 20, scope, "bot_admin")

	assert.ErrorIs(t, err, guard.ErrRoleNotConfigured)
	var cfgErr *guard.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "bot_admin", cfgErr.Role)
	assert.EqualError(t, err, "role bot_admin is not configured in this guild")
	assert.False(t, guard.IsDenied(err, guard.ReasonRoleLacking))
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "self", guard.ReasonSelf.String())
	assert.Equal(t, "no scope", guard.ReasonNoScope.String())
	assert.Equal(t, "role lacking", guard.ReasonRoleLacking.String())
	assert.Equal(t, "unknown", guard.Reason(0).String())
}
