package render_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/RiskyOsDev/ariesrobot/internal/command"
	"github.com/RiskyOsDev/ariesrobot/internal/guard"
	"github.com/RiskyOsDev/ariesrobot/internal/platform"
	"github.com/RiskyOsDev/ariesrobot/internal/render"
	"github.com/RiskyOsDev/ariesrobot/internal/user"
)

var (
	alice = platform.User{ID: 175928847299117063, Name: "alice"}
	bob   = platform.User{ID: 80351110224678912, Name: "bob"}
)

func TestRender_Golden(t *testing.T) {
	storeErr := &user.FaultError{Op: "inserting user", Err: errors.New(`relation "users" does not exist`)}

	tests := []struct {
		name    string
		command string
		result  any
		err     error
	}{
		{name: "ping", command: "ping", result: render.Pong{}},
		{name: "ping_text", command: "ping", result: render.Pong{Text: "hi", Echo: true}},
		{name: "age", command: "age", result: render.AccountAge{User: alice}},
		{name: "gid", command: "gid", result: render.ScopeID{ID: 1290689349897162803, OK: true}},
		{name: "gid_none", command: "gid", result: render.ScopeID{}},
		{name: "get_user", command: "get_user", result: render.Registration{ID: bob.ID, Entry: &user.User{ID: bob.ID, Name: "bob"}}},
		{name: "get_user_none", command: "get_user", result: render.Registration{ID: bob.ID}},
		{name: "get_user_fault", command: "get_user", result: render.Registration{ID: bob.ID},
			err: &user.FaultError{Op: "querying user", Err: errors.New("connection refused")}},
		{name: "add_user", command: "add_user", result: render.Created{User: bob}},
		{name: "add_user_exists", command: "add_user", result: render.Created{User: bob}, err: user.ErrUserExists},
		{name: "add_user_fault", command: "add_user", result: render.Created{User: bob}, err: storeErr},
		{name: "rm_user", command: "rm_user", result: render.Deleted{User: bob}},
		{name: "rm_user_fault", command: "rm_user", result: render.Deleted{User: bob},
			err: &user.FaultError{Op: "deleting user", Err: errors.New("database is locked")}},
		{name: "rm_user_not_found", command: "rm_user", result: render.Deleted{User: bob}, err: user.ErrUserNotFound},
		{name: "rm_user_role_lacking", command: "rm_user", result: render.Deleted{User: bob},
			err: &guard.DeniedError{Reason: guard.ReasonRoleLacking, Role: "bot_admin"}},
		{name: "rm_user_no_scope", command: "rm_user", result: render.Deleted{User: bob},
			err: &guard.DeniedError{Reason: guard.ReasonNoScope, Role: "bot_admin"}},
		{name: "rm_user_role_not_configured", command: "rm_user", result: render.Deleted{User: bob},
			err: &guard.ConfigError{Role: "bot_admin", Err: guard.ErrRoleNotConfigured}},
		{name: "argument_error", command: "age", err: &command.ArgumentError{Param: "user", Reason: "unknown user 5"}},
		{name: "panic", command: "age", err: &command.PanicError{Value: "boom"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	r := render.New(true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Render(tt.command, tt.result, tt.err)
			g.Assert(t, tt.name, []byte(got))
		})
	}
}

func TestRender_FaultDiagnostics(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	err := fmt.Errorf("handler: %w", &user.FaultError{Op: "deleting user", Err: cause})

	verbose := render.New(true).Render("rm_user", render.Deleted{User: bob}, err)
	assert.Equal(t, "failed to remove user because: "+cause.Error(), verbose)

	opaque := render.New(false).Render("rm_user", render.Deleted{User: bob}, err)
	assert.Equal(t, "failed to remove user", opaque)
	assert.NotContains(t, opaque, "5432")
}

func TestRender_UnclassifiedError(t *testing.T) {
	err := errors.New("something odd")

	assert.Equal(t, "command ping failed: something odd", render.New(true).Render("ping", nil, err))
	assert.Equal(t, "command ping failed", render.New(false).Render("ping", nil, err))
}

func TestRender_UnknownCommand(t *testing.T) {
	err := fmt.Errorf("%w: nope", command.ErrUnknownCommand)
	assert.Equal(t, "unknown command nope", render.New(true).Render("nope", nil, err))
}
