// Package commands defines the bot's command set.
package commands

import (
	"context"

	"github.com/RiskyOsDev/ariesrobot/internal/command"
	"github.com/RiskyOsDev/ariesrobot/internal/guard"
	"github.com/RiskyOsDev/ariesrobot/internal/render"
	"github.com/RiskyOsDev/ariesrobot/internal/user"
)

// DefaultAdminRole is the role required to remove another user.
const DefaultAdminRole = "bot_admin"

// Set holds the dependencies shared by all command handlers.
type Set struct {
	users     user.Repository
	adminRole string
}

// New creates the command set. The repository is the shared store handle
// used by every invocation.
func New(users user.Repository, adminRole string) *Set {
	if adminRole == "" {
		adminRole = DefaultAdminRole
	}
	return &Set{users: users, adminRole: adminRole}
}

func selectedUser(description string) command.Param {
	return command.Param{
		Name:        "user",
		Description: description,
		Kind:        command.KindUser,
		Optional:    true,
		Default:     command.DefaultCaller,
	}
}

// Descriptors returns every command, ready for Router.Register.
func (s *Set) Descriptors() []command.Descriptor {
	return []command.Descriptor{
		{
			Name:        "age",
			Description: "Displays your or another user's account creation date",
			Params:      []command.Param{selectedUser("Selected user")},
			Handler:     s.age,
		},
		{
			Name:        "ping",
			Description: "Replies with pong",
			Params: []command.Param{{
				Name:        "text",
				Description: "text to return",
				Kind:        command.KindString,
				Optional:    true,
			}},
			Handler: s.ping,
		},
		{
			Name:        "gid",
			Description: "Shows the id of the current guild",
			Handler:     s.gid,
		},
		{
			Name:        "get_user",
			Description: "Shows your registry entry",
			Handler:     s.getUser,
		},
		{
			Name:        "add_user",
			Description: "Registers you or another user",
			Params:      []command.Param{selectedUser("user to add")},
			Handler:     s.addUser,
		},
		{
			Name:        "rm_user",
			Description: "Removes you or, with the admin role, another user",
			Params:      []command.Param{selectedUser("user to remove")},
			Handler:     s.rmUser,
		},
	}
}

func (s *Set) age(_ context.Context, _ *command.Invocation, args command.Args) (any, error) {
	u, _ := args.User("user")
	return render.AccountAge{User: u}, nil
}

func (s *Set) ping(_ context.Context, _ *command.Invocation, args command.Args) (any, error) {
	text, ok := args.String("text")
	return render.Pong{Text: text, Echo: ok}, nil
}

func (s *Set) gid(_ context.Context, inv *command.Invocation, _ command.Args) (any, error) {
	id, ok := inv.ScopeID()
	return render.ScopeID{ID: id, OK: ok}, nil
}

func (s *Set) getUser(ctx context.Context, inv *command.Invocation, _ command.Args) (any, error) {
	id := inv.Caller.User.ID
	entry, err := s.users.Lookup(ctx, id)
	return render.Registration{ID: id, Entry: entry}, err
}

func (s *Set) addUser(ctx context.Context, _ *command.Invocation, args command.Args) (any, error) {
	u, _ := args.User("user")
	result := render.Created{User: u}
	return result, s.users.Insert(ctx, u.ID, u.Name)
}

func (s *Set) rmUser(ctx context.Context, inv *command.Invocation, args command.Args) (any, error) {
	u, _ := args.User("user")
	result := render.Deleted{User: u}

	decision, err := guard.Check(inv.Caller, u.ID, inv.Scope, s.adminRole)
	if err != nil {
		return result, err
	}
	if err := decision.Err(); err != nil {
		return result, err
	}

	return result, s.users.Delete(ctx, u.ID)
}
