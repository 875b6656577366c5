// Package render turns command outcomes into the single text reply sent back
// to the invoking surface.
package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RiskyOsDev/ariesrobot/internal/command"
	"github.com/RiskyOsDev/ariesrobot/internal/guard"
	"github.com/RiskyOsDev/ariesrobot/internal/user"
)

// Renderer renders results and failures.
type Renderer struct {
	// Diagnostics controls whether store fault details are included in
	// replies. They are always logged.
	Diagnostics bool
}

// New creates a Renderer.
func New(diagnostics bool) *Renderer {
	return &Renderer{Diagnostics: diagnostics}
}

var _ command.Renderer = (*Renderer)(nil)

// Render implements command.Renderer.
func (r *Renderer) Render(name string, result any, err error) string {
	if err != nil {
		return r.failure(name, result, err)
	}

	switch v := result.(type) {
	case Pong:
		if !v.Echo {
			return "pong"
		}
		return "pong: " + v.Text
	case AccountAge:
		return fmt.Sprintf("%s's account was created at %s", v.User.Name, v.User.ID.CreatedAt().Format(time.RFC3339))
	case ScopeID:
		if !v.OK {
			return "guild id: none"
		}
		return "guild id: " + v.ID.String()
	case Registration:
		if v.Entry == nil {
			return "user: none"
		}
		return fmt.Sprintf("user: %+v", *v.Entry)
	case Created:
		return fmt.Sprintf("user %s was created", v.User.Name)
	case Deleted:
		return fmt.Sprintf("user %s was deleted", v.User.Name)
	}
	return fmt.Sprintf("%v", result)
}

func (r *Renderer) failure(name string, result any, err error) string {
	var (
		denied *guard.DeniedError
		cfgErr *guard.ConfigError
		fault  *user.FaultError
		argErr *command.ArgumentError
		panicE *command.PanicError
	)

	switch {
	case errors.As(err, &denied):
		if denied.Reason == guard.ReasonNoScope {
			return "this command can only be used inside a guild"
		}
		return fmt.Sprintf("need %s permission to %s other user", denied.Role, verb(result))
	case errors.As(err, &cfgErr):
		return cfgErr.Error()
	case errors.Is(err, user.ErrUserNotFound):
		return fmt.Sprintf("user %s doesn't exist", target(result))
	case errors.Is(err, user.ErrUserExists):
		return fmt.Sprintf("user %s already exists", target(result))
	case errors.As(err, &fault):
		log.Error().Err(fault.Err).Str("command", name).Str("op", fault.Op).Msg("store fault")
		if !r.Diagnostics {
			return fmt.Sprintf("failed to %s user", verb(result))
		}
		return fmt.Sprintf("failed to %s user because: %v", verb(result), fault.Err)
	case errors.As(err, &argErr):
		return argErr.Error()
	case errors.As(err, &panicE):
		return fmt.Sprintf("internal error while running %s", name)
	case errors.Is(err, command.ErrUnknownCommand):
		return fmt.Sprintf("unknown command %s", name)
	default:
		log.Error().Err(err).Str("command", name).Msg("command failed")
		if !r.Diagnostics {
			return fmt.Sprintf("command %s failed", name)
		}
		return fmt.Sprintf("command %s failed: %v", name, err)
	}
}

func verb(result any) string {
	switch result.(type) {
	case Created:
		return "create"
	case Deleted:
		return "remove"
	case Registration:
		return "look up"
	default:
		return "change"
	}
}

func target(result any) string {
	switch v := result.(type) {
	case Created:
		return v.User.Name
	case Deleted:
		return v.User.Name
	case Registration:
		return v.ID.String()
	default:
		return "unknown"
	}
}
