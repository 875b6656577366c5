package command

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/RiskyOsDev/ariesrobot/internal/platform"
)

// Surface is the form an invocation arrived in.
type Surface string

const (
	// SurfaceText is the prefixed free-text form, e.g. "!ping hello".
	SurfaceText Surface = "text"
	// SurfaceStructured is the slash-command form with named options.
	SurfaceStructured Surface = "structured"
)

// Invocation is a single command request as delivered by a surface.
type Invocation struct {
	ID      uuid.UUID
	Surface Surface
	Name    string
	Caller  platform.Member
	// Scope is nil when the command was invoked outside a guild.
	Scope *platform.Scope

	// Options holds named raw values for the structured surface.
	Options map[string]string
	// Text holds the raw argument line for the free-text surface.
	Text string
	// Resolved holds the users referenced by the invocation.
	Resolved map[platform.Snowflake]platform.User
}

// ScopeID returns the guild id, or false outside a guild.
func (inv *Invocation) ScopeID() (platform.Snowflake, bool) {
	if inv.Scope == nil {
		return 0, false
	}
	return inv.Scope.ID, true
}

// Args are the bound parameter values of an invocation.
type Args map[string]any

// User returns a bound user parameter.
func (a Args) User(name string) (platform.User, bool) {
	u, ok := a[name].(platform.User)
	return u, ok
}

// String returns a bound string parameter.
func (a Args) String(name string) (string, bool) {
	s, ok := a[name].(string)
	return s, ok
}

// bind resolves raw arguments against the descriptor's parameters and
// applies defaults for omitted optional ones.
func bind(d *Descriptor, inv *Invocation) (Args, error) {
	raw, err := rawValues(d, inv)
	if err != nil {
		return nil, err
	}

	args := make(Args, len(d.Params))
	for _, p := range d.Params {
		value, ok := raw[p.Name]
		if !ok {
			if !p.Optional {
				return nil, &ArgumentError{Param: p.Name, Reason: "is required"}
			}
			if p.Default == DefaultCaller {
				args[p.Name] = inv.Caller.User
			}
			continue
		}

		switch p.Kind {
		case KindUser:
			u, err := resolveUser(inv, value)
			if err != nil {
				return nil, &ArgumentError{Param: p.Name, Reason: err.Error()}
			}
			args[p.Name] = u
		default:
			args[p.Name] = value
		}
	}
	return args, nil
}

func rawValues(d *Descriptor, inv *Invocation) (map[string]string, error) {
	if inv.Surface == SurfaceStructured {
		declared := make(map[string]bool, len(d.Params))
		for _, p := range d.Params {
			declared[p.Name] = true
		}
		for name := range inv.Options {
			if !declared[name] {
				return nil, &ArgumentError{Param: name, Reason: "is not a parameter of " + d.Name}
			}
		}
		return inv.Options, nil
	}
	return splitText(d, inv.Text)
}

// splitText assigns whitespace separated tokens to parameters in order. A
// trailing string parameter takes the rest of the line verbatim.
func splitText(d *Descriptor, text string) (map[string]string, error) {
	values := make(map[string]string, len(d.Params))
	rest := strings.TrimSpace(text)
	for i, p := range d.Params {
		if rest == "" {
			break
		}
		if i == len(d.Params)-1 && p.Kind == KindString {
			values[p.Name] = rest
			rest = ""
			break
		}
		token := rest
		if n := strings.IndexFunc(rest, unicode.IsSpace); n >= 0 {
			token = rest[:n]
		}
		values[p.Name] = token
		rest = strings.TrimSpace(rest[len(token):])
	}
	if rest != "" {
		return nil, &ArgumentError{Reason: "unexpected " + rest}
	}
	return values, nil
}

// resolveUser accepts "<@id>", "<@!id>" or a bare id and looks it up among
// the users the surface resolved for this invocation.
func resolveUser(inv *Invocation, raw string) (platform.User, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "<@") && strings.HasSuffix(s, ">") {
		s = strings.TrimPrefix(strings.TrimSuffix(s[2:], ">"), "!")
	}

	id, err := platform.ParseSnowflake(s)
	if err != nil {
		return platform.User{}, fmt.Errorf("not a user mention: %s", raw)
	}
	if id == inv.Caller.User.ID {
		return inv.Caller.User, nil
	}
	u, ok := inv.Resolved[id]
	if !ok {
		return platform.User{}, fmt.Errorf("unknown user %s", id)
	}
	return u, nil
}
