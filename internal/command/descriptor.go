package command

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the type of a command parameter.
type Kind int

const (
	KindString Kind = iota
	KindUser
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindUser:
		return "user"
	default:
		return "unknown"
	}
}

// Default names the value an omitted optional parameter resolves to.
type Default int

const (
	// NoDefault leaves the parameter absent from Args.
	NoDefault Default = iota
	// DefaultCaller binds the invoking user.
	DefaultCaller
)

// Param describes one positional/named parameter of a command.
type Param struct {
	Name        string
	Description string
	Kind        Kind
	Optional    bool
	Default     Default
}

// Handler runs a command. The returned result is handed to the renderer
// together with the error.
type Handler func(ctx context.Context, inv *Invocation, args Args) (any, error)

// Descriptor is a registered command. The same descriptor serves both the
// free-text and the structured surface.
type Descriptor struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// Usage renders the free-text calling convention, e.g. "!age [user]".
func (d *Descriptor) Usage(prefix string) string {
	usage := prefix + d.Name
	for _, p := range d.Params {
		if p.Optional {
			usage += " [" + p.Name + "]"
		} else {
			usage += " <" + p.Name + ">"
		}
	}
	return usage
}

func (d *Descriptor) validate() error {
	if d.Name == "" {
		return errors.New("command name is required")
	}
	if d.Handler == nil {
		return fmt.Errorf("command %s: handler is required", d.Name)
	}

	seen := make(map[string]bool, len(d.Params))
	optional := false
	for _, p := range d.Params {
		if p.Name == "" {
			return fmt.Errorf("command %s: parameter name is required", d.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("command %s: duplicate parameter %s", d.Name, p.Name)
		}
		seen[p.Name] = true

		if optional && !p.Optional {
			return fmt.Errorf("command %s: required parameter %s follows an optional one", d.Name, p.Name)
		}
		optional = optional || p.Optional

		if p.Default == DefaultCaller && p.Kind != KindUser {
			return fmt.Errorf("command %s: parameter %s defaults to the caller but is a %s", d.Name, p.Name, p.Kind)
		}
		if p.Default != NoDefault && !p.Optional {
			return fmt.Errorf("command %s: required parameter %s cannot have a default", d.Name, p.Name)
		}
	}
	return nil
}
