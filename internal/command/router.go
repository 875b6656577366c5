// Package command holds the command descriptors of the bot, binds raw
// invocations to them and runs their handlers.
package command

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
)

// Renderer turns a handler outcome into the reply text.
type Renderer interface {
	Render(command string, result any, err error) string
}

// Reply is the outcome of one dispatched invocation.
type Reply struct {
	Command string
	Content string
	// Err is the failure the reply was rendered from, nil on success.
	Err error
}

// Router maps invocation names to descriptors on both surfaces.
//
// Register must be called during startup before any Dispatch; afterwards
// the router is read-only and safe for concurrent use.
type Router struct {
	renderer   Renderer
	structured map[string]*Descriptor
	text       map[string]*Descriptor
}

// NewRouter creates an empty Router that renders replies with renderer.
func NewRouter(renderer Renderer) *Router {
	return &Router{
		renderer:   renderer,
		structured: make(map[string]*Descriptor),
		text:       make(map[string]*Descriptor),
	}
}

// Register adds descriptors to both surfaces. The structured surface matches
// names exactly, the free-text surface matches them case-insensitively.
func (r *Router) Register(descriptors ...Descriptor) error {
	for i := range descriptors {
		d := descriptors[i]
		if err := d.validate(); err != nil {
			return err
		}

		folded := fold(d.Name)
		if _, ok := r.structured[d.Name]; ok {
			return fmt.Errorf("command %s is already registered", d.Name)
		}
		if _, ok := r.text[folded]; ok {
			return fmt.Errorf("command %s collides with a registered command", d.Name)
		}

		r.structured[d.Name] = &d
		r.text[folded] = &d
	}
	return nil
}

// Lookup returns the descriptor an invocation name resolves to on surface.
func (r *Router) Lookup(surface Surface, name string) (*Descriptor, bool) {
	if surface == SurfaceText {
		d, ok := r.text[fold(name)]
		return d, ok
	}
	d, ok := r.structured[name]
	return d, ok
}

// Descriptors returns the registered commands sorted by name.
func (r *Router) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.structured))
	for _, d := range r.structured {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch runs an invocation to completion and renders its reply. Handler
// errors and panics end up in the reply and never escape.
func (r *Router) Dispatch(ctx context.Context, inv *Invocation) Reply {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	logger := log.With().
		Str("invocation", inv.ID.String()).
		Str("surface", string(inv.Surface)).
		Str("command", inv.Name).
		Str("caller", inv.Caller.User.ID.String()).
		Logger()

	start := time.Now()
	name := inv.Name
	var (
		result any
		err    error
	)
	if d, ok := r.Lookup(inv.Surface, inv.Name); ok {
		name = d.Name
		result, err = run(ctx, d, inv)
	} else {
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, inv.Name)
	}

	reply := Reply{
		Command: name,
		Content: r.renderer.Render(name, result, err),
		Err:     err,
	}

	event := logger.Info()
	if err != nil {
		event = logger.Warn().Err(err)
		var p *PanicError
		if errors.As(err, &p) {
			event = logger.Error().Err(err).Bytes("stack", p.Stack)
		}
	}
	event.Dur("elapsed", time.Since(start)).Msg("invocation handled")

	return reply
}

func run(ctx context.Context, d *Descriptor, inv *Invocation) (result any, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = &PanicError{Value: p, Stack: debug.Stack()}
		}
	}()

	args, err := bind(d, inv)
	if err != nil {
		return nil, err
	}
	return d.Handler(ctx, inv, args)
}

// fold returns the case-insensitive matching key of a command name. Casers
// are stateful, so each call gets its own.
func fold(name string) string {
	return cases.Fold().String(name)
}
