package command

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned when no descriptor matches an invocation.
// Surfaces normally filter unknown names before dispatching.
var ErrUnknownCommand = errors.New("unknown command")

// ArgumentError reports a raw argument that could not be bound to a
// declared parameter.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Param == "" {
		return "invalid arguments: " + e.Reason
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Param, e.Reason)
}

// PanicError is a recovered handler panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panicked: %v", e.Value)
}
