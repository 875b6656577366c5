package validation

import (
	"strings"

	"github.com/RiskyOsDev/ariesrobot/internal/platform"
)

const maxNameLength = 32

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InteractionRequest mirrors the fields needed for interaction validation.
type InteractionRequest struct {
	Name        string
	Caller      platform.User
	OptionNames []string
}

// ValidateInteraction validates a structured invocation payload.
func ValidateInteraction(req InteractionRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 32 characters"})
	}

	errs = append(errs, validateCaller("member.user", req.Caller)...)

	seen := make(map[string]bool, len(req.OptionNames))
	for _, opt := range req.OptionNames {
		if opt == "" {
			errs = append(errs, FieldError{Field: "options", Message: "option name is required"})
			continue
		}
		if seen[opt] {
			errs = append(errs, FieldError{Field: "options", Message: "option " + opt + " is given more than once"})
		}
		seen[opt] = true
	}

	return errs
}

// MessageRequest mirrors the fields needed for message validation.
type MessageRequest struct {
	Content string
	Author  platform.User
}

// ValidateMessage validates a free-text message payload.
func ValidateMessage(req MessageRequest) []FieldError {
	var errs []FieldError

	if req.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	}
	errs = append(errs, validateCaller("author", req.Author)...)

	return errs
}

func validateCaller(field string, u platform.User) []FieldError {
	var errs []FieldError
	if u.ID == 0 {
		errs = append(errs, FieldError{Field: field + ".id", Message: "id is required"})
	}
	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, FieldError{Field: field + ".username", Message: "username is required"})
	}
	return errs
}
