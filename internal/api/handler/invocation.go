package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/RiskyOsDev/ariesrobot/internal/api/middleware"
	"github.com/RiskyOsDev/ariesrobot/internal/api/response"
	"github.com/RiskyOsDev/ariesrobot/internal/api/validation"
	"github.com/RiskyOsDev/ariesrobot/internal/command"
	"github.com/RiskyOsDev/ariesrobot/internal/platform"
)

// Dispatcher resolves and runs invocations. Implemented by *command.Router.
type Dispatcher interface {
	Lookup(surface command.Surface, name string) (*command.Descriptor, bool)
	Dispatch(ctx context.Context, inv *command.Invocation) command.Reply
}

type interactionOption struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type interactionRequest struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Member   platform.Member     `json:"member"`
	Guild    *platform.Scope     `json:"guild"`
	Options  []interactionOption `json:"options"`
	Resolved struct {
		Users map[string]platform.User `json:"users"`
	} `json:"resolved"`
}

type messageRequest struct {
	Content  string               `json:"content"`
	Author   platform.User        `json:"author"`
	Roles    []platform.Snowflake `json:"roles"`
	Guild    *platform.Scope      `json:"guild"`
	Mentions []platform.User      `json:"mentions"`
}

// InvocationHandler accepts invocations on both surfaces and answers with
// the rendered reply.
type InvocationHandler struct {
	dispatcher Dispatcher
	prefix     string
}

// NewInvocationHandler creates a new InvocationHandler. prefix marks
// free-text commands, e.g. "!".
func NewInvocationHandler(dispatcher Dispatcher, prefix string) *InvocationHandler {
	return &InvocationHandler{
		dispatcher: dispatcher,
		prefix:     prefix,
	}
}

// Interaction handles POST /interactions, the structured surface.
func (h *InvocationHandler) Interaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	optionNames := make([]string, 0, len(req.Options))
	for _, opt := range req.Options {
		optionNames = append(optionNames, opt.Name)
	}
	fieldErrors := validation.ValidateInteraction(validation.InteractionRequest{
		Name:        req.Name,
		Caller:      req.Member.User,
		OptionNames: optionNames,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	if _, ok := h.dispatcher.Lookup(command.SurfaceStructured, req.Name); !ok {
		response.Err(w, http.StatusNotFound, "UNKNOWN_COMMAND", "Command "+req.Name+" is not registered", requestID)
		return
	}

	id := uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
			return
		}
		id = parsed
	}

	options := make(map[string]string, len(req.Options))
	for _, opt := range req.Options {
		// An option without a value is omitted so the parameter default applies.
		if len(opt.Value) == 0 || string(opt.Value) == "null" {
			continue
		}
		options[opt.Name] = optionValue(opt.Value)
	}

	resolved := make(map[platform.Snowflake]platform.User, len(req.Resolved.Users))
	for key, u := range req.Resolved.Users {
		if u.ID == 0 {
			parsed, err := platform.ParseSnowflake(key)
			if err != nil {
				response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", "resolved user keys must be ids", requestID)
				return
			}
			u.ID = parsed
		}
		resolved[u.ID] = u
	}

	inv := &command.Invocation{
		ID:       id,
		Surface:  command.SurfaceStructured,
		Name:     req.Name,
		Caller:   req.Member,
		Scope:    req.Guild,
		Options:  options,
		Resolved: resolved,
	}
	reply := h.dispatcher.Dispatch(r.Context(), inv)
	response.Reply(w, inv.ID, reply, requestID)
}

// Message handles POST /messages, the free-text surface. Messages that are
// not commands are acknowledged with 204 and no reply.
func (h *InvocationHandler) Message(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateMessage(validation.MessageRequest{
		Content: req.Content,
		Author:  req.Author,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	if req.Author.Bot {
		response.NoContent(w)
		return
	}

	name, rest, ok := command.ParseText(h.prefix, req.Content)
	if !ok {
		response.NoContent(w)
		return
	}
	if _, ok := h.dispatcher.Lookup(command.SurfaceText, name); !ok {
		response.NoContent(w)
		return
	}

	resolved := make(map[platform.Snowflake]platform.User, len(req.Mentions))
	for _, u := range req.Mentions {
		resolved[u.ID] = u
	}

	inv := &command.Invocation{
		ID:       uuid.New(),
		Surface:  command.SurfaceText,
		Name:     name,
		Caller:   platform.Member{User: req.Author, Roles: req.Roles},
		Scope:    req.Guild,
		Text:     rest,
		Resolved: resolved,
	}
	reply := h.dispatcher.Dispatch(r.Context(), inv)
	response.Reply(w, inv.ID, reply, requestID)
}

// optionValue unquotes JSON strings and keeps other literals verbatim.
func optionValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
