package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RiskyOsDev/ariesrobot/internal/command"
)

// Meta holds metadata for every response.
type Meta struct {
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

// Error represents a structured error of the HTTP surface itself, such as a
// malformed payload. Command failures are replies, not errors.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Envelope is the standard response wrapper.
type Envelope struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
	Meta  Meta   `json:"meta"`
}

// ReplyData is the payload of a dispatched invocation.
type ReplyData struct {
	InvocationID string `json:"invocationId"`
	Command      string `json:"command"`
	Content      string `json:"content"`
	Failed       bool   `json:"failed"`
}

// NewMeta creates a Meta with the given request id, generating one if empty.
func NewMeta(requestID string) Meta {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return Meta{
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON writes a JSON response with the given status code and envelope.
func JSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// Success writes a successful JSON response.
func Success(w http.ResponseWriter, status int, data any, requestID string) {
	JSON(w, status, Envelope{Data: data, Meta: NewMeta(requestID)})
}

// Reply writes the rendered reply of an invocation. Failed invocations are
// still answered with 200: the reply text is the answer.
func Reply(w http.ResponseWriter, invocationID uuid.UUID, reply command.Reply, requestID string) {
	Success(w, http.StatusOK, ReplyData{
		InvocationID: invocationID.String(),
		Command:      reply.Command,
		Content:      reply.Content,
		Failed:       reply.Err != nil,
	}, requestID)
}

// NoContent writes a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Err writes an error JSON response.
func Err(w http.ResponseWriter, status int, code string, message string, requestID string) {
	JSON(w, status, Envelope{
		Error: &Error{Code: code, Message: message},
		Meta:  NewMeta(requestID),
	})
}

// ErrWithDetails writes an error JSON response with additional details.
func ErrWithDetails(w http.ResponseWriter, status int, code string, message string, details any, requestID string) {
	JSON(w, status, Envelope{
		Error: &Error{Code: code, Message: message, Details: details},
		Meta:  NewMeta(requestID),
	})
}
