package handler

import (
	"context"
	"net/http"

	"github.com/RiskyOsDev/ariesrobot/internal/api/middleware"
	"github.com/RiskyOsDev/ariesrobot/internal/api/response"
)

// StorePinger checks that the user registry is reachable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	store   StorePinger
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store StorePinger, version string) *HealthHandler {
	return &HealthHandler{
		store:   store,
		version: version,
	}
}

type storeStatus struct {
	Connected bool    `json:"connected"`
	Error     *string `json:"error,omitempty"`
}

type healthData struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Store   storeStatus `json:"store"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	data := healthData{
		Status:  "healthy",
		Version: h.version,
		Store:   storeStatus{Connected: true},
	}

	if err := h.store.Ping(r.Context()); err != nil {
		msg := err.Error()
		data.Status = "degraded"
		data.Store = storeStatus{Connected: false, Error: &msg}
	}

	response.Success(w, http.StatusOK, data, requestID)
}
