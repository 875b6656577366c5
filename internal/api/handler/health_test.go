package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RiskyOsDev/ariesrobot/internal/api/handler"
)

// mockPinger implements handler.StorePinger for testing.
type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

func TestHealthHandler_Healthy(t *testing.T) {
	// Arrange
	h := handler.NewHealthHandler(&mockPinger{}, "0.1.0")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "0.1.0", data["version"])

	store := data["store"].(map[string]interface{})
	assert.Equal(t, true, store["connected"])
	assert.Nil(t, store["error"])

	assert.Nil(t, env["error"])
	assert.NotNil(t, env["meta"])
}

func TestHealthHandler_Degraded(t *testing.T) {
	// Arrange
	h := handler.NewHealthHandler(&mockPinger{err: errors.New("connection refused")}, "0.1.0")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "degraded", data["status"])

	store := data["store"].(map[string]interface{})
	assert.Equal(t, false, store["connected"])
	assert.Equal(t, "connection refused", store["error"])
}
