package handler

import (
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/hlog"
	"sigs.k8s.io/yaml"

	"github.com/RiskyOsDev/ariesrobot/internal/api/middleware"
	"github.com/RiskyOsDev/ariesrobot/internal/api/response"
	"github.com/RiskyOsDev/ariesrobot/internal/command"
)

// ManifestHandler serves the command manifest as JSON, or as YAML when the
// client asks for it.
type ManifestHandler struct {
	manifest command.Manifest
	yamlOnce sync.Once
	yamlDoc  []byte
	yamlErr  error
}

// NewManifestHandler creates a handler for the given manifest. Commands are
// registered once at startup, so the manifest never changes.
func NewManifestHandler(manifest command.Manifest) *ManifestHandler {
	return &ManifestHandler{manifest: manifest}
}

// ServeHTTP writes the manifest.
func (h *ManifestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if !strings.Contains(r.Header.Get("Accept"), "yaml") {
		response.Success(w, http.StatusOK, h.manifest, requestID)
		return
	}

	h.yamlOnce.Do(func() {
		h.yamlDoc, h.yamlErr = yaml.Marshal(h.manifest)
	})
	if h.yamlErr != nil {
		hlog.FromRequest(r).Error().Err(h.yamlErr).Msg("failed to encode command manifest")
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode command manifest", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.yamlDoc); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to write command manifest")
	}
}
