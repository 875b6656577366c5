package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/RiskyOsDev/ariesrobot/internal/api/handler"
	"github.com/RiskyOsDev/ariesrobot/internal/command"
)

func testManifest() command.Manifest {
	return command.Manifest{
		Prefix: "!",
		Commands: []command.ManifestEntry{{
			Name:        "ping",
			Description: "Replies with pong",
			Usage:       "!ping [text]",
			Options:     []command.ManifestParam{{Name: "text", Type: "string"}},
		}},
	}
}

func TestManifestHandler_JSON(t *testing.T) {
	h := handler.NewManifestHandler(testManifest())
	req := httptest.NewRequest(http.MethodGet, "/commands", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "!", data["prefix"])
	cmds := data["commands"].([]interface{})
	require.Len(t, cmds, 1)
	assert.Equal(t, "ping", cmds[0].(map[string]interface{})["name"])
}

func TestManifestHandler_YAML(t *testing.T) {
	h := handler.NewManifestHandler(testManifest())
	req := httptest.NewRequest(http.MethodGet, "/commands", nil)
	req.Header.Set("Accept", "application/yaml")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))

	var got command.Manifest
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, testManifest(), got)
}
