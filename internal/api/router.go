package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RiskyOsDev/ariesrobot/internal/api/handler"
	"github.com/RiskyOsDev/ariesrobot/internal/api/middleware"
	"github.com/RiskyOsDev/ariesrobot/internal/command"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Logger       zerolog.Logger
	Store        handler.StorePinger
	Commands     *command.Router
	Prefix       string
	RelayKeyHash string
	Version      string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)

	healthHandler := handler.NewHealthHandler(deps.Store, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	manifestHandler := handler.NewManifestHandler(deps.Commands.Manifest(deps.Prefix))
	r.Get("/commands", manifestHandler.ServeHTTP)

	invocationHandler := handler.NewInvocationHandler(deps.Commands, deps.Prefix)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RelayAuth(deps.RelayKeyHash))
		r.Post("/interactions", invocationHandler.Interaction)
		r.Post("/messages", invocationHandler.Message)
	})

	return r
}
