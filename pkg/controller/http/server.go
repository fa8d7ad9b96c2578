package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
)

// Server represents the HTTP server exposing the bridge
type Server struct {
	*http.Server
	router  chi.Router
	handler *Handler
}

// Option configures a Server
type Option func(*options)

type options struct {
	secret string
}

// WithSecret requires a bearer token signed with secret on every /api call
func WithSecret(secret string) Option {
	return func(o *options) {
		o.secret = secret
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, bridge interfaces.Bridge, opts ...Option) *Server {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	router := chi.NewRouter()
	handler := NewHandler(bridge)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		if o.secret != "" {
			r.Use(RequireToken(o.secret))
		} else {
			ctxlog.From(ctx).Warn("Bridge API is not protected by a secret")
		}

		r.Post("/auth", handler.HandleAuth)
		r.Get("/guilds", handler.HandleListGuilds)
		r.Get("/guilds/{guildID}/members", handler.HandleListMembers)
		r.Get("/channels", handler.HandleListChannels)
		r.Post("/image", handler.HandlePickImage)
		r.Post("/messages", handler.HandleDispatchMessage)
		r.Post("/prospects", handler.HandleDispatchProspect)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		handler: handler,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "wcadmin",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// writeJSON writes v with status 200
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(model.ErrorResponse{Error: message}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode error response", "error", err)
	}
}
