package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/spark/pkg/classnames"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/ports"
	"github.com/aretw0/spark/pkg/tree"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes bounds POST request bodies.
const maxBodyBytes = 1 << 20

// Engine is the theme surface the server exposes.
type Engine interface {
	ports.ThemeEngine
	Watch(ctx context.Context) (<-chan string, error)
}

// Server serves themes over HTTP.
type Server struct {
	Engine  Engine
	Metrics *Metrics
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics replaces the default metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine: engine,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}
	if server.Metrics == nil {
		server.Metrics = NewMetrics()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(server.Metrics.Middleware)

	r.Get("/health", server.GetHealth)
	r.Get("/themes", server.ListThemes)
	r.Get("/themes/{name}/tokens", server.GetTokens)
	r.Get("/themes/{name}/references", server.GetReferences)
	r.Get("/themes/{name}/stylesheet.css", server.GetStylesheet)
	r.Get("/stylesheet.css", server.GetBuild)
	r.Post("/classnames", server.PostClassNames)
	r.Get("/events", server.SubscribeEvents)
	r.Method(http.MethodGet, "/metrics", server.Metrics.Handler())

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// ListThemes handles GET /themes.
func (s *Server) ListThemes(w http.ResponseWriter, r *http.Request) {
	names, err := s.Engine.Themes(r.Context())
	if err != nil {
		s.fail(w, "ListThemes", err)
		return
	}
	s.writeJSON(w, map[string]any{"themes": names})
}

// GetTokens handles GET /themes/{name}/tokens.
func (s *Server) GetTokens(w http.ResponseWriter, r *http.Request) {
	resolved, err := s.Engine.Tokens(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, "GetTokens", err)
		return
	}
	s.writeJSON(w, resolved)
}

// GetReferences handles GET /themes/{name}/references.
func (s *Server) GetReferences(w http.ResponseWriter, r *http.Request) {
	refs, err := s.Engine.References(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, "GetReferences", err)
		return
	}
	s.writeJSON(w, refs)
}

// GetStylesheet handles GET /themes/{name}/stylesheet.css.
func (s *Server) GetStylesheet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	start := time.Now()
	sheet, err := s.Engine.Stylesheet(r.Context(), name)
	if err != nil {
		s.fail(w, "GetStylesheet", err)
		return
	}
	s.Metrics.ObserveRender(name, time.Since(start))
	s.writeCSS(w, sheet)
}

// GetBuild handles GET /stylesheet.css.
func (s *Server) GetBuild(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sheet, err := s.Engine.Build(r.Context())
	if err != nil {
		s.fail(w, "GetBuild", err)
		return
	}
	s.Metrics.ObserveRender("*", time.Since(start))
	s.writeCSS(w, sheet)
}

// PostClassNames handles POST /classnames.
// The body is {"items": [...]}; object items keep their key order.
func (s *Server) PostClassNames(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !json.Valid(data) {
		http.Error(w, "Request body must be JSON", http.StatusBadRequest)
		return
	}
	body, err := tree.Decode(data)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PostClassNames: invalid request body", "error", err)
		return
	}
	raw, _ := body.Get("items")
	items, ok := tree.AsSequence(raw)
	if !ok {
		http.Error(w, `"items" must be an array`, http.StatusBadRequest)
		return
	}
	s.writeJSON(w, map[string]string{"class": classnames.Join(items...)})
}

// SubscribeEvents handles GET /events (SSE), sending the name of each changed theme.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	events, err := s.Engine.Watch(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Watch error: %v", err), http.StatusNotImplemented)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case name, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: theme\ndata: %s\n\n", name)
			flusher.Flush()
		}
	}
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error(op+" failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrThemeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCyclicExtends), errors.Is(err, domain.ErrBrokenExtends):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeCSS(w http.ResponseWriter, sheet string) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = io.WriteString(w, sheet)
}
