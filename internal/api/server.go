// Package api provides the liveness HTTP server for the devotional bot.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/slovoapp/slovo-server/internal/http/response"
)

// VerseCounter reports how many verses the database holds. Used as the
// database component of the health check.
type VerseCounter interface {
	VerseCount(ctx context.Context) (int, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	verses    VerseCounter
	router    *chi.Mux
	logger    *slog.Logger
	startedAt time.Time
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(verses VerseCounter, logger *slog.Logger) *Server {
	s := &Server{
		verses:    verses,
		router:    chi.NewRouter(),
		logger:    logger,
		startedAt: time.Now(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Plain-text root so hosting platform pings get a 200 without JSON.
	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealthCheck)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Daily devotional bot is running"))
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthData contains health check data in API responses.
type HealthData struct {
	Status     string                     `json:"status"`
	Uptime     string                     `json:"uptime"`
	Components map[string]ComponentHealth `json:"components"`
}

// handleHealthCheck returns server health status with a verse database probe.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	dbHealth := s.checkVerseDatabase(r.Context())
	components["verses"] = dbHealth
	if dbHealth.Status != "healthy" {
		overall = "unhealthy"
	}

	data := HealthData{
		Status:     overall,
		Uptime:     time.Since(s.startedAt).Round(time.Second).String(),
		Components: components,
	}

	status := http.StatusOK
	if overall != "healthy" {
		status = http.StatusServiceUnavailable
	}
	response.JSON(w, status, data, s.logger)
}

func (s *Server) checkVerseDatabase(ctx context.Context) ComponentHealth {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	count, err := s.verses.VerseCount(ctx)
	if err != nil {
		return ComponentHealth{
			Status:  "unhealthy",
			Message: err.Error(),
		}
	}
	if count == 0 {
		return ComponentHealth{
			Status:  "unhealthy",
			Message: "verse database is empty",
		}
	}

	return ComponentHealth{
		Status:  "healthy",
		Latency: time.Since(start).Round(time.Microsecond).String(),
	}
}
