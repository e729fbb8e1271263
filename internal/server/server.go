package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/NexTracker_Go/internal/handler"
	"github.com/osse101/NexTracker_Go/internal/logger"
	"github.com/osse101/NexTracker_Go/internal/metrics"
	"github.com/osse101/NexTracker_Go/internal/sse"
)

// Deps carries everything the HTTP surface routes to
type Deps struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string

	Ingest *handler.IngestHandler
	Query  *handler.QueryHandler
	Health handler.HealthChecker
	Hub    *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", deps.Port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(DefaultRequestLimit)

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(deps.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Health))
	r.Get("/version", handler.HandleVersion(deps.ServiceName, deps.Version))
	r.Handle("/metrics", promhttp.Handler())

	// Long-lived stream; write timeouts must stay off for this route
	r.Get("/events", sse.Handler(deps.Hub))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/ingest", func(r chi.Router) {
			if deps.APIKey != "" {
				r.Use(AuthMiddleware(deps.APIKey, deps.TrustedProxies, detector))
			}
			r.Post("/world", deps.Ingest.HandleWorld)
			r.Post("/damage", deps.Ingest.HandleDamage)
			r.Post("/chat", deps.Ingest.HandleChat)
			r.Post("/tick", deps.Ingest.HandleTick)
			r.Post("/config", deps.Ingest.HandleConfig)
		})

		r.Get("/snapshot", deps.Query.HandleSnapshot)
		r.Get("/state", deps.Query.HandleState)
		r.Route("/fights", func(r chi.Router) {
			r.Get("/", deps.Query.HandleListFights)
			r.Get("/{id}", deps.Query.HandleGetFight)
		})
	})

	if deps.APIKey == "" {
		slog.Default().Warn(LogMsgIngestUnauthenticated)
	}

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush passes through so event streams survive the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
