// Package server provides the HTTP API for ranked job cards, swipes and ad hoc match scoring.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/devmatch/internal/ranking"
	"github.com/jonathan/devmatch/internal/server/middleware"
	"github.com/jonathan/devmatch/internal/server/ratelimit"
	"github.com/jonathan/devmatch/internal/types"
)

// Store is the persistence the server needs. *db.DB implements it.
type Store interface {
	ranking.ProfileStore
	ranking.JobStore
	RecordSwipe(ctx context.Context, developerID, jobID uuid.UUID, action types.SwipeAction) (types.ApplicationStatus, error)
	ListApplications(ctx context.Context, developerID uuid.UUID) (map[types.ApplicationStatus][]uuid.UUID, error)
	Ping(ctx context.Context) error
}

// Config holds server configuration
type Config struct {
	Port           int
	AllowedOrigins []string
	RankWorkers    int
	ExplainScores  bool
	RateLimit      *ratelimit.Config // nil loads from the environment
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	driver      *ranking.Driver
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	logger      *zap.Logger
	cfg         Config
	now         func() time.Time
}

// New creates a new server instance
func New(cfg Config, store Store, jwtService *JWTService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}

	s := &Server{
		store:       store,
		rateLimiter: ratelimit.NewLimiter(rateConfig),
		jwtService:  jwtService,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
	s.driver = ranking.NewDriver(store, store, logger.Named("ranking"), ranking.RankOptions{
		Workers: cfg.RankWorkers,
		Explain: cfg.ExplainScores,
	})

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /match/score", s.handleScore)
	mux.Handle("GET /developers/me/jobs", auth(http.HandlerFunc(s.handleJobCards)))
	mux.Handle("POST /developers/me/jobs/{job_id}/swipe", auth(http.HandlerFunc(s.handleSwipe)))
	mux.Handle("GET /developers/me/applications", auth(http.HandlerFunc(s.handleApplications)))

	return s.withLogging(s.withRateLimit(s.withCORS(mux)))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()
	s.logger.Info("server stopped")
	return nil
}

// Close releases background resources without serving.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// withCORS adds CORS headers for the configured origins.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.allowedOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if origin != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allowedOrigin returns the Access-Control-Allow-Origin value for origin, or "" if not allowed.
func (s *Server) allowedOrigin(origin string) string {
	if len(s.cfg.AllowedOrigins) == 0 || slices.Contains(s.cfg.AllowedOrigins, "*") {
		return "*"
	}
	if origin != "" && slices.Contains(s.cfg.AllowedOrigins, origin) {
		return origin
	}
	return ""
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", s.extractClientID(r)),
		)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Round(time.Second).Seconds())
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("path", r.URL.Path),
		zap.String("remote", s.extractClientID(r)),
		zap.Int("limit", info.Limit),
	)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps err to a status and writes it as JSON. Server errors are logged, not echoed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	s.jsonResponse(w, status, newErrorBody(err, status))
}
