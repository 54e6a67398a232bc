// Package server provides the HTTP REST API for the role taxonomy engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/role-taxonomy/internal/config"
	"github.com/jonathan/role-taxonomy/internal/db"
	"github.com/jonathan/role-taxonomy/internal/resolve"
	"github.com/jonathan/role-taxonomy/internal/server/middleware"
	"github.com/jonathan/role-taxonomy/internal/server/ratelimit"
	"github.com/jonathan/role-taxonomy/internal/types"
)

// Store is the persistence surface the HTTP handlers need. *db.DB satisfies it.
type Store interface {
	resolve.Store
	GetRoleKitByID(ctx context.Context, id uuid.UUID) (*types.RoleKit, error)
	GetJobTargetByID(ctx context.Context, id uuid.UUID) (*types.JobTarget, error)
	CreateJobTarget(ctx context.Context, input *types.JobTargetCreateInput) (*types.JobTarget, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	engine      *resolve.Engine
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	workers     int
	closeStore  func()
}

// Config holds server configuration
type Config struct {
	Port             int
	DatabaseURL      string
	ReprocessWorkers int
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	adminConfig, err := config.NewAdminKeyConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create admin key config: %w", err)
	}

	s := newServer(database, jwtConfig, adminConfig, cfg.ReprocessWorkers)
	s.closeStore = database.Close
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // batch reprocess can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires handlers without touching the network or environment.
// Tests construct servers through here with a fake store.
func newServer(store Store, jwtCfg *config.JWTConfig, adminCfg *config.AdminKeyConfig, workers int) *Server {
	jwtService := NewJWTService(jwtCfg)
	return &Server{
		store:       store,
		engine:      resolve.NewEngine(store),
		jwtService:  jwtService,
		authHandler: NewAuthHandler(adminCfg, jwtService),
		workers:     workers,
	}
}

// routes builds the request multiplexer.
func (s *Server) routes() http.Handler {
	requireAdmin := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Resolution endpoints
	mux.HandleFunc("POST /resolve", s.handleResolve)
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("POST /jobs/{id}/role-kit", s.handleEnsureJobRoleKit)

	// Role kit catalog
	mux.HandleFunc("GET /role-kits", s.handleListRoleKits)
	mux.HandleFunc("GET /role-kits/{id}", s.handleGetRoleKit)

	// Admin endpoints
	mux.HandleFunc("POST /admin/login", s.authHandler.HandleLogin)
	mux.Handle("POST /admin/reprocess", requireAdmin(http.HandlerFunc(s.handleReprocess)))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.closeStore != nil {
		s.closeStore()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":       "rate limit exceeded",
				"retry_after": int(time.Until(info.ResetTime).Seconds()) + 1,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractClientID pulls a client identifier from the request, preferring
// proxy headers over the raw remote address.
func (s *Server) extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return r.RemoteAddr
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info *ratelimit.Info) {
	if info == nil {
		return
	}
	w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
	w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeError(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
