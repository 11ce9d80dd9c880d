// Package server provides HTTP server management and lifecycle handling for
// the tabib API. It includes server setup, middleware configuration, route
// management, and graceful shutdown capabilities.
package server

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BlueSkyGuardian/tabibapp/config"
	"github.com/BlueSkyGuardian/tabibapp/handlers"
	"github.com/BlueSkyGuardian/tabibapp/interfaces"
	"github.com/BlueSkyGuardian/tabibapp/logging"
	"github.com/BlueSkyGuardian/tabibapp/metrics"
	"github.com/BlueSkyGuardian/tabibapp/search"
	"github.com/BlueSkyGuardian/tabibapp/validation"
)

// Server represents the HTTP server
type Server struct {
	server    *http.Server
	router    chi.Router
	responder handlers.Responder
	engine    *search.Engine
	health    interfaces.HealthChecker
	validator interfaces.DataValidator
	config    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, responder handlers.Responder, engine *search.Engine, health interfaces.HealthChecker) *Server {
	router := chi.NewRouter()

	server := &Server{
		server: &http.Server{
			Handler: router,
			Addr:    cfg.Address + ":" + cfg.Port,
			// Image uploads and the double model round trip make the
			// assistant endpoint slow, hence the generous write timeout
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:    router,
		responder: responder,
		engine:    engine,
		health:    health,
		validator: validation.NewDataValidator(),
		config:    cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(logging.DefaultLoggingService.Logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestSizeMiddleware(s.config))

	// The consultation UI runs in the browser and posts multipart forms
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s.router.Use(RateLimitHandler)
	s.router.Use(metrics.Metrics)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Post("/assistant", handlers.HandleAssistant(s.responder, s.config.MaxRequestBody))

	s.router.Get("/medicines/search/{query}", handlers.SearchMedicines(s.engine, s.validator))
	s.router.Get("/medicines/class/{class}", handlers.FindMedicinesByClass(s.engine, s.validator))
	s.router.Get("/medicines/{name}", handlers.FindMedicineByName(s.engine, s.validator))

	s.router.Get("/health", handlers.HealthCheck(s.health))
	s.router.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// Start starts the server
func (s *Server) Start() error {
	// Start profiling server if in development mode
	if s.config.Env == "dev" {
		s.startProfilingServer()
	}

	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		// If graceful shutdown fails, force close
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	// Wait a bit for any ongoing requests to complete
	logging.Info("Waiting for ongoing requests to complete...")
	time.Sleep(2 * time.Second)

	logging.Info("Server shutdown complete")
	return nil
}

// startProfilingServer starts the pprof profiling server in development mode
func (s *Server) startProfilingServer() {
	go func() {
		logging.Info("Profiling server started at http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			logging.Error("Profiling server failed", "error", err)
		}
	}()
}
