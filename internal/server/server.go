// Package server wraps the calculators in a stateless JSON HTTP API.
// Handlers decode, call the core, and encode; they never compute.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"expense-split/core/flight"
	"expense-split/core/types"
)

// Options configures a Server. A nil UpgradeCompanyPercent selects
// flight.DefaultUpgradeCompanyPercent.
type Options struct {
	Version               string
	Currency              types.Currency
	UpgradeCompanyPercent *float64
	MetricsEnabled        bool
	Logger                *zap.Logger
}

// Server is the API server
type Server struct {
	router  chi.Router
	metrics *Metrics
	opts    Options
	logger  *zap.Logger
}

// New creates a Server with its routes registered
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if !opts.Currency.Valid() {
		opts.Currency = types.CurrencyCNY
	}
	if opts.UpgradeCompanyPercent == nil {
		pct := flight.DefaultUpgradeCompanyPercent
		opts.UpgradeCompanyPercent = &pct
	}

	s := &Server{
		router:  chi.NewRouter(),
		metrics: NewMetrics(),
		opts:    opts,
		logger:  opts.Logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	r := s.router

	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	if s.opts.MetricsEnabled {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/hotel", s.handleHotel)
		r.Post("/flight/split", s.handleFlightSplit)
		r.Post("/flight/upgrade", s.handleFlightUpgrade)
		r.Get("/rules", s.handleRules)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.opts.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.opts.Version,
		"engine":      "expense-split",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}
