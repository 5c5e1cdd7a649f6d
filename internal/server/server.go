// Package server serves the logistic growth dashboard as a single web page,
// plus a JSON API and an SVG chart endpoint for the same computation.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/san-kum/popgrowth/internal/config"
	"github.com/san-kum/popgrowth/internal/logistic"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg     *config.Config
	logger  zerolog.Logger
	metrics *Metrics
	router  chi.Router
	api     huma.API
}

func New(cfg *config.Config, logger zerolog.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))

	r.Get("/", s.handlePage)
	r.Get("/chart.svg", s.handleChart)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics)

	apiCfg := huma.DefaultConfig("popgrowth", "1.0.0")
	apiCfg.OpenAPIPath = "/api/openapi"
	apiCfg.DocsPath = ""
	s.api = humachi.New(r, apiCfg)
	s.registerAPI()

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("starting dashboard server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down dashboard server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// evaluate is one render cycle for a request.
func (s *Server) evaluate(p logistic.Params) (logistic.Series, error) {
	series, err := logistic.Evaluate(p)
	s.metrics.ObserveEvaluation(len(series), err)
	if err != nil {
		s.logger.Warn().Err(err).Int("n0", p.N0).Float64("r", p.R).Int("k", p.K).Int("tmax", p.TMax).
			Msg("evaluation refused")
		return nil, err
	}
	s.logger.Debug().Int("points", len(series)).Msg("series evaluated")
	return series, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
