// Package server exposes the statistics engine over HTTP: a JSON analyze
// endpoint, downloadable exports and an optional report archive.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"seqstats/internal/config"
	"seqstats/internal/logger"
	"seqstats/internal/memo"
	"seqstats/internal/perr"
	"seqstats/pkg/api"
)

// Reports is the archive the server saves to and reads from.
type Reports interface {
	Save(ctx context.Context, seq string, rep api.ReportV1) (string, error)
	Get(ctx context.Context, id string) (api.ReportV1, error)
}

// Server is a thin wrapper over chi and http.Server.
type Server struct {
	cfg      config.Config
	log      logger.Logger
	reports  Reports
	analyzer *memo.Analyzer
	mux      *chi.Mux
	srv      *http.Server
}

// New builds a server for cfg. reports may be nil, which disables saving
// and lookup.
func New(cfg config.Config, log logger.Logger, reports Reports) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log,
		reports:  reports,
		analyzer: memo.New(cfg.Analysis.CacheSize),
		mux:      chi.NewRouter(),
	}
	if cfg.Analysis.CacheSize <= 0 {
		s.analyzer = memo.Disabled()
	}
	s.routes()
	s.srv = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.mux,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}
	return s
}

func (s *Server) routes() {
	m := s.mux
	m.Use(requestID(s.log))
	m.Use(recoverJSON)
	m.Use(accessLog(500 * time.Millisecond))
	m.Use(corsHandler(s.cfg.Server.CORSOrigins))

	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, perr.Newf(perr.CodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, perr.Newf(perr.CodeMethod, "method %s not allowed on %s", r.Method, r.URL.Path))
	})

	m.Get("/healthz", s.handleHealth)
	m.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/export/{format}", s.handleExport)
		r.Get("/reports/{id}", s.handleGetReport)
	})
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.mux }

// Addr returns the listening address.
func (s *Server) Addr() string { return s.srv.Addr }

// CacheStats reports memo hits and misses.
func (s *Server) CacheStats() memo.Stats { return s.analyzer.Stats() }

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().Str("addr", s.srv.Addr).Msg("http listening")

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	st := s.analyzer.Stats()
	s.log.Info().Int64("cache_hits", st.Hits).Int64("cache_misses", st.Misses).Msg("http stopped")
	return nil
}
