package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/storybite/storybite/internal/catalog"
	"github.com/storybite/storybite/internal/diagnostics"
	"github.com/storybite/storybite/internal/landing"
	"github.com/storybite/storybite/internal/media"
	"github.com/storybite/storybite/internal/ratelimit"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Pinger          Pinger
	Catalog         catalog.Catalog
	Resolver        catalog.Resolver
	MediaFS         fs.FS
	BaseURL         string
	StorageEndpoint string
	AnalyticsScript string
	Locator         diagnostics.Locator
	Logger          *slog.Logger
}

type Server struct {
	router             chi.Router
	pinger             Pinger
	landing            *landing.Handler
	diagnostics        *diagnostics.Handler
	showcaseLimiter    *ratelimit.Limiter
	diagnosticsLimiter *ratelimit.Limiter
	mediaFS            fs.FS
}

func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = media.NewLocal()
	}
	var diagOpts []diagnostics.Option
	if cfg.Locator != nil {
		diagOpts = append(diagOpts, diagnostics.WithLocator(cfg.Locator))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(slogMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(SecurityConfig{
		BaseURL:         cfg.BaseURL,
		StorageEndpoint: cfg.StorageEndpoint,
		AnalyticsOrigin: originOf(cfg.AnalyticsScript),
	}))

	s := &Server{
		router: r,
		pinger: cfg.Pinger,
		landing: landing.NewHandler(landing.Config{
			Catalog:         cfg.Catalog,
			Resolver:        resolver,
			AnalyticsScript: cfg.AnalyticsScript,
			Logger:          logger,
		}),
		diagnostics:        diagnostics.NewHandler(logger, diagOpts...),
		showcaseLimiter:    ratelimit.NewLimiter(5, 20),
		diagnosticsLimiter: ratelimit.NewLimiter(1, 5),
		mediaFS:            cfg.MediaFS,
	}

	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops the rate limiter cleanup goroutines.
func (s *Server) Close() {
	s.showcaseLimiter.Stop()
	s.diagnosticsLimiter.Stop()
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)

	s.router.Get("/", s.landing.Home)
	s.router.Get("/demo", s.landing.Demo)

	s.router.With(s.showcaseLimiter.Middleware).Get("/api/showcase", s.landing.Showcase)
	s.router.With(s.diagnosticsLimiter.Middleware).Post("/api/diagnostics/playback", s.diagnostics.PlaybackRejected)

	if s.mediaFS != nil {
		s.router.Get("/media/*", newMediaFileServer(s.mediaFS).ServeHTTP)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy","error":"storage unreachable"}`))
			return
		}
	}
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// originOf reduces a script URL to the scheme and host the CSP needs.
func originOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
