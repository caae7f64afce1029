// Package server exposes the countdown engine over HTTP. It is a thin
// adapter: handlers validate the dob parameter, read today from the
// injected clock once, and serialize what the engine returns.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/tartampluch/go-nextbirthday/internal/config"
	"github.com/tartampluch/go-nextbirthday/internal/engine"
	"github.com/tartampluch/go-nextbirthday/internal/i18n"
)

// Config carries the server wiring. Zero-value fields fall back to
// defaults in New.
type Config struct {
	Host           string
	Port           int
	AllowedOrigins []string
	Clock          engine.Clock
	Bundle         *goi18n.Bundle
}

// Server handles the countdown API routes.
type Server struct {
	host    string
	port    int
	origins []string
	clock   engine.Clock
	bundle  *goi18n.Bundle
	router  http.Handler
}

// New builds the server and its router. It does not start listening;
// use Start for that.
func New(cfg Config) *Server {
	s := &Server{
		host:    cfg.Host,
		port:    cfg.Port,
		origins: cfg.AllowedOrigins,
		clock:   cfg.Clock,
		bundle:  cfg.Bundle,
	}
	if s.host == "" {
		s.host = config.DefaultHost
	}
	if s.port == 0 {
		s.port = config.DefaultPort
	}
	if len(s.origins) == 0 {
		s.origins = []string{config.DefaultCORSOrigin}
	}
	if s.clock == nil {
		s.clock = engine.RealClock{}
	}
	if s.bundle == nil {
		s.bundle = i18n.NewBundle()
	}
	s.router = s.initRouter()
	return s
}

func (s *Server) initRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{config.HeaderAccept, config.HeaderAcceptLanguage, config.HeaderContentType},
		MaxAge:         config.CORSMaxAgeSeconds,
	}).Handler)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)
	r.Use(middleware.Timeout(config.RequestTimeout))

	r.Get(config.RouteNextBirthday, s.handleNextBirthday)
	r.Get(config.RouteNextBirthdayICS, s.handleNextBirthdayICS)
	r.Get(config.RouteAge, s.handleAge)
	r.Post(config.RouteVCardScan, s.handleVCardScan)
	r.Get(config.RouteHealth, s.handleHealth)
	return r
}

// Handler returns the configured router. Tests drive it through
// httptest without binding a port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server and blocks until the context is cancelled,
// then shuts down gracefully within a bounded timeout.
func (s *Server) Start(ctx context.Context) error {
	if s.port < config.MinPort || s.port > config.MaxPort {
		return fmt.Errorf("%s: %d", config.ErrPortRange, s.port)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s%s%d", s.host, config.AddrSeparator, s.port),
		Handler:      s.router,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyHost, s.host,
			config.LogKeyPort, s.port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}
