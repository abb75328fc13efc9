package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/canchalibre/match-engine/internal/app/matches"
	appweather "github.com/canchalibre/match-engine/internal/app/weather"
	"github.com/canchalibre/match-engine/internal/config"
	"github.com/canchalibre/match-engine/internal/domain"
	httpserver "github.com/canchalibre/match-engine/internal/http"
	"github.com/canchalibre/match-engine/internal/http/handlers"
	"github.com/canchalibre/match-engine/internal/http/middleware"
	"github.com/canchalibre/match-engine/internal/logging"
	"github.com/canchalibre/match-engine/internal/metrics"
	"github.com/canchalibre/match-engine/internal/nearby"
	"github.com/canchalibre/match-engine/internal/poller"
	"github.com/canchalibre/match-engine/internal/providers"
	"github.com/canchalibre/match-engine/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	matchesService *matches.Service
	weatherService *appweather.Service
	httpServer     httpServer
	metricsServer  httpServer
	poller         Poller
	metricsStop    func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	bookings, forecast := newProviderFactory(logger).build(cfg)
	return newServerWithProviders(cfg, logger, bookings, forecast)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, bookings providers.BookingProvider, forecast providers.ForecastProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	memoryStore, matchSvc, weatherSvc := buildServices()
	origin := domain.GeoPoint{Latitude: cfg.OriginLat, Longitude: cfg.OriginLon}
	plr := poller.New(bookings, forecast, origin, matchSvc, weatherSvc, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, matchSvc, weatherSvc, logger, recorder, plr)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		matchesService: matchSvc,
		weatherService: weatherSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		poller:         plr,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, matchSvc *matches.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:            cfg,
		logger:         logger,
		matchesService: matchSvc,
		httpServer:     httpSrv,
		poller:         plr,
	}
}

func buildServices() (*store.MemoryStore, *matches.Service, *appweather.Service) {
	memoryStore := store.NewMemoryStore()
	return memoryStore, matches.NewService(memoryStore), appweather.NewService(memoryStore)
}

func buildHTTPServer(cfg config.Config, matchSvc *matches.Service, weatherSvc *appweather.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	origin := domain.GeoPoint{Latitude: cfg.OriginLat, Longitude: cfg.OriginLon}
	ranker := nearby.New(logger, recorder)
	handler := handlers.NewHandler(matchSvc, weatherSvc, ranker, logger, statusFn, cfg.DefaultTimeZone, origin)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
