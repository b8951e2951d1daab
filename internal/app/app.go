package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/weather-dashboard/docs"
	"github.com/Nazarious-ucu/weather-dashboard/internal/config"
	"github.com/Nazarious-ucu/weather-dashboard/internal/handlers/dashboard"
	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/cache"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/forecast"
	loggerT "github.com/Nazarious-ucu/weather-dashboard/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weather-dashboard/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/weather-dashboard/internal/services/weather"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/weather/decorators"
	fLogger "github.com/Nazarious-ucu/weather-dashboard/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	WeatherService *decorators.CachedService
	Presenter      *forecast.Presenter

	Router      *gin.Engine
	Srv         *http.Server
	fileLogger  *zap.Logger
	redisClient *redis.Client
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start wires the services, serves HTTP and blocks until ctx is done.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init(ctx)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		a.l.Info().
			Str("address", a.cfg.Server.Address).
			Msg("starting weather dashboard")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping weather dashboard")
	case err := <-serveErr:
		if err != nil {
			a.l.Error().Err(err).Msg("http server failed")
			_ = a.Shutdown(srvContainer)
			return err
		}
	}

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Shutdown stops the HTTP server, closes redis and syncs the file logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping weather dashboard…")

	defer func(logger *zap.Logger) {
		if logger == nil {
			return
		}
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		} else {
			a.l.Info().Msg("file logger synced successfully")
		}
	}(srvContainer.fileLogger)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	} else {
		a.l.Info().Msg("HTTP server stopped")
	}

	if srvContainer.redisClient != nil {
		if err := srvContainer.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		} else {
			a.l.Info().Msg("redis connection closed")
		}
	}

	a.l.Info().Msg("shutdown complete")
	return errors.Join(errs...)
}

// Init builds every dependency and registers the routes without serving.
func (a *App) Init(ctx context.Context) (ServiceContainer, error) {
	a.l.Info().Msgf("initializing weather dashboard with config: %+v", a.cfg)

	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger, outbound requests will not be logged")
		fileLogger = zap.NewNop()
	}

	// HTTP client logging
	httpLogClient := &http.Client{
		Transport: loggerT.NewRoundTripper(fileLogger),
		Timeout:   a.cfg.FetchTimeout(),
	}

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}
	openMeteo := serviceWeather.NewBreakerClient("Open-Meteo", breakerCfg,
		serviceWeather.NewClientOpenMeteo(a.cfg.OpenMeteo.URL, httpLogClient, a.l),
	)
	rawService := serviceWeather.NewService(a.l, a.cfg.ForecastRequest(), openMeteo, a.m)

	snapshotCache, redisClient, err := a.newSnapshotCache(ctx)
	if err != nil {
		return ServiceContainer{}, err
	}
	weatherService := decorators.NewCachedService(rawService, snapshotCache, a.l).
		WithFetchTimeout(a.cfg.FetchTimeout())

	presenter, err := forecast.NewPresenter(a.l, rawService.Location(), config.DashboardTitle, a.m)
	if err != nil {
		return ServiceContainer{}, err
	}

	handler, err := dashboard.NewHandler(weatherService, presenter, config.DashboardTitle, a.l)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("load templates: %w", err)
	}
	handler.WithUpstream(openMeteo).WithTimeout(a.cfg.FetchTimeout())

	router := gin.New()
	router.Use(gin.Recovery(), dashboard.RequestLogger(a.l), a.m.HTTPMiddleware())

	router.GET("/", handler.Dashboard)
	router.POST("/refresh", handler.Refresh)
	router.GET("/health", handler.Health)
	api := router.Group("/api/v1")
	{
		api.GET("/forecast", handler.GetForecast)
		api.POST("/forecast/refresh", handler.RefreshForecast)
	}
	router.GET("/metrics", gin.WrapH(a.m.Handler()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	httpServer := &http.Server{
		Addr:         a.cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		Presenter:      presenter,
		Router:         router,
		Srv:            httpServer,
		fileLogger:     fileLogger,
		redisClient:    redisClient,
	}, nil
}

// newSnapshotCache picks the configured backend and wraps it with metrics.
func (a *App) newSnapshotCache(
	ctx context.Context,
) (*cache.MetricsDecorator[models.WeatherSnapshot], *redis.Client, error) {
	collector := metricsSvc.NewPromCollector(a.m.Registry())
	ttl := a.cfg.CacheTTL()

	switch a.cfg.Cache.Backend {
	case config.CacheBackendMemory:
		a.l.Info().Dur("ttl", ttl).Msg("using in-memory forecast cache")
		return cache.NewMetricsDecorator[models.WeatherSnapshot](
			cache.NewMemoryClient[models.WeatherSnapshot](a.l, ttl),
			collector,
		), nil, nil
	case config.CacheBackendRedis:
		redisClient := newRedisConnection(a.cfg.RedisAddress(), a.cfg.Redis.DbType)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", a.cfg.RedisAddress(), err)
		}
		a.l.Info().
			Str("address", a.cfg.RedisAddress()).
			Dur("ttl", ttl).
			Msg("using redis forecast cache")
		return cache.NewMetricsDecorator[models.WeatherSnapshot](
			cache.NewRedisClient[models.WeatherSnapshot](redisClient, a.l, ttl),
			collector,
		), redisClient, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", a.cfg.Cache.Backend)
	}
}

func newRedisConnection(connString string, dbType int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: connString, DB: dbType})
}
