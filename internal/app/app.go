package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/sm8ta/webike_wear_microservice/internal/adapter/handler/http"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/logger"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/oauth"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/postgres"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/prometheus"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/redis"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/strava"
	"github.com/sm8ta/webike_wear_microservice/internal/config"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"github.com/sm8ta/webike_wear_microservice/internal/core/services"

	promclient "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	logCloser    *logger.Logger
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router
	server       *nethttp.Server
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMBInt(),
		MaxBackups: cfg.Log.MaxBackupsInt(),
		MaxAgeDays: cfg.Log.MaxAgeDaysInt(),
	})
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn, err := redis.Connect(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DBInt())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewCache(redisConn)

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		redisConn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	applied, err := postgres.Migrate(ctx, db)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if len(applied) > 0 {
		loggerAdapter.Info("Applied migrations", map[string]interface{}{
			"versions": applied,
		})
	}

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewMetrics(promclient.DefaultRegisterer)

	// Repositories
	bikeRepo := postgres.NewBikeRepository(db)
	componentRepo := postgres.NewComponentRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	syncRepo := postgres.NewSyncStatusRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)

	// Strava
	stravaHTTP := &nethttp.Client{Timeout: cfg.Strava.TimeoutDuration()}
	stravaClient, err := strava.NewClient(cfg.Strava.BaseURL, stravaHTTP, loggerAdapter)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to create strava client: %w", err)
	}
	tokenProvider := oauth.NewTokenProvider(
		tokenRepo,
		oauth.NewStravaConfig(cfg.Strava.ClientID, cfg.Strava.ClientSecret, cfg.Strava.TokenURL),
		stravaHTTP,
		loggerAdapter,
	)

	// Services
	bikeService := services.NewBikeService(bikeRepo, componentRepo, activityRepo, syncRepo, loggerAdapter, validate, cacheAdapter)
	componentService := services.NewComponentService(componentRepo, bikeRepo, loggerAdapter, validate, cacheAdapter)
	bikeSync := services.NewBikeSyncService(
		bikeRepo, componentRepo, activityRepo, syncRepo, cacheAdapter, loggerAdapter, metrics,
		cfg.Sync.Strategy(), cfg.Sync.WorkersInt(),
	)
	activitySync := services.NewActivitySyncService(
		activityRepo, bikeRepo, syncRepo, loggerAdapter, metrics, cfg.Sync.IncrementalPages(),
	)
	syncService := services.NewSyncService(
		tokenProvider, stravaClient, activitySync, bikeSync, bikeService, syncRepo, cacheAdapter, loggerAdapter,
	)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, loggerAdapter)
	bikeHandler := http.NewBikeHandler(bikeService, loggerAdapter, metrics)
	componentHandler := http.NewComponentHandler(componentService, bikeService, loggerAdapter, metrics)
	syncHandler := http.NewSyncHandler(syncService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		bikeHandler,
		componentHandler,
		syncHandler,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	server := &nethttp.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port),
		Handler: router.Engine(),
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		logCloser:    loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
		server:       server,
	}, nil
}

// Run serves HTTP until Stop is called.
func (a *App) Run() error {
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": a.server.Addr,
	})

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	// Drain in-flight requests, including running syncs
	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return a.logCloser.Close()
}
