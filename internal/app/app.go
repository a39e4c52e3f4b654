package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jobportal_front/internal/apiclient"
	"jobportal_front/internal/cache"
	"jobportal_front/internal/config"
	"jobportal_front/internal/handlers"
	"jobportal_front/internal/imageprocessor"
	"jobportal_front/internal/logger"
	"jobportal_front/internal/middleware"
	"jobportal_front/internal/routes"
	"jobportal_front/internal/services"
	"jobportal_front/internal/session"
	"jobportal_front/internal/storage"
	"jobportal_front/internal/store"
	"jobportal_front/internal/validator"
	"jobportal_front/internal/workers"
	"jobportal_front/pkg/apperrors"
	"jobportal_front/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Deps - внешние зависимости роутера. В тестах подставляются память и fake API.
type Deps struct {
	Sessions workers.SessionCleaner
	Cache    services.ReferenceCache
	Storage  storage.Storage
	API      *apiclient.Client
}

// App - собранный фронт-сервис
type App struct {
	Router   *gin.Engine
	Stores   *store.Registry
	WS       *ws.WebSocketManager
	Services *services.ServiceContainer
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions, err := openSessionStore(cfg)
	if err != nil {
		logger.Fatal("Failed to open session store", "error", err)
	}

	redisCache := cache.NewRedis(cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      time.Duration(cfg.Redis.ReferenceTTLs) * time.Second,
	})
	defer redisCache.Close()

	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	api := apiclient.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	logger.Info("API client initialized", "base_url", cfg.API.BaseURL)

	a := New(ctx, cfg, Deps{
		Sessions: sessions,
		Cache:    redisCache,
		Storage:  storageInstance,
		API:      api,
	})

	maxAge := time.Duration(cfg.Session.MaxAgeDays) * 24 * time.Hour
	workers.NewSessionWorker(sessions, a.Stores, maxAge, time.Hour).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server startup error", "error", err)
	}
	logger.Info("Server stopped")
}

// New собирает сервисы, хэндлеры и роутер. WebSocket-менеджер живет до отмены ctx.
func New(ctx context.Context, cfg *config.Config, deps Deps) *App {
	stores := store.NewRegistry()
	customValidator := validator.New()

	serviceContainer := services.NewServiceContainer(services.Deps{
		API:       deps.API,
		Stores:    stores,
		Cache:     deps.Cache,
		Images: storage.NewImageUploader(deps.Storage, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes).
			WithResizer(imageprocessor.NewProcessor(cfg.Upload.MaxImageSide, cfg.Upload.JPEGQuality)),
		Validator: customValidator,
	})

	baseHandler := handlers.NewBaseHandler(customValidator, stores)
	appHandlers := handlers.NewAppHandlers(baseHandler, serviceContainer, deps.Sessions)

	wsManager := ws.NewWebSocketManager(stores)
	go wsManager.Run(ctx)
	wsHandler := ws.NewWebSocketHandler(wsManager, cfg.CORS.AllowedOrigins)

	ginRouter := initializeGinRouter(cfg, deps.Sessions)
	if local, ok := deps.Storage.(*storage.LocalStorage); ok && cfg.Storage.BaseURL != "" {
		ginRouter.Static(cfg.Storage.BaseURL, local.BasePath())
	}

	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return &App{
		Router:   ginRouter,
		Stores:   stores,
		WS:       wsManager,
		Services: serviceContainer,
	}
}

func initializeGinRouter(cfg *config.Config, sessions session.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.SessionMiddleware(sessions, middleware.SessionOptions{
		CookieName: cfg.Session.CookieName,
		MaxAge:     time.Duration(cfg.Session.MaxAgeDays) * 24 * time.Hour,
		Secure:     cfg.Session.Secure,
	}))
	return router
}

// openSessionStore - memory для разработки, postgres чтобы сессии переживали рестарт
func openSessionStore(cfg *config.Config) (workers.SessionCleaner, error) {
	switch cfg.Session.Store {
	case "memory":
		logger.Warn("Sessions are kept in memory and will be lost on restart")
		return session.NewMemoryStore(), nil
	case "postgres":
		logger.Info("Connecting to session database...")
		gormDB, err := gorm.Open(postgres.Open(cfg.Session.DSN), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to GORM: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("session database unavailable: %w", err)
		}
		gs := session.NewGormStore(gormDB)
		if err := gs.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate browser_sessions: %w", err)
		}
		logger.Info("Session database connected")
		return gs, nil
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Session.Store)
	}
}
