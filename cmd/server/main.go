package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appbasket "github.com/retailnet/backend/internal/application/basket"
	appcatalog "github.com/retailnet/backend/internal/application/catalog"
	appidentity "github.com/retailnet/backend/internal/application/identity"
	apporder "github.com/retailnet/backend/internal/application/order"
	"github.com/retailnet/backend/internal/infrastructure/auth"
	"github.com/retailnet/backend/internal/infrastructure/config"
	"github.com/retailnet/backend/internal/infrastructure/lock"
	"github.com/retailnet/backend/internal/infrastructure/logger"
	"github.com/retailnet/backend/internal/infrastructure/persistence"
	"github.com/retailnet/backend/internal/interfaces/http/handler"
	"github.com/retailnet/backend/internal/interfaces/http/middleware"
	"github.com/retailnet/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// Repositories
	shopRepo := persistence.NewGormShopRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	listingRepo := persistence.NewGormListingRepository(db.DB)
	ingestionStore := persistence.NewGormIngestionStore(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	tokenRepo := persistence.NewGormTokenRepository(db.DB)

	// Feed uploads serialize per shop; multi-instance deployments move the
	// lock into Redis.
	var ingestLocks appcatalog.Locker = lock.NewKeyed()
	if cfg.Ingest.DistributedLock {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()
		ingestLocks = lock.NewRedisKeyed(redisClient, cfg.Ingest.LockTTL)
		log.Info("Using distributed ingestion lock", zap.String("redis", cfg.Redis.Addr()))
	}

	// Services
	authService := appidentity.NewAuthService(userRepo, tokenRepo, auth.GenerateTokenKey, log)
	contactService := appidentity.NewContactService(contactRepo, cfg.Basket.MaxContacts, log)
	catalogService := appcatalog.NewCatalogService(shopRepo, categoryRepo, listingRepo, log)
	ingestService := appcatalog.NewIngestService(ingestionStore, ingestLocks, log)
	basketService := appbasket.NewService(orderRepo, listingRepo, log)
	orderService := apporder.NewService(orderRepo, log)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(&cfg.HTTP),
		middleware.BodySizeLimit(cfg.HTTP.MaxBodySize),
	)

	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine)
	r.Register(router.NewAuthRoutes(handler.NewAuthHandler(authService)))
	r.Register(router.NewCatalogRoutes(handler.NewCatalogHandler(catalogService)))
	r.Register(router.NewPartnerRoutes(handler.NewPartnerHandler(ingestService, orderService), authService))
	r.Register(router.NewBuyerRoutes(
		handler.NewBasketHandler(basketService),
		handler.NewOrderHandler(orderService),
		handler.NewContactHandler(contactService),
		authService,
	))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()
	log.Info("Server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
