package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"solene-digital.backend/internal/config"
	"solene-digital.backend/internal/infrastructure/datasources"
	"solene-digital.backend/internal/infrastructure/mailer"
	"solene-digital.backend/internal/infrastructure/repositories"
	"solene-digital.backend/internal/interfaces/http/handlers"
	"solene-digital.backend/internal/interfaces/http/middleware"
	"solene-digital.backend/internal/usecases"
	"solene-digital.backend/pkg/logger"
	"solene-digital.backend/pkg/metrics"
	"solene-digital.backend/pkg/redis"
)

const serviceName = "solene-backend"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	loadDotenv    = godotenv.Load
	loadCfg       = config.Load
	initLog       = logger.Init
	openDB        = datasources.NewConnection
	newRedis      = redis.New
	newMailer     = mailer.New
	notifyContext = signal.NotifyContext
	runServer     = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = datasources.Close(db) }()
	logger.Info(ctx, "Connected to database", zap.String("driver", cfg.Database.Driver))

	if err := datasources.Migrate(db); err != nil {
		return err
	}

	m := metrics.New()
	storage := repositories.NewStorage(db)

	seedDefaults(ctx, storage, m)

	mail, err := newMailer(cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to configure mailer: %w", err)
	}
	if !cfg.Mail.Enabled() {
		logger.Warn(ctx, "SMTP_HOST not set, contact notifications will only be logged")
	}
	notifier := usecases.NewContactNotifier(mail, cfg.Mail.AdminEmail, m)
	contactUsecase := usecases.NewContactUsecase(storage, notifier, cfg.Mail.Timeout, m)

	var idempotencyStore middleware.IdempotencyStore
	if cfg.Redis.Enabled() {
		store, err := newRedis(cfg.Redis.URL, cfg.Redis.Password)
		if err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer func() { _ = store.Close() }()
		idempotencyStore = store
		logger.Info(ctx, "Redis initialized")
	}

	spaHandler, err := handlers.NewSPAHandler(cfg.Static.Dir)
	if err != nil {
		logger.Warn(ctx, "Static client not served", zap.Error(err))
	}

	r := newRouter(cfg.CORS.AllowedOrigins, routeDeps{
		contactHandler: handlers.NewContactHandler(contactUsecase),
		contentHandler: handlers.NewContentHandler(storage, storage),
		healthHandler:  handlers.NewHealthHandler(serviceName, version),
		spaHandler:     spaHandler,
		idempotency:    middleware.IdempotencyMiddleware(idempotencyStore, "contact"),
		metrics:        m,
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Registered route", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := notifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- runServer(srv) }()
	logger.Info(ctx, "Server starting", zap.String("port", cfg.Server.Port), zap.String("version", version))

	select {
	case err := <-errCh:
		contactUsecase.Wait()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	logger.Info(ctx, "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	contactUsecase.Wait()
	return nil
}

// seedDefaults fills empty content tables. Failures are logged and the
// server keeps starting.
func seedDefaults(ctx context.Context, storage *repositories.Storage, m *metrics.Metrics) {
	data, err := usecases.DefaultSeedData()
	if err != nil {
		logger.Error(ctx, "Failed to load seed data", zap.Error(err))
		return
	}
	report, err := usecases.NewSeedUsecase(storage, storage, data, m).Seed(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to seed database", zap.Error(err))
		return
	}
	logger.Info(ctx, "Seeding finished",
		zap.Int("services_inserted", report.ServicesInserted),
		zap.Int("team_inserted", report.TeamInserted),
	)
}
