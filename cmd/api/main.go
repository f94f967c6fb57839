// @title Story Time API
// @version 1.0
// @description Backend for the HIMIG children's storytelling app: story catalog, narration sync and story quizzes.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"story-time/internal/adapter"
	"story-time/internal/cache"
	"story-time/internal/catalog"
	"story-time/internal/config"
	"story-time/internal/database"
	"story-time/internal/domain"
	"story-time/internal/handler"
	"story-time/internal/locale"
	"story-time/internal/logger"
	"story-time/internal/middleware"
	"story-time/internal/repository"
	"story-time/internal/service"

	_ "story-time/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// scoreBackend is the configured score store plus what main needs to check
// and release it.
type scoreBackend struct {
	store domain.ScoreStore
	ping  handler.Pinger
	close func() error
}

func newScoreBackend(ctx context.Context, cfg *config.Config) (*scoreBackend, error) {
	switch cfg.ScoreStore.Driver {
	case config.ScoreStoreRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		store := adapter.NewCacheScoreStore(adapter.NewRedisCacheAdapter(client))
		return &scoreBackend{store: store, ping: store.Ping, close: client.Close}, nil
	case config.ScoreStoreSQL:
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			return nil, err
		}
		return &scoreBackend{store: repository.NewScoreRepository(db), ping: db.PingContext, close: db.Close}, nil
	case config.ScoreStoreMemory:
		store := adapter.NewCacheScoreStore(adapter.NewMemoryCache())
		return &scoreBackend{store: store, close: func() error { return nil }}, nil
	default:
		return nil, fmt.Errorf("unsupported score store driver: %s", cfg.ScoreStore.Driver)
	}
}

func storiesFS(cfg *config.Config) fs.FS {
	if cfg.Catalog.Dir != "" {
		return os.DirFS(cfg.Catalog.Dir)
	}
	return catalog.Bundled()
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	locales, err := locale.NewResolver(cfg.Locale.Default, cfg.Locale.Supported)
	if err != nil {
		appLogger.Fatal("Failed to create locale resolver", zap.Error(err))
	}

	stories := catalog.NewStore(storiesFS(cfg))
	appLogger.Info("Story catalog loaded",
		zap.Int("stories", len(stories.LoadStories(ctx))),
		zap.String("dir", cfg.Catalog.Dir),
	)

	scores, err := newScoreBackend(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize score store",
			zap.String("driver", cfg.ScoreStore.Driver),
			zap.Error(err),
		)
	}
	defer func() {
		if err := scores.close(); err != nil {
			appLogger.Warn("Failed to close score store", zap.Error(err))
		}
	}()
	appLogger.Info("Score store initialized", zap.String("driver", cfg.ScoreStore.Driver))

	// Initialize services
	storyService := service.NewStoryService(stories, locales)
	readingService := service.NewReadingService(stories, locales, cfg.Session.TTL)
	quizService := service.NewQuizService(stories, locales, scores.store, cfg.Session.TTL)

	go readingService.Run(ctx, cfg.Session.SweepInterval)
	go quizService.Run(ctx, cfg.Session.SweepInterval)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Accept-Language", MaxAge: 300}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app.Group("/api"), handler.Handlers{
		Story:   handler.NewStoryHandler(storyService),
		Reading: handler.NewReadingHandler(readingService),
		Quiz:    handler.NewQuizHandler(quizService),
		App:     handler.NewAppHandler(locales, cfg.ScoreStore.Driver, scores.ping),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
