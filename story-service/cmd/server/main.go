package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgdb "story-server/pkg/database"
	"story-server/pkg/migration"
	"story-server/shared/authutils"
	"story-server/shared/database"
	"story-server/shared/database/migrations"
	"story-server/shared/interfaces"
	sharedLogger "story-server/shared/logger"
	"story-server/shared/messaging"
	sharedMiddleware "story-server/shared/middleware"
	"story-server/shared/tracing"
	"story-server/story-service/internal/config"
	"story-server/story-service/internal/handler"
	"story-server/story-service/internal/service"
	"story-server/story-service/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
	redis "github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	logger, err := sharedLogger.New(sharedLogger.Config{
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
		Sampling:    cfg.LogSampling,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	cfg.LogSummary(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Tracing ---
	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.OtelEnabled,
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OtelEndpoint,
		Insecure:    cfg.OtelInsecure,
		SampleRatio: cfg.OtelSampleRatio,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	// --- PostgreSQL ---
	dbPool, err := pkgdb.Connect(ctx, cfg.Database())
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer dbPool.Close()
	logger.Info("Connected to PostgreSQL")

	if cfg.AutoMigrate {
		migrator := migration.NewMigrator(migration.Config{MigrationsFS: migrations.FS}, dbPool)
		if err := migrator.Up(ctx); err != nil {
			logger.Fatal("Failed to apply database migrations", zap.Error(err))
		}
	}

	// --- Redis (optional) ---
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = setupRedis(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
	} else {
		logger.Warn("REDIS_ADDR is empty, social rate limits are kept in memory")
	}

	// --- RabbitMQ (optional) ---
	var publisher interfaces.StoryEventPublisher = messaging.NoopStoryEventPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbitConn, err := connectRabbitMQ(cfg.RabbitMQURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer rabbitConn.Close()

		rabbitPublisher, err := messaging.NewRabbitMQStoryEventPublisher(rabbitConn, cfg.StoryEventsExchange, logger)
		if err != nil {
			logger.Fatal("Failed to create story event publisher", zap.Error(err))
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	} else {
		logger.Warn("RABBITMQ_URL is empty, story events are not published")
	}

	// --- Media storage ---
	mediaStorage, closeStorage, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize media storage", zap.Error(err))
	}
	defer closeStorage()

	// --- Repositories & services ---
	transactor := database.NewPgTransactor(dbPool, logger)
	storyRepo := database.NewPgStoryRepository(logger)
	characterRepo := database.NewPgCharacterRepository(logger)
	sceneRepo := database.NewPgSceneRepository(logger)

	storyService := service.NewStoryService(service.StoryServiceDeps{
		DB:            dbPool,
		Transactor:    transactor,
		StoryRepo:     storyRepo,
		CharacterRepo: characterRepo,
		SceneRepo:     sceneRepo,
		LikeRepo:      database.NewPgLikeRepository(logger),
		FavoriteRepo:  database.NewPgFavoriteRepository(logger),
		CommentRepo:   database.NewPgCommentRepository(logger),
		Storage:       mediaStorage,
		Publisher:     publisher,
	}, logger)
	characterService := service.NewCharacterService(dbPool, transactor, characterRepo, storyRepo, logger)
	sceneService := service.NewSceneService(dbPool, transactor, sceneRepo, storyRepo, mediaStorage, logger)

	verifier, err := authutils.NewJWTVerifier(cfg.JWTSecret, logger)
	if err != nil {
		logger.Fatal("Failed to create JWT verifier", zap.Error(err))
	}

	// --- Router ---
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(sharedMiddleware.ZapLoggingMiddlewareForGin(logger))
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))

	corsConfig := cors.DefaultConfig()
	if origins := cfg.GetAllowedOrigins(); len(origins) > 0 && !(len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	p := ginprometheus.NewPrometheus("gin")

	health := healthHandler(dbPool)
	router.GET("/health", health)
	router.HEAD("/health", health)

	if cfg.MediaBackend == config.MediaBackendLocal {
		router.Static(storage.DefaultPublicPrefix, cfg.UploadDir)
	}

	socialLimiter := handler.NewSocialRateLimiter(redisClient, cfg.SocialRatePerMinute, logger)
	storyHandler := handler.NewStoryHandler(storyService, characterService, sceneService, verifier.VerifyToken, cfg.MaxUploadBytes, logger)
	storyHandler.RegisterRoutes(router, socialLimiter)

	p.Use(router)

	// --- HTTP server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Story service listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutting down story service", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Tracer provider shutdown failed", zap.Error(err))
	}
	logger.Info("Story service stopped")
}

func healthHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// setupStorage returns the configured media backend and its close func.
func setupStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.MediaStorage, func(), error) {
	switch cfg.MediaBackend {
	case config.MediaBackendGCS:
		gcs, err := storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCSPublicBase, logger)
		if err != nil {
			return nil, nil, err
		}
		return gcs, func() {
			if err := gcs.Close(); err != nil {
				logger.Warn("Failed to close GCS client", zap.Error(err))
			}
		}, nil
	default:
		local, err := storage.NewLocalStorage(cfg.UploadDir, storage.DefaultPublicPrefix, logger)
		if err != nil {
			return nil, nil, err
		}
		return local, func() {}, nil
	}
}

// setupRedis pings Redis until it answers.
func setupRedis(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	maxRetries := 20
	retryDelay := 3 * time.Second

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		attempt := i + 1
		client := redis.NewClient(opts)

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		pingCancel()
		if err == nil {
			logger.Info("Connected to Redis", zap.String("address", opts.Addr), zap.Int("attempt", attempt))
			return client, nil
		}

		client.Close()
		lastErr = err
		logger.Warn("Redis ping failed, retrying...",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("unable to ping redis after %d attempts: %w", maxRetries, lastErr)
}

// connectRabbitMQ dials RabbitMQ with retries and logs unexpected connection loss.
func connectRabbitMQ(rawURL string, logger *zap.Logger) (*amqp091.Connection, error) {
	maxRetries := 20
	retryDelay := 5 * time.Second
	logger.Info("Attempting to connect to RabbitMQ",
		zap.String("url", maskURL(rawURL)),
		zap.Int("max_retries", maxRetries),
	)

	var err error
	for i := 0; i < maxRetries; i++ {
		attempt := i + 1
		var conn *amqp091.Connection
		conn, err = amqp091.Dial(rawURL)
		if err == nil {
			logger.Info("Connected to RabbitMQ", zap.Int("attempt", attempt))
			go func() {
				notifyClose := conn.NotifyClose(make(chan *amqp091.Error, 1))
				if closeErr := <-notifyClose; closeErr != nil {
					logger.Error("RabbitMQ connection closed unexpectedly", zap.Error(closeErr))
				}
			}()
			return conn, nil
		}
		logger.Warn("RabbitMQ connection failed, retrying...",
			zap.Int("attempt", attempt),
			zap.Duration("retry_delay", retryDelay),
			zap.Error(err),
		)
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", maxRetries, err)
}

// maskURL hides the password of a connection URL.
func maskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}
