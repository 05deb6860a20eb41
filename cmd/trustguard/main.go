// @title TrustGuard API
// @version 0.3.0
// @description Comment moderation API and discussion board backed by a small language model.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by the API key.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/NeuralTrust/TrustGuard/docs"
	appComment "github.com/NeuralTrust/TrustGuard/pkg/app/comment"
	"github.com/NeuralTrust/TrustGuard/pkg/app/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/app/session"
	"github.com/NeuralTrust/TrustGuard/pkg/config"
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	handlers "github.com/NeuralTrust/TrustGuard/pkg/handlers/http"
	"github.com/NeuralTrust/TrustGuard/pkg/handlers/http/request"
	wsHandlers "github.com/NeuralTrust/TrustGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/subscriber"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/database"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/httpx"
	infraLogger "github.com/NeuralTrust/TrustGuard/pkg/infra/logger"
	_ "github.com/NeuralTrust/TrustGuard/pkg/infra/migrations"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/factory"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/repository"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/slm"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/telemetry/kafka"
	"github.com/NeuralTrust/TrustGuard/pkg/middleware"
	"github.com/NeuralTrust/TrustGuard/pkg/server"
	"github.com/NeuralTrust/TrustGuard/pkg/server/router"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	_ "go.uber.org/automaxprocs"
)

const (
	serverTypeAPI   = "api"
	serverTypeBoard = "board"

	feedBufferSize     = 64
	maxFeedConnections = 100
)

// closers are released in reverse order on shutdown.
type closers []func()

func (c closers) close() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

func main() {
	configPath := pflag.String("config", "./config", "directory containing config.yaml")
	pflag.Parse()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()
	serverType := getServerType(cfg)

	logger, logCloser, err := infraLogger.NewLogger(serverType)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logCloser.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		srv     server.Server
		cleanup closers
	)
	switch serverType {
	case serverTypeBoard:
		srv, cleanup, err = newBoardServer(ctx, cfg, logger)
	case serverTypeAPI:
		srv, err = newAPIServer(cfg, logger)
	default:
		err = fmt.Errorf("unknown server type %q", serverType)
	}
	if err != nil {
		logger.Fatalf("failed to initialize %s server: %v", serverType, err)
	}
	defer cleanup.close()

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		cleanup.close()
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}

func getServerType(cfg *config.Config) string {
	if pflag.NArg() > 0 {
		return pflag.Arg(0)
	}
	return cfg.Server.Type
}

func newAPIServer(cfg *config.Config, logger *logrus.Logger) (server.Server, error) {
	logger.WithFields(logrus.Fields{
		"model":    cfg.Model.Name,
		"family":   cfg.Model.ResolvedFamily,
		"provider": cfg.Model.Provider,
	}).Info("loading moderation model")

	client, err := factory.NewProviderLocator(httpx.NewClient()).Get(cfg.Model.Provider)
	if err != nil {
		return nil, err
	}

	classifier := moderation.NewClassifier(
		logger,
		client,
		moderation.NewPromptBuilder(domain.PolicyPrompt),
		moderation.ClassifierConfig{
			Family:       cfg.Model.ResolvedFamily,
			ProviderName: cfg.Model.Provider,
			Provider:     providerConfig(cfg.Model),
		},
	)

	middlewareTransport := middleware.Transport{
		RequestLogMiddleware: middleware.NewRequestLogMiddleware(logger),
		PanicMiddleware:      middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware:       middleware.NewCORSGlobalMiddleware(corsConfig(cfg)),
		MetricsMiddleware:    middleware.NewMetricsMiddleware(logger, serverTypeAPI),
		AuthMiddleware:       middleware.NewAuthMiddleware(logger, cfg.Auth.ApiKey),
	}

	handlerTransport := handlers.HandlerTransport{
		HealthHandler:  handlers.NewHealthHandler(nil),
		VersionHandler: handlers.NewGetVersionHandler(),
		ChatHandler: handlers.NewChatHandler(logger, classifier, request.Limits{
			MaxPromptChars:  cfg.Limits.MaxPromptChars,
			MaxHistoryTurns: cfg.Limits.MaxHistoryTurns,
		}),
	}

	return server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(middlewareTransport, handlerTransport),
			router.NewDocsRouter(),
		},
	}), nil
}

func newBoardServer(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (server.Server, closers, error) {
	var cleanup closers

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return nil, cleanup, err
	}
	cleanup = append(cleanup, func() { _ = db.Close() })

	healthChecks := map[string]handlers.Checker{
		"database": func() error {
			sqlDB, err := db.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		},
	}

	var (
		cacheClient cache.Client
		publisher   cache.EventPublisher
		feed        *wsHandlers.ModerationFeed
	)
	if cfg.Redis.Enabled {
		cacheClient, err = cache.NewClient(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		}, logger)
		if err != nil {
			return nil, cleanup, err
		}
		healthChecks["redis"] = func() error {
			return cacheClient.RedisClient().Ping(context.Background()).Err()
		}

		channel := cache.Channel(cfg.Board.EventsChannel)
		publisher = cache.NewRedisEventPublisher(cacheClient, channel)
		listener := cache.NewRedisEventListener(logger, cacheClient, event.Registry)

		feed = wsHandlers.NewModerationFeed(logger, feedBufferSize)
		cleanup = append(cleanup, feed.Close)
		subscriber.RegisterSink(logger, listener, "moderation_feed", feed)

		if cfg.Kafka.Enabled {
			exporter, err := kafka.NewKafkaExporter(kafka.Config{
				Host:  cfg.Kafka.Host,
				Port:  cfg.Kafka.Port,
				Topic: cfg.Kafka.Topic,
			})
			if err != nil {
				return nil, cleanup, err
			}
			cleanup = append(cleanup, exporter.Close)
			subscriber.RegisterSink(logger, listener, exporter.Name(), exporter)
		}

		go listener.Listen(ctx, channel)
	} else if cfg.Kafka.Enabled {
		logger.Warn("kafka export requires redis events; kafka exporter not started")
	}

	users, err := cache.NewCachedUserRepository(
		logger,
		repository.NewUserRepository(db.DB),
		cacheClient,
		cfg.Board.UserCacheSize,
		cfg.Board.SessionTTL,
	)
	if err != nil {
		return nil, cleanup, err
	}

	moderator := slm.NewModerationClient(
		logger,
		httpx.NewClient(),
		httpx.NewCircuitBreaker("slm", cfg.Board.BreakerTimeout, cfg.Board.BreakerFailures),
		slm.Config{
			Enabled: cfg.Board.ModerationEnabled,
			BaseURL: cfg.Board.SlmURL,
			ApiKey:  cfg.Board.SlmApiKey,
			Timeout: cfg.Board.SlmTimeout,
		},
	)

	commentService := appComment.NewService(
		logger,
		users,
		repository.NewCommentRepository(db.DB),
		repository.NewModActionRepository(db.DB),
		moderator,
		publisher,
		appComment.Config{MaxCommentChars: cfg.Board.MaxCommentChars},
	)

	secret := cfg.Board.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
		logger.Warn("board.session_secret is empty; sessions will not survive a restart")
	}
	sessions := session.NewManager(secret, cfg.Board.SessionTTL)

	middlewareTransport := middleware.Transport{
		RequestLogMiddleware: middleware.NewRequestLogMiddleware(logger),
		PanicMiddleware:      middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware:       middleware.NewCORSGlobalMiddleware(corsConfig(cfg)),
		MetricsMiddleware:    middleware.NewMetricsMiddleware(logger, serverTypeBoard),
		SessionMiddleware:    middleware.NewSessionMiddleware(logger, sessions, cfg.Board.DefaultUser),
		AdminMiddleware:      middleware.NewAdminMiddleware(logger, users),
		WebsocketMiddleware:  middleware.NewWebsocketMiddleware(logger, maxFeedConnections),
	}

	handlerTransport := handlers.HandlerTransport{
		HealthHandler:        handlers.NewHealthHandler(healthChecks),
		SessionHandler:       handlers.NewSessionHandler(logger, sessions, false),
		ListCommentsHandler:  handlers.NewListCommentsHandler(logger, commentService),
		CreateCommentHandler: handlers.NewCreateCommentHandler(logger, commentService),
		FlagCommentHandler:   handlers.NewFlagCommentHandler(logger, commentService),
		UnflagCommentHandler: handlers.NewUnflagCommentHandler(logger, commentService),
		ModerateHandler:      handlers.NewModerateHandler(logger, commentService),
	}

	var feedHandler wsHandlers.Handler
	if feed != nil {
		feedHandler = feed
	}

	return server.NewBoardServer(server.BoardServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewBoardRouter(middlewareTransport, handlerTransport, feedHandler),
			router.NewDocsRouter(),
		},
	}), cleanup, nil
}

func providerConfig(m config.ModelConfig) providers.Config {
	return providers.Config{
		Credentials: providers.Credentials{
			ApiKey: m.ApiKey,
			Aws: &providers.AwsCredentials{
				Region:       m.Aws.Region,
				AccessKey:    m.Aws.AccessKey,
				SecretKey:    m.Aws.SecretKey,
				SessionToken: m.Aws.SessionToken,
				RoleARN:      m.Aws.RoleARN,
				UseRole:      m.Aws.UseRole,
			},
			Azure: &providers.AzureCredentials{
				Endpoint:           m.Azure.Endpoint,
				ApiVersion:         m.Azure.ApiVersion,
				UseManagedIdentity: m.Azure.UseManagedIdentity,
			},
		},
		Model:     m.Name,
		BaseURL:   m.BaseURL,
		MaxTokens: m.MaxTokens(),
		Options:   m.Options,
	}
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins:     cfg.Cors.AllowOrigins,
		AllowMethods:     cfg.Cors.AllowMethods,
		AllowHeaders:     cfg.Cors.AllowHeaders,
		AllowCredentials: cfg.Cors.AllowCredentials,
		MaxAge:           cfg.Cors.MaxAge,
	}
}
