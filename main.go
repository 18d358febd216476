package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskpulse/config"
	"taskpulse/handler"
	"taskpulse/logger"
	"taskpulse/middleware"
	"taskpulse/repository"
	"taskpulse/services"
	"taskpulse/usecase"
	"taskpulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	logger.Init(cfg.LogLevel, cfg.LogJSON)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := utils.ConnectMongo(ctx, cfg.Database.MongoOptions())
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Warn("MongoDB disconnect failed", "error", err)
		}
	}()

	db := client.Database(cfg.Database.DatabaseName)
	if err := repository.SetupIndexes(ctx, db, repository.Collections{
		Todos: cfg.Database.TodosCollection,
		Users: cfg.Database.UsersCollection,
		Goals: cfg.Database.GoalsCollection,
	}); err != nil {
		logger.Fatal("failed to create indexes", "error", err)
	}

	// Redis is optional: without it logout cannot revoke tokens and
	// requests are not rate limited.
	var (
		redisClient *redis.Client
		blacklist   *services.RedisTokenBlacklist
	)
	if cfg.RedisURL != "" {
		redisClient, err = utils.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal("invalid REDIS_URL", "error", err)
		}
		defer redisClient.Close()

		blacklist, err = services.NewTokenBlacklist(ctx, redisClient)
		if err != nil {
			logger.Warn("Redis unavailable; continuing without token blacklist and rate limiting", "error", err)
			redisClient, blacklist = nil, nil
		}
	} else {
		logger.Warn("REDIS_URL not set; token blacklist and rate limiting disabled")
	}

	todosRepo := repository.GetTodosRepo(db, cfg.Database.TodosCollection)
	usersRepo := repository.GetUserRepo(db, cfg.Database.UsersCollection)
	goalsRepo := repository.GetGoalsRepo(db, cfg.Database.GoalsCollection)

	tokens := services.NewTokenService(cfg.JWTSecretKey, cfg.JWTExpirationTime)

	router := setupRouter(routerDeps{
		auth:      handler.NewAuthHandler(usecase.NewUserService(usersRepo, tokens), tokens, blacklist),
		todos:     handler.NewTodoHandler(usecase.NewTodosService(todosRepo)),
		goals:     handler.NewGoalHandler(usecase.NewGoalsService(goalsRepo)),
		analytics: handler.NewAnalyticsHandler(usecase.NewAnalyticsService(todosRepo, cfg.AnalyticsMaxDays)),
		health: handler.NewHealthHandler(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}, version),

		tokens:         tokens,
		blacklist:      blacklist,
		limiter:        middleware.NewRateLimiter(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow),
		allowedOrigins: cfg.CORSAllowedOrigins,
		maxBodyBytes:   cfg.MaxRequestBytes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", srv.Addr, "env", cfg.Env, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server shutdown complete")
}
