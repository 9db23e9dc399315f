package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"deepdive/internal/cache"
	"deepdive/internal/config"
	"deepdive/internal/gateway"
	"deepdive/internal/logging"
	"deepdive/internal/repository"
	"deepdive/internal/service"
	"deepdive/internal/transport/rest"
	"deepdive/internal/transport/ws"
)

func main() {
	logger, err := logging.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	aiConfig := config.DefaultAIConfig()
	serverConfig := config.DefaultServerConfig()

	logger.Info("AI config",
		zap.String("model", aiConfig.Model),
		zap.Bool("api_key_configured", aiConfig.IsEnabled()))
	if !aiConfig.IsEnabled() {
		logger.Warn("OPENAI_API_KEY not set, gateway calls will fail")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(serverConfig.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	db := mongoClient.Database(serverConfig.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(serverConfig.RedisURI, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub(logger)

	// Initialize repositories
	adminRepo := repository.NewAdminRepo(db)
	surveyRepo := repository.NewSurveyRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	chatLogRepo := repository.NewChatLogRepo(db)

	// Initialize caches
	chatLogCache := cache.NewChatLogCache(rdb)

	// Initialize services
	gw := gateway.NewOpenAIGateway(aiConfig)
	authSvc := service.NewAuthService(adminRepo, serverConfig.JWTSecret)
	surveySvc := service.NewSurveyService(surveyRepo, gw)
	responseSvc := service.NewResponseService(surveyRepo, responseRepo)
	interviewSvc := service.NewInterviewService(gw, surveyRepo, responseRepo, chatLogRepo, chatLogCache, logger)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	interviewSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		SurveyService:    surveySvc,
		ResponseService:  responseSvc,
		InterviewService: interviewSvc,
		WSHub:            wsHub,
		WSHandler:        ws.NewHandler(wsHub, authSvc, logger),
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + serverConfig.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", serverConfig.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
