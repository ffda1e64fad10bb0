// @title Quiz Runner API
// @version 1.0
// @description JSON interface of the multiple-choice quiz runner. The HTML page at / drives the same session.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-runner/internal/adapter"
	"quiz-runner/internal/cache"
	"quiz-runner/internal/config"
	"quiz-runner/internal/handler"
	"quiz-runner/internal/logger"
	"quiz-runner/internal/middleware"
	"quiz-runner/internal/repository"
	"quiz-runner/internal/service"
	"quiz-runner/internal/view"

	_ "quiz-runner/cmd/quiz/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

// newResultRecorder connects to Redis when configured. Without it, finished
// quizzes are simply not recorded.
func newResultRecorder(cfg *config.Config) (service.ResultRecorder, func()) {
	if !cfg.RedisEnabled() {
		return service.NewResultRecorder(nil, 0), func() {}
	}
	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Get().Warn("Redis unavailable, quiz results will not be recorded", zap.Error(err))
		return service.NewResultRecorder(nil, 0), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	recorder, err := service.ConnectResultRecorder(ctx, adapter.NewRedisCacheAdapter(client), cfg.Redis.ResultTTL)
	if err != nil {
		_ = client.Close()
		logger.Get().Warn("Redis unavailable, quiz results will not be recorded",
			zap.String("address", cfg.Redis.Address), zap.Error(err))
		return service.NewResultRecorder(nil, 0), func() {}
	}
	logger.Get().Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	return recorder, func() { _ = client.Close() }
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder, closeRecorder := newResultRecorder(cfg)
	defer closeRecorder()

	cues := view.NewPageCues()
	quizService := service.NewQuizService(
		repository.NewQuestionSource(cfg.Quiz),
		recorder,
		cfg.Quiz,
		service.WithCuePlayers(cues),
	)
	defer quizService.Close()

	// The page reports a failed or empty load itself, so the server starts regardless.
	if err := quizService.Init(ctx); err != nil {
		appLogger.Warn("Quiz is unavailable", zap.String("source", cfg.Quiz.Source), zap.Error(err))
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		appLogger.Fatal("Failed to prepare page template", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    64 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Static("/static", cfg.Quiz.AssetsDir)
	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, handler.NewPageHandler(quizService, renderer, cues), handler.NewQuizHandler(quizService))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
