package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"filmhub/database"
	"filmhub/internal/config"
	"filmhub/internal/http-api/handler"
	"filmhub/internal/http-api/middleware"
	"filmhub/internal/http-api/repository"
	"filmhub/internal/http-api/service"
	"filmhub/internal/http-api/upload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	store, err := upload.NewStore(cfg.UploadDir, cfg.UploadMaxSize)
	if err != nil {
		log.Fatalf("could not prepare upload directory: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	watchedRepo := repository.NewWatchedRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	movieService := service.NewMovieService(movieRepo, store)
	ratingService := service.NewRatingService(ratingRepo, movieRepo)
	commentService := service.NewCommentService(commentRepo, movieRepo)
	watchedService := service.NewWatchedService(watchedRepo)
	userService := service.NewUserService(userRepo, store)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService, store)
	ratingHandler := handler.NewRatingHandler(ratingService)
	commentHandler := handler.NewCommentHandler(commentService)
	watchedHandler := handler.NewWatchedHandler(watchedService)
	userHandler := handler.NewUserHandler(userService, movieService, ratingService, watchedService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded movie images and avatars
	r.Static(upload.URLPrefix, store.Dir())

	requireAuth := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)

	api := r.Group("/api")
	authHandler.RegisterRoutes(api.Group("/auth"))

	movies := api.Group("/movies")
	movieHandler.RegisterRoutes(movies, requireAuth, optionalAuth)
	ratingHandler.RegisterRoutes(movies, requireAuth)
	commentHandler.RegisterRoutes(movies, requireAuth)
	watchedHandler.RegisterRoutes(movies, requireAuth)

	userHandler.RegisterRoutes(api.Group("/users"), requireAuth)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
