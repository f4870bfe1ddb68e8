package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FabricioSoica/Front-MindCase/internal/apiclient"
	"github.com/FabricioSoica/Front-MindCase/internal/config"
	"github.com/FabricioSoica/Front-MindCase/internal/handler"
	"github.com/FabricioSoica/Front-MindCase/internal/logger"
	"github.com/FabricioSoica/Front-MindCase/internal/middleware"
	"github.com/FabricioSoica/Front-MindCase/internal/service"
	"github.com/FabricioSoica/Front-MindCase/internal/session"
	"github.com/FabricioSoica/Front-MindCase/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	// Backend API client
	api := apiclient.New(cfg.BackendBaseURL, cfg.BackendTimeout)

	// Session cookie store
	sessions := session.NewStore(session.Options{
		Secure: cfg.CookieSecure,
		MaxAge: cfg.CookieMaxAge,
	})

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	authService := service.NewAuthService(api)
	articleService := service.NewArticleService(api)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, v)
	articleHandler := handler.NewArticleHandler(articleService, v, cfg.FeedPageSize)
	profileHandler := handler.NewProfileHandler(authService, sessions, v)
	healthHandler := handler.NewHealthHandler(articleService)

	// Parse page templates
	templates, err := handler.NewTemplates(cfg.AssetBaseURL)
	if err != nil {
		logger.Fatal("Failed to parse templates",
			slog.String("error", err.Error()))
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public pages
	public := router.Group("", middleware.LoadSession(sessions))
	{
		public.GET("/login", authHandler.ShowLogin)
		public.POST("/login", authHandler.Login)
		public.GET("/register", authHandler.ShowRegister)
		public.POST("/register", authHandler.Register)
		public.GET("/changepassword", authHandler.ShowChangePassword)
		public.POST("/changepassword", authHandler.ChangePassword)
		public.POST("/logout", authHandler.Logout)
	}

	// Pages gated on a logged-in session
	private := router.Group("", middleware.RequireSession(sessions))
	{
		private.GET("/", articleHandler.Feed)
		private.GET("/article/new", articleHandler.ShowNewArticle)
		private.POST("/article/new", articleHandler.CreateArticle)
		private.GET("/article/:id", articleHandler.ShowArticle)
		private.GET("/article/:id/edit", articleHandler.ShowEditArticle)
		private.POST("/article/:id/edit", articleHandler.UpdateArticle)
		private.POST("/article/:id/delete", articleHandler.DeleteArticle)
		private.GET("/my-articles", articleHandler.MyArticles)
		private.GET("/user/:id", profileHandler.ShowProfile)
		private.POST("/user/:id", profileHandler.UpdateProfile)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("backend", cfg.BackendBaseURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
