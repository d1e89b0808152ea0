package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/poseidontrading/poseidon/internal/auth"
	"github.com/poseidontrading/poseidon/internal/bid"
	"github.com/poseidontrading/poseidon/internal/config"
	"github.com/poseidontrading/poseidon/internal/curvepoint"
	"github.com/poseidontrading/poseidon/internal/database"
	"github.com/poseidontrading/poseidon/internal/rating"
	"github.com/poseidontrading/poseidon/internal/rulename"
	"github.com/poseidontrading/poseidon/internal/trade"
	"github.com/poseidontrading/poseidon/pkg/middleware"
	"github.com/poseidontrading/poseidon/pkg/response"
	"github.com/poseidontrading/poseidon/web"

	"github.com/gin-gonic/gin"
)

// init configures the application logging based on environment settings
// In development mode, it enables pretty printing with timestamps
// Debug logging can be enabled via DEBUG environment variable
func init() {
	if os.Getenv("ENV") != "production" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		zlog.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("DEBUG") == "true" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// main initializes and runs the Poseidon web application with graceful
// shutdown support.
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to initialize database")
	}

	if err := database.SeedAdminUser(db, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		zlog.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	// Initialize services and handlers
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	authService := auth.NewService(db, cfg.Session.Secret, sessionTTL)
	authHandlers := auth.NewGinHandlers(authService)

	bidHandlers := bid.NewGinHandlers(bid.NewService(db))
	curvePointHandlers := curvepoint.NewGinHandlers(curvepoint.NewService(db))
	ratingHandlers := rating.NewGinHandlers(rating.NewService(db))
	tradeHandlers := trade.NewGinHandlers(trade.NewService(db))
	ruleNameHandlers := rulename.NewGinHandlers(rulename.NewService(db))

	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimit())

	setupRoutes(router, authService, authHandlers,
		bidHandlers, curvePointHandlers, ratingHandlers, tradeHandlers, ruleNameHandlers)

	port := cfg.Server.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Graceful shutdown setup
	go func() {
		zlog.Info().Str("port", port).Msg("Starting Poseidon")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("listen")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info().Msg("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	zlog.Info().Msg("Server exiting")
}

// setupRoutes configures all pages and their handlers. The login pages are
// public; everything else sits behind the session gate.
func setupRoutes(
	router *gin.Engine,
	authService *auth.Service,
	authHandlers *auth.GinHandlers,
	bidHandlers *bid.GinHandlers,
	curvePointHandlers *curvepoint.GinHandlers,
	ratingHandlers *rating.GinHandlers,
	tradeHandlers *trade.GinHandlers,
	ruleNameHandlers *rulename.GinHandlers,
) {
	router.GET("/login", authHandlers.LoginPageHandler())
	router.POST("/login", authHandlers.LoginHandler())

	protected := router.Group("/")
	protected.Use(middleware.SessionAuth(authService))
	{
		protected.GET("/", func(c *gin.Context) {
			response.HTML(c, http.StatusOK, "home", gin.H{})
		})
		protected.POST("/app-logout", authHandlers.LogoutHandler())

		bids := protected.Group("/bid")
		{
			bids.GET("/list", bidHandlers.ListHandler())
			bids.GET("/add", bidHandlers.AddFormHandler())
			bids.POST("/validate", bidHandlers.ValidateHandler())
			bids.GET("/update/:id", bidHandlers.UpdateFormHandler())
			bids.POST("/update/:id", bidHandlers.UpdateHandler())
			bids.GET("/delete/:id", bidHandlers.DeleteHandler())
		}

		curvePoints := protected.Group("/curvePoint")
		{
			curvePoints.GET("/list", curvePointHandlers.ListHandler())
			curvePoints.GET("/add", curvePointHandlers.AddFormHandler())
			curvePoints.POST("/validate", curvePointHandlers.ValidateHandler())
			curvePoints.GET("/update/:id", curvePointHandlers.UpdateFormHandler())
			curvePoints.POST("/update/:id", curvePointHandlers.UpdateHandler())
			curvePoints.GET("/delete/:id", curvePointHandlers.DeleteHandler())
		}

		ratings := protected.Group("/rating")
		{
			ratings.GET("/list", ratingHandlers.ListHandler())
			ratings.GET("/add", ratingHandlers.AddFormHandler())
			ratings.POST("/validate", ratingHandlers.ValidateHandler())
			ratings.GET("/update/:id", ratingHandlers.UpdateFormHandler())
			ratings.POST("/update/:id", ratingHandlers.UpdateHandler())
			ratings.GET("/delete/:id", ratingHandlers.DeleteHandler())
		}

		trades := protected.Group("/trade")
		{
			trades.GET("/list", tradeHandlers.ListHandler())
			trades.GET("/add", tradeHandlers.AddFormHandler())
			trades.POST("/validate", tradeHandlers.ValidateHandler())
			trades.GET("/update/:id", tradeHandlers.UpdateFormHandler())
			trades.POST("/update/:id", tradeHandlers.UpdateHandler())
			trades.GET("/delete/:id", tradeHandlers.DeleteHandler())
		}

		ruleNames := protected.Group("/ruleName")
		{
			ruleNames.GET("/list", ruleNameHandlers.ListHandler())
			ruleNames.GET("/add", ruleNameHandlers.AddFormHandler())
			ruleNames.POST("/validate", ruleNameHandlers.ValidateHandler())
			ruleNames.GET("/update/:id", ruleNameHandlers.UpdateFormHandler())
			ruleNames.POST("/update/:id", ruleNameHandlers.UpdateHandler())
			ruleNames.GET("/delete/:id", ruleNameHandlers.DeleteHandler())
		}
	}
}
