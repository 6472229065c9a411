package app

import (
	"fmt"
	"time"

	"cncquote/internal/config"
	"cncquote/internal/geometry"
	"cncquote/internal/handlers"
	"cncquote/internal/logger"
	"cncquote/internal/middleware"
	"cncquote/internal/routes"
	"cncquote/internal/services"
	"cncquote/internal/storage"
	"cncquote/internal/validator"

	"github.com/gin-gonic/gin"
)

// Run loads configuration and serves until the process is stopped.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	kernel := geometry.NewExecKernel(
		cfg.Kernel.Command,
		cfg.Kernel.Args,
		time.Duration(cfg.Kernel.TimeoutSeconds)*time.Second,
	)

	ginRouter, err := SetupRouter(cfg, kernel)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("CNC quoting engine starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine; exported so tests can run the real
// stack against a fake kernel.
func SetupRouter(cfg *config.Config, kernel geometry.Kernel) (*gin.Engine, error) {
	scratch, err := storage.NewLocalScratch(cfg.Upload.TempDir)
	if err != nil {
		return nil, err
	}
	logger.Info("Scratch storage initialized", "root", scratch.Root())

	extractor := geometry.NewExtractor(kernel)

	uploadService := services.NewUploadService(scratch, extractor, cfg.Upload.MaxSize)
	quoteService := services.NewQuoteService()

	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		HealthHandler: handlers.NewHealthHandler(),
		UploadHandler: handlers.NewUploadHandler(baseHandler, uploadService),
		QuoteHandler:  handlers.NewQuoteHandler(baseHandler, quoteService),
	}

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, nil
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
