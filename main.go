package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
	"golang.org/x/sync/errgroup"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "transactionapi/docs"
	"transactionapi/internal/config"
	"transactionapi/internal/logger"
	"transactionapi/internal/service"
	"transactionapi/internal/source"
)

const (
	apiVersion      = "1.0.0"
	shutdownTimeout = 30 * time.Second
)

var (
	appConfig *config.Config
	appLogger zerolog.Logger
	txService *service.Service
	startedAt = time.Now()
)

// @title Transaction API
// @version 1.0.0
// @description Retrieve transactions, count them page by page and compute sums and breakdowns by type.
// @BasePath /
func main() {
	// Optional .env for local runs
	_ = godotenv.Load()

	appConfig = config.Load()
	appLogger = logger.New(appConfig.LogLevel, appConfig.IsDevelopment())

	if err := appConfig.Validate(); err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid configuration")
	}

	if !appConfig.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	txService = newService(appConfig, appLogger)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info().
			Str("port", appConfig.Port).
			Str("environment", appConfig.Environment).
			Str("source", string(appConfig.SourceMode())).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Fatal().Err(err).Msg("Server stopped with error")
	}
	appLogger.Info().Msg("Server stopped")
}

// newService wires the data source selector and its upstream fetcher
func newService(cfg *config.Config, log zerolog.Logger) *service.Service {
	fetcher := source.NewHTTPFetcher(source.HTTPFetcherConfig{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.RemoteTimeout,
		Logger:  logger.ForComponent(log, "fetcher"),
	})

	selector := source.NewSelector(source.Options{
		Mode:      cfg.SourceMode(),
		LocalPath: cfg.LocalDataPath,
		RemoteURL: cfg.RemoteTransactionsURL,
		Fetcher:   fetcher,
		Logger:    logger.ForComponent(log, "source"),
	})

	return service.New(selector, logger.ForComponent(log, "service"))
}

// newRouter builds the gin engine with middleware and every route
func newRouter() *gin.Engine {
	r := gin.New()

	r.Use(requestID())
	r.Use(logger.Middleware(appLogger))
	r.Use(recovery())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
	}))

	// Routes
	r.GET("/", getWelcome)
	r.GET("/health", getHealth)
	r.GET("/api-docs.json", getAPIDocsJSON)
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/transactions", getTransactions)
		api.GET("/transactions/all", getTransactions)
		api.GET("/transactions/count", getTransactionCount)
		api.GET("/transactions/sum", getTransactionSum)
		api.GET("/transactions/mock", getMockTransactions)
		api.GET("/transactions/stats", getTransactionStats)
	}

	r.NoRoute(notFound)

	return r
}

// @Summary API information
// @Description Get the API version and its main endpoints
// @Tags system
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router / [get]
func getWelcome(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Message: "Welcome to the Transaction API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"health": "/health",
			"api":    "/api",
			"docs":   "/api-docs",
		},
	})
}

// @Summary Health check
// @Description Get liveness, uptime in seconds and memory usage
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func getHealth(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(startedAt).Seconds(),
		Memory: MemoryStats{
			Alloc:      mem.Alloc,
			TotalAlloc: mem.TotalAlloc,
			Sys:        mem.Sys,
			HeapInUse:  mem.HeapInuse,
			NumGC:      mem.NumGC,
		},
		Source: string(appConfig.SourceMode()),
	})
}

// getAPIDocsJSON serves the raw OpenAPI document
func getAPIDocsJSON(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
