package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/h4mmerjp/nikkeihyou/client"
	"github.com/h4mmerjp/nikkeihyou/config"
	"github.com/h4mmerjp/nikkeihyou/handler"
	"github.com/h4mmerjp/nikkeihyou/logging"
	"github.com/h4mmerjp/nikkeihyou/service"
	"github.com/h4mmerjp/nikkeihyou/utils"
)

func main() {
	// .env is only present in local development; in deployment the
	// environment is provided by the platform.
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	zlog.Logger = logging.Setup(cfg.LogFormat)

	// Initialize the persistence client
	notionClient := client.NewNotionClient(cfg.NotionToken, cfg.NotionDatabaseID)

	// Initialize the PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	reportService := service.NewReportService(pdfProcessor, notionClient, utils.ParseStrategy(cfg.ParseStrategy))

	// Initialize handler layer
	reportHandler := handler.NewReportHandler(reportService, cfg.MaxFileSize)
	verificationHandler := handler.NewVerificationHandler(reportService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	router.Use(corsMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Daily Report Extraction",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.POST("/parse_daily_report", reportHandler.ParseDailyReport)
		api.POST("/update_verification", verificationHandler.UpdateVerification)
	}

	// Start server
	zlog.Info().Str("port", cfg.ServerPort).Str("strategy", cfg.ParseStrategy).Msg("starting daily report service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		zlog.Fatal().Err(err).Msg("failed to start server")
	}
}

// corsMiddleware mirrors the headers the frontend expects.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}
