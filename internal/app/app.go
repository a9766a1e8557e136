package app

import (
	"fmt"

	"ruandri_backend/database"
	"ruandri_backend/internal/config"
	"ruandri_backend/internal/email"
	"ruandri_backend/internal/handlers"
	"ruandri_backend/internal/logger"
	"ruandri_backend/internal/middleware"
	"ruandri_backend/internal/repositories"
	"ruandri_backend/internal/routes"
	"ruandri_backend/internal/services"
	"ruandri_backend/internal/services/razorpay"
	"ruandri_backend/internal/validator"
	"ruandri_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; real deployments inject secrets directly.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.Debug = cfg.Server.Env != "production"

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires dependencies and returns the configured *gin.Engine.
// Everything is created once here and reused across requests; the only
// hidden global left is the logger.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	creds, err := cfg.RazorpaySecrets()
	if err != nil {
		return nil, err
	}
	gateway := razorpay.NewRazorpayService(creds.KeyID, creds.KeySecret, creds.WebhookSecret)
	logger.Info("Razorpay client initialized", "mode", cfg.Razorpay.Mode)

	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		smtp, err := email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email provider: %w", err)
		}
		mailer = smtp
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP not configured - payment confirmation emails disabled")
	}

	serviceContainer := initializeServices(cfg, gateway, mailer)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, nil
}

func initializeServices(cfg *config.Config, gateway services.PaymentGateway, mailer email.Provider) *services.ServiceContainer {
	bookingRepo := repositories.NewBookingRepository()

	paymentService := services.NewPaymentService(bookingRepo, gateway, cfg.Razorpay.Currency, mailer)

	return &services.ServiceContainer{
		PaymentService: paymentService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		PaymentHandler: handlers.NewPaymentHandler(baseHandler, container.PaymentService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// Non-POST access to the payment endpoints must answer 405, not 404.
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
