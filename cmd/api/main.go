package main

import (
	"github.com/gin-gonic/gin"
	"github.com/pawsuite/salon-api/internal/application/service"
	"github.com/pawsuite/salon-api/internal/config"
	"github.com/pawsuite/salon-api/internal/infrastructure/database"
	"github.com/pawsuite/salon-api/internal/infrastructure/repository"
	"github.com/pawsuite/salon-api/internal/presentation/http/handler"
	"github.com/pawsuite/salon-api/internal/presentation/http/routes"
	"github.com/pawsuite/salon-api/pkg/email"
	"github.com/pawsuite/salon-api/pkg/logger"
	"github.com/pawsuite/salon-api/pkg/oauth"
	"github.com/pawsuite/salon-api/pkg/payments"
	"github.com/pawsuite/salon-api/pkg/utils"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.App.Env, cfg.App.Env != "production")

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	petRepo := repository.NewPetRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.App.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.App.FrontendURL + "/auth/success",
		FrontendErrorURL:   cfg.App.FrontendURL + "/auth/error",
	})

	// Initialize Stripe payment service
	stripeService := payments.NewStripeService(cfg.Stripe.APIKey, cfg.Stripe.Currency)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	customerService := service.NewCustomerService(customerRepo, petRepo)
	catalogService := service.NewCatalogService(serviceRepo)
	staffService := service.NewStaffService(staffRepo, userRepo, roleRepo, passwordResetRepo, settingsRepo, emailService)
	appointmentService := service.NewAppointmentService(appointmentRepo, customerRepo, petRepo, serviceRepo, staffRepo)
	checkoutService := service.NewCheckoutService(transactionRepo, appointmentRepo, settingsRepo, stripeService)
	reportService := service.NewReportService(appointmentRepo, transactionRepo, serviceRepo, staffRepo, customerRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo, roleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Customer:    handler.NewCustomerHandler(customerService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Staff:       handler.NewStaffHandler(staffService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Checkout:    handler.NewCheckoutHandler(checkoutService),
		Report:      handler.NewReportHandler(reportService),
		Settings:    handler.NewSettingsHandler(settingsService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
