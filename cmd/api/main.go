package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/suriya388/backoffice-api/internal/application/service"
	"github.com/suriya388/backoffice-api/internal/config"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/internal/infrastructure/database"
	"github.com/suriya388/backoffice-api/internal/infrastructure/repository"
	"github.com/suriya388/backoffice-api/internal/presentation/http/handler"
	"github.com/suriya388/backoffice-api/internal/presentation/http/routes"
	"github.com/suriya388/backoffice-api/pkg/assets"
	"github.com/suriya388/backoffice-api/pkg/layout"
	"github.com/suriya388/backoffice-api/pkg/pdfrender"
	"github.com/suriya388/backoffice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial admin login
	if err := database.SeedAdmin(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	// Initialize PDF pipeline
	assetStore := assets.Load(assets.Config{
		FontRegular: cfg.Assets.FontRegular,
		FontBold:    cfg.Assets.FontBold,
		Logo:        cfg.Assets.Logo,
	})
	engine := layout.NewEngine(layout.Company{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
	})
	renderer := pdfrender.New(assetStore)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	recordService := service.NewRecordService(recordRepo)
	voucherService := service.NewVoucherService(recordService, engine, renderer)
	summaryService := service.NewSummaryService(recordRepo)
	calculatorService := service.NewCalculatorService()

	// Initialize handlers, one record handler per document kind
	recordHandlers := make(map[enum.RecordKind]*handler.RecordHandler, len(enum.Kinds()))
	for _, kind := range enum.Kinds() {
		recordHandlers[kind] = handler.NewRecordHandler(kind, recordService, voucherService)
	}

	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Records:    recordHandlers,
		Calculator: handler.NewCalculatorHandler(calculatorService),
		Report:     handler.NewReportHandler(summaryService),
		Export:     handler.NewExportHandler(voucherService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
