package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suriya388/backoffice-api/internal/config"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/internal/presentation/http/handler"
	"github.com/suriya388/backoffice-api/internal/presentation/http/middleware"
	"github.com/suriya388/backoffice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Records    map[enum.RecordKind]*handler.RecordHandler
	Calculator *handler.CalculatorHandler
	Report     *handler.ReportHandler
	Export     *handler.ExportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// recordPaths maps each record kind onto its URL collection name.
var recordPaths = map[enum.RecordKind]string{
	enum.KindPurchaseBill:     "bills",
	enum.KindSellBill:         "sell-bills",
	enum.KindCuttingBill:      "cutting-bills",
	enum.KindPacking:          "packings",
	enum.KindContainerLoading: "container-loadings",
	enum.KindChemicalDip:      "chemical-dips",
	enum.KindPayroll:          "payrolls",
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerRecordRoutes(protected, h)

		protected.POST("/calculate/grade-cut", h.Calculator.GradeCut)

		reports := protected.Group("/reports")
		{
			reports.GET("/purchase-summary", h.Report.Summary)
			reports.GET("/purchases.xlsx", h.Report.PurchaseXLSX)
		}

		protected.POST("/export/pdf", h.Export.InvoicePDF)
	}

	return router
}

// registerRecordRoutes wires the identical CRUD + PDF surface for every
// record kind under its own collection path.
func registerRecordRoutes(rg *gin.RouterGroup, h *Handlers) {
	for kind, path := range recordPaths {
		rh, ok := h.Records[kind]
		if !ok {
			continue
		}
		group := rg.Group("/" + path)
		{
			group.GET("", rh.List)
			group.POST("", rh.Create)
			group.POST("/pdf", rh.AdHocPDF)
			group.GET("/:id", rh.Get)
			group.PUT("/:id", rh.Update)
			group.DELETE("/:id", rh.Delete)
			group.GET("/:id/pdf", rh.GetPDF)
		}
	}
}
