package router

import (
	"github.com/gin-gonic/gin"

	"techinvoice/internal/config"
	"techinvoice/internal/domain"
	"techinvoice/internal/handler"
	"techinvoice/internal/middleware"
	"techinvoice/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg config.CORSConfig,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	clientH *handler.ClientHandler,
	invoiceH *handler.InvoiceHandler,
	catalogH *handler.CatalogHandler,
	dashboardH *handler.DashboardHandler,
	taskH *handler.TaskHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Client registry
	clients := protected.Group("/clients")
	clients.POST("", clientH.Create)
	clients.GET("", clientH.List)
	clients.GET("/search", clientH.Search)
	clients.GET("/:id", clientH.Get)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.Get)
	invoices.PATCH("/:id/status", invoiceH.UpdateStatus)
	invoices.GET("/:id/export", invoiceH.Export)

	// Predefined service catalog for composing invoices
	protected.GET("/catalog", catalogH.List)

	// Reporting dashboard
	protected.GET("/dashboard", dashboardH.Summary)

	// Task list and issue sync
	tasks := protected.Group("/tasks")
	tasks.POST("", taskH.Create)
	tasks.GET("", taskH.List)
	tasks.PATCH("/:id", taskH.Update)
	tasks.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), taskH.Delete)
	tasks.POST("/sync", taskH.Sync)

	return r
}
