package main

import (
	"fmt"
	"log"

	"techinvoice/internal/config"
	"techinvoice/internal/handler"
	"techinvoice/internal/issuesync/github"
	"techinvoice/internal/repository/postgres"
	"techinvoice/internal/router"
	"techinvoice/internal/service"
	"techinvoice/internal/xlsxexport"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	taskRepo := postgres.NewTaskRepo(db)

	// Initialize the issue tracker client
	issueSource := github.NewClient(&cfg.GitHub)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	clientSvc := service.NewClientService(clientRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, cfg.Billing)
	dashboardSvc := service.NewDashboardService(invoiceRepo)
	taskSvc := service.NewTaskService(taskRepo, issueSource)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	clientH := handler.NewClientHandler(clientSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, xlsxexport.NewWriter(cfg.Company))
	catalogH := handler.NewCatalogHandler()
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	taskH := handler.NewTaskHandler(taskSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS, authSvc, authH, clientH, invoiceH, catalogH, dashboardH, taskH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
