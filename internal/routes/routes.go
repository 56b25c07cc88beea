package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/auth"
	"invoice-dashboard-backend/internal/services/dashboard"
)

func RegisterRoutes(r *gin.Engine, store repository.Store, log zerolog.Logger) {
	dashboardService := dashboard.NewService(store, log)
	authorizer := auth.NewAuthorizer(store, log)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authorizer)

	api := r.Group("/api")

	// Health check
	api.GET("/health", dashboardHandler.Health)

	// Overview page
	overview := api.Group("/dashboard")
	overview.GET("/revenue", dashboardHandler.GetRevenue)
	overview.GET("/latest-invoices", dashboardHandler.GetLatestInvoices)
	overview.GET("/cards", dashboardHandler.GetCardData)

	// Invoice routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("", dashboardHandler.ListInvoices)
		invoices.GET("/pages", dashboardHandler.GetInvoicesPages)
		invoices.GET("/:id", dashboardHandler.GetInvoice)
	}

	// Customer routes
	customers := api.Group("/customers")
	{
		customers.GET("", dashboardHandler.ListCustomers)
		customers.GET("/table", dashboardHandler.GetCustomersTable)
	}

	api.POST("/auth/authorize", authHandler.Authorize)
}
