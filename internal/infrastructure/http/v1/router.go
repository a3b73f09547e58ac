// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/customer"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/product"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/documents/sale"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/documents/sales_return"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/registers/inventory"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/reports"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/cache"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/http/v1/handlers"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/http/v1/middleware"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/document_repo"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/register_repo"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/report_repo"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (also used for health checks)
	Pool *postgres.Pool

	// TxManager drives transactional workflows
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// BalanceCache serves customer balance reads
	BalanceCache cache.BalanceCache
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	customerRepo := catalog_repo.NewCustomerRepo(cfg.TxManager)
	saleRepo := document_repo.NewSaleRepo(cfg.TxManager)
	returnRepo := document_repo.NewReturnRepo(cfg.TxManager)
	inventoryRepo := register_repo.NewInventoryRepo(cfg.TxManager)
	reportRepo := report_repo.NewReportRepo(cfg.TxManager)
	rollupRepo := report_repo.NewRollupRepo(cfg.TxManager)

	// Services
	publisher := postgres.NewOutboxPublisher(cfg.TxManager)
	inventoryService := inventory.NewService(inventoryRepo)
	productService := product.NewService(productRepo, inventoryService, cfg.TxManager)
	customerService := customer.NewService(customerRepo, cfg.TxManager)
	saleService := sale.NewService(saleRepo, productService, customerService, inventoryService, publisher, cfg.TxManager)
	returnService := sales_return.NewService(returnRepo, productService, customerService, inventoryService, publisher, cfg.TxManager)
	reportService := reports.NewService(reportRepo)
	rollupService := rollup.NewService(rollupRepo, customerRepo)

	// Handlers
	baseHandler := handlers.NewBaseHandler()
	productHandler := handlers.NewProductHandler(baseHandler, productService)
	customerHandler := handlers.NewCustomerHandler(baseHandler, customerService, cfg.BalanceCache)
	saleHandler := handlers.NewSaleHandler(baseHandler, saleService)
	returnHandler := handlers.NewReturnHandler(baseHandler, returnService)
	inventoryHandler := handlers.NewInventoryHandler(baseHandler, inventoryService)
	reportsHandler := handlers.NewReportsHandler(baseHandler, reportService)
	rollupHandler := handlers.NewRollupHandler(baseHandler, rollupService, cfg.BalanceCache)

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		products := apiV1.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.GetByID)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		customers := apiV1.Group("/customers")
		{
			customers.POST("", customerHandler.Create)
			customers.GET("", customerHandler.List)
			customers.GET("/:id", customerHandler.GetByID)
			customers.GET("/:id/balance", customerHandler.GetBalance)
			customers.PUT("/:id", customerHandler.Update)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		sales := apiV1.Group("/sales")
		{
			sales.POST("", saleHandler.Create)
			sales.GET("", saleHandler.List)
			sales.GET("/:id", saleHandler.GetByID)
			sales.PUT("/:id", saleHandler.Update)
			sales.DELETE("/:id", saleHandler.Delete)
		}

		returns := apiV1.Group("/returns")
		{
			returns.POST("", returnHandler.Create)
			returns.GET("", returnHandler.List)
			returns.GET("/:id", returnHandler.GetByID)
			returns.PUT("/:id", returnHandler.Update)
			returns.DELETE("/:id", returnHandler.Delete)
		}

		apiV1.GET("/inventory/:productId", inventoryHandler.GetByProduct)

		reportsGroup := apiV1.Group("/reports")
		{
			reportsGroup.GET("/customer-balances", reportsHandler.CustomerBalances)
			reportsGroup.GET("/sales-summary", reportsHandler.SalesSummary)
			reportsGroup.GET("/stock-on-hand", reportsHandler.StockOnHand)
		}

		apiV1.POST("/rollup/recompute", rollupHandler.Recompute)
	}

	return router
}
