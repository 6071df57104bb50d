package handlers

import (
	"github.com/automationsflow/afbooks/cmd/docs"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// actorHeader carries the acting partner's ID for audit attribution. The API
// is deployed behind the partners' private network, so the header is trusted
// as-is.
const actorHeader = "X-Actor-ID"

func actorID(c *gin.Context) string {
	return c.GetHeader(actorHeader)
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check route
	r.GET("/health", getHome)

	setupAPIV1Routes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerPartnerRoutes(v1, services.Partner)
	registerAccountRoutes(v1, services.Account)
	registerCategoryRoutes(v1, services.Category)
	registerClientRoutes(v1, services.Client)
	registerExpenseRoutes(v1, services.Expense)
	registerInvoiceRoutes(v1, services.Invoice)
	registerWithdrawalRoutes(v1, services.Withdrawal)
	registerRecurringExpenseRoutes(v1, services.RecurringExpense)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
