// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/iscsys/backend-go/internal/api/handlers"
	"github.com/iscsys/backend-go/internal/api/middleware"
	"github.com/iscsys/backend-go/internal/service"
)

func NewRouter(reportService *service.ReportService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if reportService != nil {
		reportHandler := handlers.NewReportHandler(reportService)
		reportGroup := apiGroup.Group("/reports")
		{
			reportGroup.GET("/overview", reportHandler.GetOverview)
			reportGroup.GET("/truth_table", reportHandler.GetTruthTable)
			reportGroup.GET("/wastage", reportHandler.GetWastageReport)
			reportGroup.GET("/restock_plan", reportHandler.GetRestockPlan)
			reportGroup.GET("/triage", reportHandler.GetLowStockTriage)
			reportGroup.GET("/movements", reportHandler.GetMovements)
			reportGroup.GET("/usage_rates", reportHandler.GetUsageRates)
		}

		inventoryHandler := handlers.NewInventoryHandler(reportService)
		inventoryGroup := apiGroup.Group("/inventory")
		{
			inventoryGroup.GET("", inventoryHandler.GetItems)
			inventoryGroup.GET("/:id", inventoryHandler.GetItem)
			inventoryGroup.GET("/:id/activity", inventoryHandler.GetItemActivity)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
