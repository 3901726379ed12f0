package handlers

import (
	"github.com/gin-gonic/gin"

	"privacyassist/server/middleware"
)

// RegisterRoutes регистрирует маршруты API. Эндпоинты анализа накрыты
// общим лимитером частоты: анализ синхронный и дорогой на широких датасетах.
func RegisterRoutes(router *gin.Engine, handler *AnalysisHandler, rps float64, burst int) {
	router.GET("/health", handler.HandleHealth)

	api := router.Group("/api")
	{
		datasets := api.Group("/datasets")
		{
			datasets.POST("", handler.HandleUploadDataset)
			datasets.GET("/:id", handler.HandleDatasetSummary)
			datasets.DELETE("/:id", handler.HandleDeleteDataset)
		}

		analyze := api.Group("")
		analyze.Use(middleware.GinRateLimitMiddleware(rps, burst))
		{
			analyze.POST("/privacy/analyze", handler.HandleAnalyzePrivacy)
			analyze.POST("/quality/analyze", handler.HandleAnalyzeQuality)
		}
	}
}
