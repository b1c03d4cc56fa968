package app

import (
	"gruenderai_backend/docs"

	"gruenderai_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", c.health.Root)
	router.GET("/health", c.health.HealthCheck)

	assessment := router.Group("/api/assessment")
	{
		assessment.POST("/start", c.assessment.StartAssessment)
		assessment.POST("/answer", c.assessment.SubmitAnswer)
		assessment.POST("/results", c.assessment.GetResults)
		assessment.GET("/session/:sessionId", c.assessment.GetSessionInfo)
	}
}
