package app

import (
	"hospital_survey_backend/docs"
	"hospital_survey_backend/internal/config"
	"hospital_survey_backend/internal/middleware"
	"hospital_survey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Rotas públicas (tablet do paciente)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
		public.GET("/questions", c.survey.GetQuestions)
		public.POST("/submit-survey", c.survey.SubmitSurvey)
	}

	// Rotas do painel administrativo (diretoria)
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/profile", c.auth.GetProfile)
		admin.GET("/dashboard-data", c.dashboard.GetDashboardData)
		admin.GET("/surveys/:id", c.survey.GetSurveyDetail)
		admin.GET("/export-csv", c.export.ExportCSV)
		admin.GET("/export-json", c.export.ExportJSON)
	}
}
