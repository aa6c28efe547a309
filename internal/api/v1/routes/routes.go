package routes

import (
	"github.com/gin-gonic/gin"

	"verbaflow/internal/api/v1/handlers"
	"verbaflow/internal/app/export"
	"verbaflow/internal/app/lifecycle"
)

// ServiceContainer holds everything the v1 handlers need
type ServiceContainer struct {
	Controller *lifecycle.Controller
	Exporter   *export.Exporter
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	previewBase := router.BasePath() + "/previews"

	sessionHandler := handlers.NewSessionHandler(container.Controller, previewBase)
	session := router.Group("/session")
	{
		session.GET("", sessionHandler.Get)
		session.POST("/media", sessionHandler.SelectMedia)
		session.PUT("/language", sessionHandler.SetLanguage)
		session.POST("/transcribe", sessionHandler.Transcribe)
		session.POST("/reset", sessionHandler.Reset)
		session.PUT("/text", sessionHandler.SaveText)
	}

	historyHandler := handlers.NewHistoryHandler(container.Controller, container.Exporter, previewBase)
	history := router.Group("/history")
	{
		history.GET("", historyHandler.List)
		history.GET("/export.xlsx", historyHandler.ExportXLSX)
		history.GET("/:id", historyHandler.Get)
		history.POST("/:id/open", historyHandler.Open)
		history.DELETE("/:id", historyHandler.Delete)
	}

	previewHandler := handlers.NewPreviewHandler(container.Controller.Intake().Previews())
	router.GET("/previews/:handle", previewHandler.Serve)

	exportHandler := handlers.NewExportHandler(container.Controller, container.Exporter)
	router.GET("/export", exportHandler.Export)

	languageHandler := handlers.NewLanguageHandler(container.Controller)
	router.GET("/languages", languageHandler.List)
}
