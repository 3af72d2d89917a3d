package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/controllers"
)

func SetupDocumentRoutes(protected *gin.RouterGroup, documentController *controllers.DocumentController) {
	// Project-scoped: list, presign and register uploads
	protected.GET("/projects/:id/documents", documentController.ListDocuments)
	protected.POST("/projects/:id/documents/presigned-url", documentController.GetPresignedURL)
	protected.POST("/projects/:id/documents", documentController.CreateDocument)

	// Document-scoped: rename and delete
	documents := protected.Group("/documents")
	{
		documents.PUT("/:id", documentController.RenameDocument)
		documents.DELETE("/:id", documentController.DeleteDocument)
	}
}
