package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/controllers"
)

func SetupActionItemRoutes(protected *gin.RouterGroup, actionItemController *controllers.ActionItemController) {
	// Project-scoped
	protected.GET("/projects/:id/action-items", actionItemController.ListActionItems)
	protected.POST("/projects/:id/action-items", actionItemController.CreateActionItem)

	// Item-scoped
	actionItems := protected.Group("/action-items")
	{
		actionItems.PUT("/:id", actionItemController.UpdateActionItem)
		actionItems.DELETE("/:id", actionItemController.DeleteActionItem)
	}
}
