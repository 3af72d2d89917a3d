package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/controllers"
)

func SetupEventRoutes(protected *gin.RouterGroup, eventController *controllers.EventController) {
	protected.GET("/projects/:id/events", eventController.ListEvents)
	protected.POST("/projects/:id/events", eventController.CreateEvent)
}
