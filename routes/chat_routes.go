package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/controllers"
)

func SetupChatRoutes(protected *gin.RouterGroup, chatController *controllers.ChatController) {
	protected.POST("/projects/:id/chat", chatController.Ask)
	protected.GET("/chat/sessions/:sessionId", chatController.GetHistory)
}
