package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/controllers"
	"github.com/chrono-board/api-go/llm"
	"github.com/chrono-board/api-go/middleware"
	"github.com/chrono-board/api-go/realtime"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, llmClient llm.Client) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	projectController := controllers.NewProjectController(db)
	documentController := controllers.NewDocumentController(db, llmClient)
	eventController := controllers.NewEventController(db, llmClient)
	actionItemController := controllers.NewActionItemController(db, llmClient)
	timelineController := controllers.NewTimelineController(db, hub)
	chatController := controllers.NewChatController(db, llmClient)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)

		// Setup other routes within the protected group
		SetupProjectRoutes(protected, projectController)
		SetupDocumentRoutes(protected, documentController)
		SetupEventRoutes(protected, eventController)
		SetupActionItemRoutes(protected, actionItemController)
		SetupTimelineRoutes(protected, timelineController)
		SetupChatRoutes(protected, chatController)
	}
}
