package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/controllers"
)

func SetupProjectRoutes(protected *gin.RouterGroup, projectController *controllers.ProjectController) {
	projects := protected.Group("/projects")
	{
		projects.GET("", projectController.ListProjects)
		projects.POST("", projectController.CreateProject)
		projects.GET("/:id", projectController.GetProject)
		projects.PUT("/:id", projectController.UpdateProject)
		projects.DELETE("/:id", projectController.DeleteProject)
		projects.POST("/:id/members", projectController.AddMember)
	}
}
