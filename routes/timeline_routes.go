package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/controllers"
)

func SetupTimelineRoutes(protected *gin.RouterGroup, timelineController *controllers.TimelineController) {
	protected.GET("/projects/:id/timeline", timelineController.GetTimeline)
	protected.GET("/projects/:id/timeline/watch", timelineController.WatchTimeline)
	protected.GET("/projects/:id/activity", timelineController.GetActivity)
}
