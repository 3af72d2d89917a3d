package controllers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/models"
	"github.com/chrono-board/api-go/realtime"
	"github.com/chrono-board/api-go/timeline"
	"github.com/chrono-board/api-go/utils"
	"gorm.io/gorm"
)

// watchedTables are the sources the timeline aggregates; a change to either
// invalidates the computed feed.
var watchedTables = []string{"activity_logs", "documents"}

type TimelineController struct {
	DB      *gorm.DB
	Service *timeline.Service
	Hub     *realtime.Hub
}

func NewTimelineController(db *gorm.DB, hub *realtime.Hub) *TimelineController {
	return &TimelineController{
		DB:      db,
		Service: timeline.NewService(timeline.NewGormStore(db)),
		Hub:     hub,
	}
}

// GetTimeline godoc
// @Summary Get the aggregated project timeline
// @Description Merges activity log entries and document uploads into one
// @Description deduplicated, chronologically ordered feed
// @Tags timeline
// @Produce json
// @Param id path string true "Project ID"
// @Param preview query boolean false "Return only the most recent items"
// @Success 200 {object} StandardResponse
// @Router /projects/{id}/timeline [get]
func (tc *TimelineController) GetTimeline(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(tc.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	opts := timeline.Options{Preview: c.Query("preview") == "true"}
	items, err := tc.Service.Timeline(c.Request.Context(), projectID, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing timeline"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: items})
}

// GetActivity returns the raw activity log, newest first.
func (tc *TimelineController) GetActivity(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(tc.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var logs []models.ActivityLog
	err := tc.DB.Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(50).
		Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching activity"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: logs})
}

// WatchTimeline streams the recomputed timeline over server-sent events
// whenever the underlying tables change. Every notification triggers a full
// refetch and recompute, so bursts and reordered notifications only cost
// redundant work, never a wrong feed.
func (tc *TimelineController) WatchTimeline(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(tc.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	opts := timeline.Options{Preview: c.Query("preview") == "true"}

	notifications, cancel := tc.Hub.Subscribe(watchedTables, projectID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Initial snapshot so the client has a feed before the first change.
	if items, err := tc.Service.Timeline(c.Request.Context(), projectID, opts); err == nil {
		c.SSEvent("timeline", items)
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case _, ok := <-notifications:
			if !ok {
				return false
			}
			items, err := tc.Service.Timeline(c.Request.Context(), projectID, opts)
			if err != nil {
				// Keep the last delivered list on the client; retry on
				// the next notification.
				log.Printf("Timeline recompute failed for project %s: %v", projectID, err)
				return true
			}
			c.SSEvent("timeline", items)
			return true
		}
	})
}
