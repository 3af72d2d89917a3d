package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/llm"
	"github.com/chrono-board/api-go/models"
	"github.com/chrono-board/api-go/utils"
	"gorm.io/gorm"
)

type EventController struct {
	DB  *gorm.DB
	LLM llm.Client
}

func NewEventController(db *gorm.DB, llmClient llm.Client) *EventController {
	return &EventController{DB: db, LLM: llmClient}
}

func (ec *EventController) ListEvents(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(ec.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var events []models.Event
	err := ec.DB.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: events})
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(ec.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var input struct {
		EventName        string `json:"event_name" binding:"required"`
		EventDescription string `json:"event_description"`
		EventDate        string `json:"event_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	event := models.Event{
		ProjectID:        projectID,
		EventName:        input.EventName,
		EventDescription: input.EventDescription,
		CreatedBy:        user.UserID,
	}
	if input.EventDate != "" {
		if parsed, err := time.Parse("2006-01-02", input.EventDate); err == nil {
			event.EventDate = &parsed
		}
	}

	if err := ec.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create event", "success": false})
		return
	}

	logActivity(ec.DB, projectID, user.UserID, models.ActionCreated, models.ResourceEvent, event.EventName, nil)
	go ingestRagContext(ec.DB, ec.LLM, projectID, "event", event.ID,
		fmt.Sprintf("Event %q: %s", event.EventName, event.EventDescription))

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: event, Message: "Event created successfully"})
}
