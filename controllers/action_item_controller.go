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

type ActionItemController struct {
	DB  *gorm.DB
	LLM llm.Client
}

func NewActionItemController(db *gorm.DB, llmClient llm.Client) *ActionItemController {
	return &ActionItemController{DB: db, LLM: llmClient}
}

func (aic *ActionItemController) ListActionItems(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(aic.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var items []models.ActionItem
	err := aic.DB.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching action items"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: items})
}

func (aic *ActionItemController) CreateActionItem(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(aic.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var input struct {
		ActionName  string `json:"action_name" binding:"required"`
		Description string `json:"description"`
		OwnerName   string `json:"owner_name"`
		Deadline    string `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	item := models.ActionItem{
		ProjectID:  projectID,
		ActionName: input.ActionName,
		Status:     models.ActionItemOpen,
	}
	if input.Description != "" {
		item.Description = &input.Description
	}
	if input.OwnerName != "" {
		item.OwnerName = &input.OwnerName
	}
	if input.Deadline != "" {
		if parsed, err := time.Parse("2006-01-02", input.Deadline); err == nil {
			item.Deadline = &parsed
		}
	}

	if err := aic.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create action item", "success": false})
		return
	}

	logActivity(aic.DB, projectID, user.UserID, models.ActionCreated, models.ResourceActionItem, item.ActionName, nil)
	go ingestRagContext(aic.DB, aic.LLM, projectID, "action_item", item.ID,
		fmt.Sprintf("Action item %q (status: %s)", item.ActionName, item.Status))

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: item, Message: "Action item created successfully"})
}

func (aic *ActionItemController) UpdateActionItem(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	itemID := c.Param("id")

	var item models.ActionItem
	if err := aic.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action item not found", "success": false})
		return
	}

	if _, err := requireMembership(aic.DB, item.ProjectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var input struct {
		ActionName  *string `json:"action_name"`
		Description *string `json:"description"`
		Status      *string `json:"status" binding:"omitempty,oneof=open in_progress done"`
		OwnerName   *string `json:"owner_name"`
		Deadline    *string `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	completed := false
	if input.ActionName != nil {
		item.ActionName = *input.ActionName
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Status != nil {
		completed = *input.Status == models.ActionItemDone && item.Status != models.ActionItemDone
		item.Status = *input.Status
	}
	if input.OwnerName != nil {
		item.OwnerName = input.OwnerName
	}
	if input.Deadline != nil {
		if parsed, err := time.Parse("2006-01-02", *input.Deadline); err == nil {
			item.Deadline = &parsed
		}
	}

	if err := aic.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update action item", "success": false})
		return
	}

	// A transition into "done" reads as completion on the timeline, any
	// other edit as a plain update.
	action := models.ActionUpdated
	if completed {
		action = models.ActionCompleted
	}
	logActivity(aic.DB, item.ProjectID, user.UserID, action, models.ResourceActionItem, item.ActionName, nil)
	go ingestRagContext(aic.DB, aic.LLM, item.ProjectID, "action_item", item.ID,
		fmt.Sprintf("Action item %q (status: %s)", item.ActionName, item.Status))

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: item, Message: "Action item updated successfully"})
}

func (aic *ActionItemController) DeleteActionItem(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	itemID := c.Param("id")

	var item models.ActionItem
	if err := aic.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action item not found", "success": false})
		return
	}

	if _, err := requireMembership(aic.DB, item.ProjectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	if err := aic.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete action item", "success": false})
		return
	}

	logActivity(aic.DB, item.ProjectID, user.UserID, models.ActionDeleted, models.ResourceActionItem, item.ActionName, nil)

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Action item deleted successfully"})
}
