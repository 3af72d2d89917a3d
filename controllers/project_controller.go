package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/models"
	"github.com/chrono-board/api-go/utils"
	"gorm.io/gorm"
)

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

func (pc *ProjectController) ListProjects(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var projects []models.Project
	err := pc.DB.
		Joins("JOIN project_memberships ON project_memberships.project_id = projects.id").
		Where("project_memberships.user_id = ?", user.UserID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching projects"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: projects})
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   user.UserID,
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return tx.Create(&models.ProjectMembership{
			ProjectID: project.ID,
			UserID:    user.UserID,
			Role:      models.RoleOwner,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create project", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: project, Message: "Project created successfully"})
}

func (pc *ProjectController) GetProject(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(pc.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var project models.Project
	if err := pc.DB.Preload("Memberships.User").First(&project, "id = ?", projectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: project})
}

func (pc *ProjectController) UpdateProject(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	membership, err := requireMembership(pc.DB, projectID, user.UserID)
	if err != nil {
		respondMembershipError(c, err)
		return
	}
	if membership.Role != models.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the project owner can update it", "success": false})
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var project models.Project
	if err := pc.DB.First(&project, "id = ?", projectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found", "success": false})
		return
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if err := pc.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update project", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: project, Message: "Project updated successfully"})
}

func (pc *ProjectController) DeleteProject(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	membership, err := requireMembership(pc.DB, projectID, user.UserID)
	if err != nil {
		respondMembershipError(c, err)
		return
	}
	if membership.Role != models.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the project owner can delete it", "success": false})
		return
	}

	if err := pc.DB.Delete(&models.Project{}, "id = ?", projectID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete project", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Project deleted successfully"})
}

// AddMember invites a registered user into the project by email.
func (pc *ProjectController) AddMember(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	membership, err := requireMembership(pc.DB, projectID, user.UserID)
	if err != nil {
		respondMembershipError(c, err)
		return
	}
	if membership.Role != models.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the project owner can add members", "success": false})
		return
	}

	var input struct {
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role" binding:"omitempty,oneof=owner member"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if input.Role == "" {
		input.Role = models.RoleMember
	}

	var invitee models.User
	if err := pc.DB.Where("email = ?", input.Email).First(&invitee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user with that email", "success": false})
		return
	}

	newMembership := models.ProjectMembership{
		ProjectID: projectID,
		UserID:    invitee.ID,
		Role:      input.Role,
	}
	if err := pc.DB.Create(&newMembership).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User is already a member", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: newMembership, Message: "Member added successfully"})
}

func respondMembershipError(c *gin.Context, err error) {
	if errors.Is(err, errNotMember) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied to this project", "success": false})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking project access", "success": false})
}
