package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/chrono-board/api-go/config"
	"github.com/chrono-board/api-go/llm"
	"github.com/chrono-board/api-go/models"
	"github.com/chrono-board/api-go/utils"
	"gorm.io/gorm"
)

const maxDocumentSize = 25 * 1024 * 1024 // 25MB

type DocumentController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
	LLM      llm.Client
}

type DocumentPresignRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type DocumentPresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewDocumentController(db *gorm.DB, llmClient llm.Client) *DocumentController {
	r2Config := config.GetR2Config()

	// Create R2 client
	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &DocumentController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
		LLM:      llmClient,
	}
}

func (dc *DocumentController) ListDocuments(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(dc.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var docs []models.Document
	err := dc.DB.Where("project_id = ?", projectID).
		Order("uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching documents"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: docs})
}

func (dc *DocumentController) GetPresignedURL(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(dc.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var req DocumentPresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FileSize > maxDocumentSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := dc.generateFileKey(projectID, req.FileName)

	presignedURL, err := dc.createPresignedURL(key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: DocumentPresignResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", dc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600, // 1 hour
		},
		Message: "Presigned URL generated successfully",
	})
}

// CreateDocument finalizes an upload (key from the presign step) or stores a
// link document when url is given instead.
func (dc *DocumentController) CreateDocument(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(dc.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	var input struct {
		Filename string `json:"filename" binding:"required"`
		Key      string `json:"key"`
		URL      string `json:"url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if input.Key == "" && input.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either key or url is required", "success": false})
		return
	}

	doc := models.Document{
		ProjectID:  projectID,
		Filename:   input.Filename,
		UploadedBy: user.UserID,
	}
	resourceType := models.ResourceDocument

	if input.URL != "" {
		doc.DocType = models.DocTypeURL
		doc.RawText = &input.URL
		resourceType = models.ResourceURL
	} else {
		exists, err := dc.verifyFileExists(c.Request.Context(), input.Key)
		if err != nil || !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found in storage", "success": false})
			return
		}
		doc.DocType = utils.DocTypeFromFilename(input.Filename)
		doc.StoragePath = input.Key
		doc.DownloadPath = fmt.Sprintf("%s/%s", dc.R2Config.PublicURL, input.Key)
	}

	if err := dc.DB.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save document", "success": false})
		return
	}

	logActivity(dc.DB, projectID, user.UserID, models.ActionUploaded, resourceType, doc.Filename, nil)
	go ingestRagContext(dc.DB, dc.LLM, projectID, "document", doc.ID,
		fmt.Sprintf("Document %q (%s) was uploaded", doc.Filename, doc.DocType))

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: doc, Message: "Document saved successfully"})
}

func (dc *DocumentController) RenameDocument(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	docID := c.Param("id")

	var input struct {
		NewName string `json:"new_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var doc models.Document
	if err := dc.DB.First(&doc, "id = ?", docID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found", "success": false})
		return
	}

	if _, err := requireMembership(dc.DB, doc.ProjectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	oldName := doc.Filename
	doc.Filename = input.NewName
	if err := dc.DB.Save(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not rename document", "success": false})
		return
	}

	logActivity(dc.DB, doc.ProjectID, user.UserID, models.ActionRenamed, resourceTypeForDoc(doc), doc.Filename,
		models.JSONMap{"old_name": oldName, "new_name": input.NewName})

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: doc, Message: "Document renamed successfully"})
}

func (dc *DocumentController) DeleteDocument(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	docID := c.Param("id")

	var doc models.Document
	if err := dc.DB.First(&doc, "id = ?", docID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found", "success": false})
		return
	}

	if _, err := requireMembership(dc.DB, doc.ProjectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	// Remove the stored object first; a leftover row is worse than a
	// leftover blob.
	if doc.StoragePath != "" {
		if err := dc.deleteFile(c.Request.Context(), doc.StoragePath); err != nil {
			log.Printf("Failed to delete stored object %s: %v", doc.StoragePath, err)
		}
	}

	if err := dc.DB.Delete(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete document", "success": false})
		return
	}

	logActivity(dc.DB, doc.ProjectID, user.UserID, models.ActionDeleted, resourceTypeForDoc(doc), doc.Filename, nil)

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Document deleted successfully"})
}

func resourceTypeForDoc(doc models.Document) string {
	if doc.DocType == models.DocTypeURL {
		return models.ResourceURL
	}
	return models.ResourceDocument
}

// Helper functions
func (dc *DocumentController) generateFileKey(projectID, fileName string) string {
	ext := filepath.Ext(fileName)
	id := uuid.New().String()
	timestamp := time.Now().Unix()

	return fmt.Sprintf("documents/%s/%d_%s%s", projectID, timestamp, id, ext)
}

func (dc *DocumentController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(dc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(dc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour // 1 hour expiry
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (dc *DocumentController) verifyFileExists(ctx context.Context, key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(dc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := dc.R2Client.HeadObject(ctx, input)
	if err != nil {
		return false, nil
	}

	return true, nil
}

func (dc *DocumentController) deleteFile(ctx context.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(dc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := dc.R2Client.DeleteObject(ctx, input)
	return err
}
