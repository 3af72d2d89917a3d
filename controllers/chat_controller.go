package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/chrono-board/api-go/llm"
	"github.com/chrono-board/api-go/models"
	"github.com/chrono-board/api-go/utils"
	"gorm.io/gorm"
)

const (
	ragCandidateLimit = 50
	ragTopK           = 5
)

const chatSystemPrompt = "You are ChronoBoard AI, an assistant for a project collaboration tool. " +
	"Answer the user's question using only the provided project context. " +
	"If the context does not contain the answer, say so."

type ChatController struct {
	DB  *gorm.DB
	LLM llm.Client
}

type ChatSource struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

func NewChatController(db *gorm.DB, llmClient llm.Client) *ChatController {
	return &ChatController{DB: db, LLM: llmClient}
}

// Ask answers a question about the project with retrieval-augmented
// generation: rank stored context chunks against the question embedding,
// then let the model answer over the top matches. Any failure is terminal
// for this request only; the timeline and CRUD surfaces are unaffected.
func (cc *ChatController) Ask(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	projectID := c.Param("id")

	if _, err := requireMembership(cc.DB, projectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	if cc.LLM == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI chat is not configured", "success": false})
		return
	}

	var input struct {
		Message   string `json:"message" binding:"required"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	session, err := cc.resolveSession(projectID, user.UserID, input.SessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not open chat session", "success": false})
		return
	}

	sources, err := cc.retrieveContext(c, projectID, input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving project context", "success": false})
		return
	}

	contextParts := make([]string, 0, len(sources))
	for _, s := range sources {
		contextParts = append(contextParts, s.Content)
	}
	userPrompt := fmt.Sprintf("Project context:\n%s\n\nQuestion: %s",
		strings.Join(contextParts, "\n\n"), input.Message)

	answer, err := cc.LLM.Chat(c.Request.Context(), chatSystemPrompt, userPrompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI request failed", "success": false})
		return
	}

	cc.DB.Create(&models.ChatMessage{SessionID: session.ID, Role: "user", Content: input.Message})
	cc.DB.Create(&models.ChatMessage{SessionID: session.ID, Role: "assistant", Content: answer})

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"response":   answer,
		"sources":    sources,
		"session_id": session.ID,
	})
}

// GetHistory returns the messages of one chat session.
func (cc *ChatController) GetHistory(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	sessionID := c.Param("sessionId")

	var session models.ChatSession
	if err := cc.DB.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&session, "id = ?", sessionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found", "success": false})
		return
	}

	if _, err := requireMembership(cc.DB, session.ProjectID, user.UserID); err != nil {
		respondMembershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: session})
}

func (cc *ChatController) resolveSession(projectID, userID, sessionID string) (*models.ChatSession, error) {
	if sessionID != "" {
		var session models.ChatSession
		if err := cc.DB.First(&session, "id = ? AND project_id = ?", sessionID, projectID).Error; err == nil {
			return &session, nil
		}
	}

	session := models.ChatSession{ProjectID: projectID, UserID: userID}
	if err := cc.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// retrieveContext ranks stored context rows against the question embedding.
// When the embedding call fails the most recent rows stand in, so the chat
// degrades rather than breaking.
func (cc *ChatController) retrieveContext(c *gin.Context, projectID, question string) ([]ChatSource, error) {
	var rows []models.RagContext
	err := cc.DB.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(ragCandidateLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []ChatSource{}, nil
	}

	queryEmbedding, err := cc.LLM.Embed(c.Request.Context(), question)
	if err == nil {
		sort.SliceStable(rows, func(i, j int) bool {
			return llm.CosineSimilarity(rows[i].Embedding, queryEmbedding) >
				llm.CosineSimilarity(rows[j].Embedding, queryEmbedding)
		})
	}

	if len(rows) > ragTopK {
		rows = rows[:ragTopK]
	}

	sources := make([]ChatSource, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, ChatSource{
			Content: row.Content,
			Metadata: map[string]interface{}{
				"source_type": row.SourceType,
				"source_id":   row.SourceID,
				"created_at":  row.CreatedAt,
			},
		})
	}
	return sources, nil
}
