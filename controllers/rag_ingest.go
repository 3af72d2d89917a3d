package controllers

import (
	"context"
	"log"
	"time"

	"github.com/chrono-board/api-go/llm"
	"github.com/chrono-board/api-go/models"
	"gorm.io/gorm"
)

// ingestRagContext stores one retrievable knowledge chunk for the AI chat.
// Best effort: an embedding failure stores the row without a vector (it can
// still surface through recency fallback), and a store failure only logs.
// Run it in its own goroutine; it must never slow down the CRUD path.
func ingestRagContext(db *gorm.DB, client llm.Client, projectID, sourceType, sourceID, content string) {
	row := models.RagContext{
		ProjectID:  projectID,
		SourceType: sourceType,
		SourceID:   sourceID,
		Content:    content,
	}

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		embedding, err := client.Embed(ctx, content)
		if err != nil {
			log.Printf("Failed to embed %s context for project %s: %v", sourceType, projectID, err)
		} else {
			row.Embedding = embedding
		}
	}

	if err := db.Create(&row).Error; err != nil {
		log.Printf("Failed to store %s context for project %s: %v", sourceType, projectID, err)
	}
}
