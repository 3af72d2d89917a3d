package config

import (
	"log"
	"os"

	"github.com/chrono-board/api-go/llm"
)

// NewLLMClient builds the OpenAI-backed client from the environment. Returns
// nil when OPENAI_API_KEY is unset; the chat endpoint reports the feature as
// unavailable in that case.
func NewLLMClient() llm.Client {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, AI chat disabled")
		return nil
	}

	client, err := llm.New(llm.Config{
		APIKey:         apiKey,
		BaseURL:        os.Getenv("OPENAI_BASE_URL"),
		ChatModel:      os.Getenv("OPENAI_CHAT_MODEL"),
		EmbeddingModel: os.Getenv("OPENAI_EMBEDDING_MODEL"),
	})
	if err != nil {
		log.Printf("Failed to initialize LLM client: %v", err)
		return nil
	}
	return client
}
