package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/chrono-board/api-go/config"
	"github.com/chrono-board/api-go/realtime"
	"github.com/chrono-board/api-go/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Initialize database
	db := config.InitDB()

	// AI chat client; nil when OPENAI_API_KEY is unset
	llmClient := config.NewLLMClient()

	// Realtime change feed: Postgres NOTIFY -> hub -> SSE watchers
	hub := realtime.NewHub()
	listener, err := realtime.NewListener(config.BuildDSN(), hub)
	if err != nil {
		log.Fatal("Failed to start realtime listener:", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Start(ctx)

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db, hub, llmClient)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
