package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"sketchtostitch-me/app"
	"sketchtostitch-me/db"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		// Use Overload to ensure .env values override system environment variables
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("Successfully loaded environment variables from .env")
		}
	}

	// Initialize application
	previewManager, err := app.Initialize()
	if err != nil {
		log.Fatal(err)
	}
	defer db.CloseDB()
	defer previewManager.Shutdown()

	// Start server
	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	// Remove leading colon if present
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}
	addr := "0.0.0.0:" + port
	log.Printf("Server starting on %s", addr)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
