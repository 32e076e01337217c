package main

import (
	"log"

	"github.com/joho/godotenv"

	"waypoint/adapters/tabular"
	"waypoint/internal"
	"waypoint/internal/config"
	"waypoint/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	reader := tabular.NewDataReader()

	server := ui.NewServer(appConfig, logger, reader)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
