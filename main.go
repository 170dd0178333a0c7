package main

import (
	"log"

	"failfund/config"
	"failfund/controllers"
	"failfund/routes"
	"failfund/services/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file, falling back to process environment: %v", err)
	}

	router, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	controllers.SetLogger(logger.NewDefaultLogger(logger.InfoLevel))
	routes.SetupRoutes(router)

	port := config.GetEnvDefault("PORT", "5000")

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
