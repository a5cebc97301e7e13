package main

import (
	"fmt"
	"log"
	"os"

	"cian-agenda-backend/config"
	"cian-agenda-backend/routes"
	"cian-agenda-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if err := config.MigrateSchema(config.DB); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := config.SeedSampleData(config.DB); err != nil {
			log.Fatalf("Failed to seed sample data: %v", err)
		}
	}
}

func main() {

	if os.Getenv("REMINDERS_ENABLED") == "true" {
		services.NewReminderService(config.DB).StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
