package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/careerhive/jobboard/internal/auth"
	"github.com/careerhive/jobboard/internal/config"
	"github.com/careerhive/jobboard/internal/database"
	"github.com/careerhive/jobboard/internal/handlers"
	"github.com/careerhive/jobboard/internal/mailer"
	"github.com/careerhive/jobboard/internal/repository"
	"github.com/careerhive/jobboard/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	repo := repository.NewGormJobRepository(db)

	// 3. Initialize Core Services
	jobService := services.NewJobService(repo)

	// 4. Initialize the Gmail Mailer
	// The server still boots without it; applications will fail with a
	// dispatch error until mail is configured.
	ctx := context.Background()
	var sender mailer.Sender
	gmailService, err := auth.NewGmailService(ctx, cfg.GmailCredentials, cfg.GmailToken)
	if err != nil {
		log.Printf("⚠️  Gmail mailer disabled: %v", err)
	} else {
		sender = mailer.NewGmailSender(gmailService)
		log.Println("✅ Gmail mailer connected successfully.")
	}
	applicationService := services.NewApplicationService(repo, sender, cfg.MailFrom)

	// 5. Initialize the LLM extraction service (optional)
	var llmService *services.LLMService
	if cfg.GeminiAPIKey != "" {
		llmService, err = services.NewLLMService(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("⚠️  Job extraction disabled: %v", err)
		}
	}

	// 6. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService, applicationService, llmService)

	// 7. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 8. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		jobs := api.Group("/jobs")
		{
			jobs.POST("", auth.RequireUser(), jobHandler.CreateJob)
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("/apply", jobHandler.ApplyToJob)
			jobs.POST("/extract", auth.RequireUser(), jobHandler.ExtractJob)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.DELETE("/:id", auth.RequireUser(), jobHandler.DeleteJob)
		}
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
