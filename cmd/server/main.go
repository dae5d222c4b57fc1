package main

import (
	"log"
	"os"
	"strings"

	"mentorlink/internal/db"
	"mentorlink/internal/middleware"
	"mentorlink/internal/router"
	"mentorlink/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	// Initialize Database
	db.Init()

	// Start the async ranking worker and its nightly refresh
	services.GetRankingService().StartScheduledScoreUpdate()

	// Initialize Gin
	r := gin.Default()

	// CORS for the SPA origin(s)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	r.Use(cors.New(corsConfig))

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("mentorlink_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("MentorLink server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
