package db

import (
	"log"
	"os"
	"time"

	"mentorlink/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=mentorlink port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.MentorProfile{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Challenge{},
		&models.ChallengeEntry{},
		&models.Vote{},
		&models.PointLog{},
		&models.Notification{},
		&models.Bookmark{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedCategories()
	seedChallenges()
}

func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return
	}

	categories := []models.Category{
		{Name: "General", Description: "Introductions and anything community"},
		{Name: "Mentorship", Description: "Finding mentors, being a mentor, session stories"},
		{Name: "Career", Description: "Job hunting, interviews, growth"},
		{Name: "Show & Tell", Description: "Projects, wins and works in progress"},
		{Name: "Challenges", Description: "Discussion around the coding challenges"},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Initial categories created successfully")
}

func seedChallenges() {
	var count int64
	DB.Model(&models.Challenge{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now()
	challenges := []models.Challenge{
		{
			Slug:     "hello-mentorlink",
			Title:    "Hello, MentorLink",
			Brief:    "Build and share a small project that introduces you to the community.",
			Status:   models.ChallengeActive,
			StartsAt: now,
			EndsAt:   now.AddDate(0, 1, 0),
		},
	}

	for _, challenge := range challenges {
		if err := DB.Create(&challenge).Error; err != nil {
			log.Printf("Failed to create challenge %s: %v", challenge.Slug, err)
		}
	}
	log.Println("Initial challenges created successfully")
}
