package main

import (
	"context"
	"log"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/domain"
	"portfolio/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Dev-only seeding: wipes the store and loads an admin account plus sample
// portfolio content. Never point this at a production DATABASE_URL.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM photo_comments")
	db.Exec("DELETE FROM photo_entries")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM admins")

	ctx := context.Background()

	log.Println("Creating admin...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	adminRepo := repository.NewAdminRepository(db)
	if err := adminRepo.Create(ctx, &domain.Admin{
		Username:     "admin",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}); err != nil {
		log.Fatal("admin seed failed:", err)
	}

	log.Println("Creating projects...")
	projectRepo := repository.NewProjectRepository(db)
	projects := []*domain.Project{
		{
			Title:        "Portfolio Website",
			Description:  "This site: React frontend with a Go API behind it.",
			Technologies: []string{"Go", "Gin", "React", "PostgreSQL"},
			Image:        "/uploads/samples/portfolio.png",
			GithubURL:    "https://github.com/example/portfolio",
			DemoURL:      "https://example.dev",
			Role:         "Solo developer",
		},
		{
			Title:        "Weather CLI",
			Description:  "Tiny terminal weather client.",
			Technologies: []string{"Go"},
			Image:        "/uploads/samples/weather.png",
			GithubURL:    "https://github.com/example/weather-cli",
			DemoURL:      "https://example.dev/weather",
			IsMini:       true,
		},
	}
	for _, p := range projects {
		p.CreatedAt = time.Now()
		p.UpdatedAt = time.Now()
		if err := projectRepo.Create(ctx, p); err != nil {
			log.Fatal("project seed failed:", err)
		}
	}

	log.Println("Creating messages...")
	messageRepo := repository.NewMessageRepository(db)
	if err := messageRepo.Create(ctx, &domain.Message{
		Name:      "Jordan",
		Email:     "jordan@example.com",
		Subject:   "Freelance inquiry",
		Message:   "Hi! Are you available for contract work this fall?",
		CreatedAt: time.Now(),
	}); err != nil {
		log.Fatal("message seed failed:", err)
	}

	log.Println("Creating photo log...")
	photoRepo := repository.NewPhotoLogRepository(db)
	entries := []*domain.PhotoEntry{
		{PhotoID: "sunset-pier", Title: "Sunset at the pier", URL: "/uploads/samples/sunset.jpg", Category: "Travel"},
		{PhotoID: "city-rain", Title: "Rainy crossing", URL: "/uploads/samples/rain.jpg", Category: domain.DefaultPhotoCategory},
	}
	for _, e := range entries {
		if _, err := photoRepo.CreateIfAbsent(ctx, e); err != nil {
			log.Fatal("photo seed failed:", err)
		}
	}
	for i := 0; i < 3; i++ {
		if _, err := photoRepo.IncrementLikes(ctx, "sunset-pier"); err != nil {
			log.Fatal("like seed failed:", err)
		}
	}
	if err := photoRepo.AddComment(ctx, &domain.Comment{
		ID:        uuid.NewString(),
		PhotoID:   "sunset-pier",
		Text:      "Gorgeous light!",
		Author:    domain.DefaultCommentAuthor,
		CreatedAt: time.Now(),
	}); err != nil {
		log.Fatal("comment seed failed:", err)
	}

	log.Println("Seed complete.")
}
