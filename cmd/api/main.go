package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/middleware"
	"portfolio/internal/modules/admin"
	"portfolio/internal/modules/message"
	"portfolio/internal/modules/photolog"
	"portfolio/internal/modules/project"
	"portfolio/internal/modules/upload"
	jwtsvc "portfolio/internal/pkg/jwt"
	"portfolio/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	adminRepo := repository.NewAdminRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	photoRepo := repository.NewPhotoLogRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	uploadService := upload.NewService(uploadRepo, cfg.UploadsDir)

	adminService := admin.NewService(adminRepo, j, cfg.SetupKey)
	adminHandler := admin.NewHandler(adminService)

	projectService := project.NewService(projectRepo, uploadService)
	projectHandler := project.NewHandler(projectService, uploadService)

	messageService := message.NewService(messageRepo)
	messageHandler := message.NewHandler(messageService)

	photoService := photolog.NewService(photoRepo)
	photoHandler := photolog.NewHandler(photoService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/uploads", cfg.UploadsDir)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// public
		adminHandler.RegisterPublicRoutes(api)
		projectHandler.RegisterPublicRoutes(api)
		messageHandler.RegisterPublicRoutes(api)
		photoHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			adminHandler.RegisterProtectedRoutes(protected)
			projectHandler.RegisterProtectedRoutes(protected)
			messageHandler.RegisterProtectedRoutes(protected)
		}

		// Photo-log moderation sits behind the guard unless explicitly
		// configured to stay open (the original exposed it publicly).
		if cfg.PhotoLogPublicModeration {
			photoHandler.RegisterModerationRoutes(api)
		} else {
			photoHandler.RegisterModerationRoutes(protected)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   gin.H{"code": "NOT_FOUND", "message": "Route not found"},
		})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
