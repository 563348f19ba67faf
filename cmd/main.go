package main

import (
	"log"
	"net/http"
	"os"

	"medibridge/database"
	"medibridge/internal/cache"
	"medibridge/internal/controllers"
	"medibridge/internal/repository"
	"medibridge/internal/storage"
	"medibridge/internal/utils"
	"medibridge/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	referralRepo := repository.NewReferralRepository(database.DB)
	otpRepo := repository.NewOtpRepository(database.DB)
	profileRepo := repository.NewStudentProfileRepository(database.DB)
	jobRepo := repository.NewJobRepository(database.DB)
	applicationRepo := repository.NewApplicationRepository(database.DB)
	academyRepo := repository.NewAcademyStudentRepository(database.DB)

	// Collaborators: mail, resume storage, optional listing cache
	mailer := utils.NewSMTPMailer(utils.LoadMailConfig())

	resumeStore, err := storage.NewCloudinaryStore()
	if err != nil {
		log.Fatalf("Failed to initialize resume storage: %v", err)
	}

	var jobCache *cache.RedisClient
	if jobCache, err = cache.NewRedisClient(); err != nil {
		log.Printf("Warning: Redis unavailable, public job listing will not be cached: %v", err)
		jobCache = nil
	} else {
		defer jobCache.Close()
	}

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo, referralRepo, otpRepo, mailer)
	otpController := controllers.NewOtpController(otpRepo, userRepo, mailer)
	referralController := controllers.NewReferralController(referralRepo)
	jobController := controllers.NewJobController(jobRepo, jobCache)
	applicationController := controllers.NewApplicationController(applicationRepo, jobRepo, profileRepo)
	profileController := controllers.NewStudentProfileController(profileRepo, resumeStore)
	academyController := controllers.NewAcademyRecordController(academyRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(corsMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Medibridge API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterOtpRoutes(router, otpController)
	routes.RegisterFacultyRoutes(router, authController, jobController, applicationController, referralController, academyController)
	routes.RegisterStudentRoutes(router, jobController, applicationController, profileController)
	routes.RegisterPublicRoutes(router, jobController)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware mirrors the permissive policy the frontend expects: any
// origin, credentials allowed.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
