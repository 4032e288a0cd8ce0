package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/cjpearson85/be-nc-games/config"
	"github.com/cjpearson85/be-nc-games/database"
	"github.com/cjpearson85/be-nc-games/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.InitializeTables(db); err != nil {
		log.Fatal("Failed to initialize tables:", err)
	}

	if cfg.SeedDB && cfg.Environment == "development" {
		if err := database.Seed(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		log.Println("Database seeded with development data")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure this properly for production
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	router.Use(func(c *gin.Context) {
		corsHandler.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	h := handlers.New(db, cfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		api.GET("", h.GetEndpoints)

		api.GET("/categories", h.GetCategories)
		api.POST("/categories", h.AuthMiddleware(), h.PostCategory)

		api.GET("/users", h.GetUsers)
		api.GET("/users/:username", h.GetUserByUsername)
		api.PATCH("/users/:username", h.AuthMiddleware(), h.PatchUserByUsername)

		api.POST("/register", h.Register)
		api.POST("/login", h.Login)

		api.GET("/reviews", h.GetReviews)
		api.POST("/reviews", h.AuthMiddleware(), h.PostReview)
		api.GET("/reviews/:review_id", h.GetReviewByID)
		api.PATCH("/reviews/:review_id", h.AuthMiddleware(), h.PatchReviewByID)
		api.DELETE("/reviews/:review_id", h.AuthMiddleware(), h.DeleteReviewByID)
		api.GET("/reviews/:review_id/comments", h.GetCommentsByReviewID)
		api.POST("/reviews/:review_id/comments", h.AuthMiddleware(), h.PostCommentByReviewID)

		api.PATCH("/comments/:comment_id", h.AuthMiddleware(), h.PatchCommentByID)
		api.DELETE("/comments/:comment_id", h.AuthMiddleware(), h.DeleteCommentByID)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid path"})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
