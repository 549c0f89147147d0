package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "inkwell/internal/controller/http"
	"inkwell/internal/repo/persistent"
	"inkwell/internal/usecase"
	"inkwell/pkg/config"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"
	"inkwell/pkg/middleware"
	"inkwell/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "inkwell/docs" // Swagger docs
)

// Run wires the repositories, use cases, and handlers, then serves until
// SIGINT/SIGTERM.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, log)
	postUseCase := usecase.NewPostUseCase(postRepo, redisClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, redisClient, log)

	authHandler := controller.NewAuthHandler(authUseCase)
	postHandler := controller.NewPostHandler(postUseCase, log)
	commentHandler := controller.NewCommentHandler(commentUseCase, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.AuthMiddleware(jwtService)
	rateLimited := middleware.RateLimitMiddleware(redisClient, 100, time.Minute)

	// Registration, login, and the post listing are the only public endpoints.
	r.POST("/auth/register", rateLimited, authHandler.Register)
	r.POST("/auth/login", rateLimited, authHandler.Login)
	r.GET("/auth/user", authRequired, authHandler.Me)
	r.POST("/auth/avatar", authRequired, rateLimited, authHandler.UploadAvatar)

	r.GET("/posts", postHandler.ListPosts)
	r.POST("/posts", authRequired, rateLimited, postHandler.CreatePost)
	r.GET("/posts/:id", authRequired, postHandler.GetPost)
	r.PATCH("/posts/:id", authRequired, rateLimited, postHandler.UpdatePost)
	r.DELETE("/posts/:id", authRequired, rateLimited, postHandler.DeletePost)

	r.POST("/comments", authRequired, rateLimited, commentHandler.CreateComment)
	r.PATCH("/comments/:id", authRequired, rateLimited, commentHandler.UpdateComment)
	r.DELETE("/comments/:id", authRequired, rateLimited, commentHandler.DeleteComment)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
