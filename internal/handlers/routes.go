package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"book-library-api/internal/middleware"
	"book-library-api/internal/models"
	"book-library-api/internal/services"
)

// Version is reported by the health check
const Version = "1.0.0"

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	BookService         services.BookService
	ReviewService       services.ReviewService
	RefIDService        services.RefIDService
	SentimentService    services.SentimentService
	NotificationService services.NotificationService
	AuthService         *middleware.AuthService
	Logger              *logrus.Logger

	// IssueTokens registers POST /auth/token when AuthService is enabled
	IssueTokens bool
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	bookHandler := NewBookHandler(config.BookService, logger)
	reviewHandler := NewReviewHandler(ReviewHandlerConfig{
		ReviewService:       config.ReviewService,
		RefIDService:        config.RefIDService,
		SentimentService:    config.SentimentService,
		NotificationService: config.NotificationService,
		Logger:              logger,
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		review := "available"
		if config.ReviewService == nil {
			review = "unavailable"
		}
		c.JSON(http.StatusOK, models.HealthCheck{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   Version,
			Services: map[string]string{
				"books":   "available",
				"reviews": review,
			},
		})
	})

	books := router.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.GET("/:bookId", middleware.Authentication(config.AuthService, logger), bookHandler.GetBook)
	}

	router.POST("/reviews", middleware.RequestSizeLimit(64<<10), reviewHandler.SubmitReview)

	if config.IssueTokens && config.AuthService.Enabled() {
		authHandler := NewAuthHandler(config.AuthService, logger)
		router.POST("/auth/token", middleware.RequestSizeLimit(4<<10), authHandler.IssueToken)
	}
}
