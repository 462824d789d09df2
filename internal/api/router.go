package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/blog-backend-api/internal/auth"
	"github.com/blog-backend-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthChecker reports backing-store liveness and connection pool
// statistics. *database.DB satisfies it; tests substitute a stub.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
	Stats() sql.DBStats
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, tokens *auth.TokenIssuer, db HealthChecker, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	postHandler := NewPostHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	// The guard runs only on routes that mutate state
	guard := authRequired(tokens)

	// Health check
	router.GET("/health", healthCheck(db))
	router.GET("/metrics", metricsHandler(services, db))

	// Authentication
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// Posts
	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.GET("/:id", postHandler.Get)
		posts.POST("", guard, postHandler.Create)
		posts.PUT("/:id", guard, postHandler.Update)
		posts.DELETE("/:id", guard, postHandler.Delete)
	}

	// Comments
	comments := router.Group("/comments")
	{
		comments.GET("", commentHandler.ListByPost)
		comments.GET("/:id", commentHandler.Get)
		comments.POST("", guard, commentHandler.Create)
		comments.PUT("/:id", guard, commentHandler.Update)
		comments.DELETE("/:id", guard, commentHandler.Delete)
	}

	return router
}

// healthCheck pings the database and reports the result. A failed ping is
// reported as degraded with 503 so load balancers stop routing traffic here.
func healthCheck(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "blog-backend-api",
		}

		if err := db.HealthCheck(c.Request.Context()); err != nil {
			body["status"] = "degraded"
			body["error"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}

		c.JSON(http.StatusOK, body)
	}
}

// metricsHandler returns entity counts and connection pool statistics
func metricsHandler(services *service.Services, db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usersCount, _ := services.Auth.UserCount(ctx)
		postsCount, _ := services.Post.Count(ctx)
		commentsCount, _ := services.Comment.Count(ctx)
		stats := db.Stats()

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"users":    usersCount,
				"posts":    postsCount,
				"comments": commentsCount,
			},
			"pool": gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
