package api

import (
	"errors"
	"net/http"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/service"
	"github.com/blog-backend-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if errs := validation.ValidateRegistration(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": errs[0].Message, "errors": errs})
		return
	}

	if _, err := h.services.Auth.Register(ctx, &req); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username already exists"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to register user")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully"})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if errs := validation.ValidateLogin(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": errs[0].Message, "errors": errs})
		return
	}

	token, err := h.services.Auth.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to log in user")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token})
}
