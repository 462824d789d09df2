package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/service"
	"github.com/blog-backend-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PostHandler handles post endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// parseID reads the :id path parameter. A non-numeric id behaves like a
// missing resource.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "resource not found"})
		return 0, false
	}
	return id, true
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if errs := validation.ValidatePost(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": errs[0].Message, "errors": errs})
		return
	}

	if _, err := h.services.Post.Create(ctx, currentUserID(c), &req); err != nil {
		h.log.Error().Err(err).Msg("Failed to create post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create post", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "post created successfully"})
}

// List handles GET /posts
func (h *PostHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	posts, err := h.services.Post.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list posts"})
		return
	}
	if posts == nil {
		posts = []models.PostWithAuthor{}
	}

	c.JSON(http.StatusOK, posts)
}

// Get handles GET /posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.services.Post.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
			return
		}
		h.log.Error().Err(err).Int64("post_id", id).Msg("Failed to get post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to get post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update handles PUT /posts/:id. Any authenticated user may update any post.
func (h *PostHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if errs := validation.ValidatePost(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": errs[0].Message, "errors": errs})
		return
	}

	post, err := h.services.Post.Update(ctx, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
			return
		}
		h.log.Error().Err(err).Int64("post_id", id).Msg("Failed to update post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update post", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post updated successfully", "post": post})
}

// Delete handles DELETE /posts/:id. Any authenticated user may delete any
// post; its comments are left in place.
func (h *PostHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Post.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
			return
		}
		h.log.Error().Err(err).Int64("post_id", id).Msg("Failed to delete post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}
