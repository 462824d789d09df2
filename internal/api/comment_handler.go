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

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Create handles POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if errs := validation.ValidateComment(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": errs[0].Message, "errors": errs})
		return
	}

	if _, err := h.services.Comment.Create(ctx, currentUserID(c), &req); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
			return
		}
		h.log.Error().Err(err).Int64("post_id", req.PostID).Msg("Failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create comment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "comment created successfully"})
}

// ListByPost handles GET /comments?post_id=. A post with zero comments
// returns 404.
func (h *CommentHandler) ListByPost(c *gin.Context) {
	ctx := c.Request.Context()

	postID, err := strconv.ParseInt(c.Query("post_id"), 10, 64)
	if err != nil || postID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "post_id is required"})
		return
	}

	comments, err := h.services.Comment.ListByPost(ctx, postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "no comments found for this post"})
			return
		}
		h.log.Error().Err(err).Int64("post_id", postID).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Get handles GET /comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		return
	}

	comment, err := h.services.Comment.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "comment not found"})
			return
		}
		h.log.Error().Err(err).Int64("comment_id", id).Msg("Failed to get comment")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to get comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Update handles PUT /comments/:id. Only the comment's author may update it.
func (h *CommentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := h.services.Comment.Update(ctx, id, currentUserID(c), req.Content); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "comment not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": "you are not the author of this comment"})
		default:
			h.log.Error().Err(err).Int64("comment_id", id).Msg("Failed to update comment")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update comment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment updated successfully"})
}

// Delete handles DELETE /comments/:id. Only the comment's author may delete
// it.
func (h *CommentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Comment.Delete(ctx, id, currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "comment not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": "you are not the author of this comment"})
		default:
			h.log.Error().Err(err).Int64("comment_id", id).Msg("Failed to delete comment")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete comment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
