package service

import (
	"context"
	"fmt"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService implements CommentService. Unlike posts, comment mutation
// requires the acting user to be the comment's author.
type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, posts repository.PostRepository, log zerolog.Logger) CommentService {
	return &commentService{
		comments: comments,
		posts:    posts,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Create persists a new comment after checking that the referenced post
// exists
func (s *commentService) Create(ctx context.Context, authorID int64, req *models.CreateCommentRequest) (*models.Comment, error) {
	exists, err := s.posts.Exists(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		Content:  req.Content,
		PostID:   req.PostID,
		AuthorID: authorID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.log.Info().Int64("comment_id", comment.ID).Int64("post_id", comment.PostID).Msg("Comment created")
	return comment, nil
}

// ListByPost returns all comments on a post. A post with zero comments
// returns ErrNotFound.
func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if len(comments) == 0 {
		return nil, ErrNotFound
	}
	return comments, nil
}

// Get returns a single comment or ErrNotFound
func (s *commentService) Get(ctx context.Context, id int64) (*models.CommentWithAuthor, error) {
	comment, err := s.comments.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	return comment, nil
}

// Update rewrites a comment's content if the acting user is its author.
// Empty content keeps the existing content.
func (s *commentService) Update(ctx context.Context, id, userID int64, content string) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.AuthorID != userID {
		return ErrForbidden
	}

	if content == "" {
		content = comment.Content
	}
	if _, err := s.comments.UpdateContent(ctx, id, content); err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	s.log.Info().Int64("comment_id", id).Msg("Comment updated")
	return nil
}

// Delete removes a comment if the acting user is its author
func (s *commentService) Delete(ctx context.Context, id, userID int64) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.AuthorID != userID {
		return ErrForbidden
	}

	if _, err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.log.Info().Int64("comment_id", id).Msg("Comment deleted")
	return nil
}

// Count returns the total number of comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.comments.Count(ctx)
}
