package service

import (
	"context"
	"fmt"

	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/rs/zerolog"
)

// postService implements PostService. Posts deliberately have no ownership
// check on update/delete: any authenticated user may mutate any post.
type postService struct {
	posts repository.PostRepository
	log   zerolog.Logger
}

func newPostService(posts repository.PostRepository, log zerolog.Logger) PostService {
	return &postService{
		posts: posts,
		log:   log.With().Str("service", "post").Logger(),
	}
}

// Create persists a new post authored by the given user
func (s *postService) Create(ctx context.Context, authorID int64, req *models.PostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.log.Info().Int64("post_id", post.ID).Int64("author_id", authorID).Msg("Post created")
	return post, nil
}

// List returns all posts with author usernames
func (s *postService) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Get returns a single post or ErrNotFound
func (s *postService) Get(ctx context.Context, id int64) (*models.PostWithAuthor, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Update rewrites title and content, refreshes updated_at, and returns the
// updated post
func (s *postService) Update(ctx context.Context, id int64, req *models.PostRequest) (*models.PostWithAuthor, error) {
	found, err := s.posts.Update(ctx, id, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	s.log.Info().Int64("post_id", id).Msg("Post updated")
	return post, nil
}

// Delete removes a post. Comments referencing it are left in place.
func (s *postService) Delete(ctx context.Context, id int64) error {
	found, err := s.posts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	s.log.Info().Int64("post_id", id).Msg("Post deleted")
	return nil
}

// Count returns the total number of posts
func (s *postService) Count(ctx context.Context) (int, error) {
	return s.posts.Count(ctx)
}
