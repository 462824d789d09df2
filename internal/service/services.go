package service

import (
	"context"

	"github.com/blog-backend-api/internal/auth"
	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	UserCount(ctx context.Context) (int, error)
}

// PostService defines the interface for post operations
type PostService interface {
	Create(ctx context.Context, authorID int64, req *models.PostRequest) (*models.Post, error)
	List(ctx context.Context) ([]models.PostWithAuthor, error)
	Get(ctx context.Context, id int64) (*models.PostWithAuthor, error)
	Update(ctx context.Context, id int64, req *models.PostRequest) (*models.PostWithAuthor, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	Create(ctx context.Context, authorID int64, req *models.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error)
	Get(ctx context.Context, id int64) (*models.CommentWithAuthor, error)
	Update(ctx context.Context, id, userID int64, content string) error
	Delete(ctx context.Context, id, userID int64) error
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer, log zerolog.Logger) *Services {
	return &Services{
		Auth:    newAuthService(repos.User, hasher, tokens, log),
		Post:    newPostService(repos.Post, log),
		Comment: newCommentService(repos.Comment, repos.Post, log),
	}
}
