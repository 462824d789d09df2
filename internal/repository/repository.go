package repository

import (
	"context"

	"github.com/blog-backend-api/internal/database"
	"github.com/blog-backend-api/internal/models"
)

// UserRepository defines the interface for user data operations. Lookups are
// by username only; authentication carries the user id in the token, so
// nothing resolves users by id.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.PostWithAuthor, error)
	List(ctx context.Context) ([]models.PostWithAuthor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, title, content string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetWithAuthor(ctx context.Context, id int64) (*models.CommentWithAuthor, error)
	ListByPost(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error)
	UpdateContent(ctx context.Context, id int64, content string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Post:    NewPostRepo(db),
		Comment: NewCommentRepo(db),
	}
}
