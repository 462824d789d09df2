package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blog-backend-api/internal/database"
	"github.com/blog-backend-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// Create inserts a new post and fills in the generated id and timestamps
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at
	`
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.AuthorID, now,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

// GetByID retrieves a post by ID with the author's username joined in
func (r *postRepo) GetByID(ctx context.Context, id int64) (*models.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.title, p.content, u.username, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var post models.PostWithAuthor
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.Author,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// List retrieves all posts with author usernames, oldest first
func (r *postRepo) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.title, p.content, u.username, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.PostWithAuthor
	for rows.Next() {
		var post models.PostWithAuthor
		err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.Author,
			&post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Exists checks if a post with the given ID exists
func (r *postRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// Update rewrites title and content and refreshes updated_at. It reports
// whether a row matched the id.
func (r *postRepo) Update(ctx context.Context, id int64, title, content string) (bool, error) {
	query := `UPDATE posts SET title = $1, content = $2, updated_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, title, content, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a post by ID. It reports whether a row matched the id.
func (r *postRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}
