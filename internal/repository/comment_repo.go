package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blog-backend-api/internal/database"
	"github.com/blog-backend-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment and fills in the generated id and timestamp
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (content, post_id, author_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		comment.Content, comment.PostID, comment.AuthorID, time.Now().UTC(),
	).Scan(&comment.ID, &comment.CreatedAt)
}

// GetByID retrieves a comment by ID, including the raw author_id needed for
// ownership checks
func (r *commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `SELECT id, content, post_id, author_id, created_at FROM comments WHERE id = $1`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.Content, &comment.PostID, &comment.AuthorID,
		&comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// GetWithAuthor retrieves a comment by ID with the author's username joined in
func (r *commentRepo) GetWithAuthor(ctx context.Context, id int64) (*models.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.content, u.username, c.post_id, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`

	var comment models.CommentWithAuthor
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.Content, &comment.Author, &comment.PostID,
		&comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListByPost retrieves all comments for a post with author usernames,
// oldest first
func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.content, u.username, c.post_id, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.id
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.CommentWithAuthor
	for rows.Next() {
		var comment models.CommentWithAuthor
		err := rows.Scan(
			&comment.ID, &comment.Content, &comment.Author, &comment.PostID,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// UpdateContent rewrites a comment's content. It reports whether a row
// matched the id.
func (r *commentRepo) UpdateContent(ctx context.Context, id int64, content string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE comments SET content = $1 WHERE id = $2", content, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a comment by ID. It reports whether a row matched the id.
func (r *commentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
