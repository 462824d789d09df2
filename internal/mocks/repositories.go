package mocks

import (
	"context"
	"time"

	"github.com/blog-backend-api/internal/models"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users          map[int64]*models.User
	UsernameToUser map[string]*models.User
	NextID         int64
	Err            error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:          make(map[int64]*models.User),
		UsernameToUser: make(map[string]*models.User),
		NextID:         1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	user.ID = m.NextID
	m.NextID++
	m.Users[user.ID] = user
	m.UsernameToUser[user.Username] = user
	return nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.UsernameToUser[username], nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.UsernameToUser[username]
	return exists, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	Posts   map[int64]*models.Post
	Authors map[int64]string // author_id -> username, for joined views
	NextID  int64
	Err     error
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts:   make(map[int64]*models.Post),
		Authors: make(map[int64]string),
		NextID:  1,
	}
}

func (m *MockPostRepository) withAuthor(post *models.Post) *models.PostWithAuthor {
	return &models.PostWithAuthor{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    m.Authors[post.AuthorID],
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	post.ID = m.NextID
	m.NextID++
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	m.Posts[post.ID] = post
	return nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*models.PostWithAuthor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	post, ok := m.Posts[id]
	if !ok {
		return nil, nil
	}
	return m.withAuthor(post), nil
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var posts []models.PostWithAuthor
	for id := int64(1); id < m.NextID; id++ {
		if post, ok := m.Posts[id]; ok {
			posts = append(posts, *m.withAuthor(post))
		}
	}
	return posts, nil
}

func (m *MockPostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Posts[id]
	return exists, nil
}

func (m *MockPostRepository) Update(ctx context.Context, id int64, title, content string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	post, ok := m.Posts[id]
	if !ok {
		return false, nil
	}
	post.Title = title
	post.Content = content
	post.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Posts[id]; !ok {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	return len(m.Posts), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[int64]*models.Comment
	Authors  map[int64]string // author_id -> username, for joined views
	NextID   int64
	Err      error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int64]*models.Comment),
		Authors:  make(map[int64]string),
		NextID:   1,
	}
}

func (m *MockCommentRepository) withAuthor(comment *models.Comment) *models.CommentWithAuthor {
	return &models.CommentWithAuthor{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    m.Authors[comment.AuthorID],
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	comment.ID = m.NextID
	m.NextID++
	comment.CreatedAt = time.Now().UTC()
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comments[id], nil
}

func (m *MockCommentRepository) GetWithAuthor(ctx context.Context, id int64) (*models.CommentWithAuthor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comment, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	return m.withAuthor(comment), nil
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var comments []models.CommentWithAuthor
	for id := int64(1); id < m.NextID; id++ {
		if comment, ok := m.Comments[id]; ok && comment.PostID == postID {
			comments = append(comments, *m.withAuthor(comment))
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id int64, content string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	comment, ok := m.Comments[id]
	if !ok {
		return false, nil
	}
	comment.Content = content
	return true, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}
