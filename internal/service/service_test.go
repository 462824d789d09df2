package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blog-backend-api/internal/auth"
	"github.com/blog-backend-api/internal/mocks"
	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/blog-backend-api/internal/service"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func setupServices() (*service.Services, *mocks.MockUserRepository, *mocks.MockPostRepository, *mocks.MockCommentRepository, *auth.TokenIssuer) {
	mockUsers := mocks.NewMockUserRepository()
	mockPosts := mocks.NewMockPostRepository()
	mockComments := mocks.NewMockCommentRepository()

	repos := &repository.Repositories{
		User:    mockUsers,
		Post:    mockPosts,
		Comment: mockComments,
	}

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	services := service.NewServices(repos, hasher, tokens, zerolog.Nop())

	return services, mockUsers, mockPosts, mockComments, tokens
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	services, mockUsers, _, _, tokens := setupServices()
	ctx := context.Background()

	user, err := services.Auth.Register(ctx, &models.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw1",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected a generated user id")
	}
	if user.PasswordHash == "pw1" || user.PasswordHash == "" {
		t.Error("Password should be stored hashed")
	}

	token, err := services.Auth.Login(ctx, &models.LoginRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// The token resolves back to the registered user
	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != user.ID {
		t.Errorf("Expected user id %d in token, got %d", user.ID, userID)
	}

	if count, _ := mockUsers.Count(ctx); count != 1 {
		t.Errorf("Expected 1 user, got %d", count)
	}
}

func TestAuthService_DuplicateUsername(t *testing.T) {
	services, mockUsers, _, _, _ := setupServices()
	ctx := context.Background()

	if _, err := services.Auth.Register(ctx, &models.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw1",
	}); err != nil {
		t.Fatalf("First register failed: %v", err)
	}

	_, err := services.Auth.Register(ctx, &models.RegisterRequest{
		Username: "alice", Email: "other@x.com", Password: "pw2",
	})
	if !errors.Is(err, service.ErrUsernameTaken) {
		t.Errorf("Expected ErrUsernameTaken, got %v", err)
	}

	// No second row was created
	if count, _ := mockUsers.Count(ctx); count != 1 {
		t.Errorf("Expected 1 user, got %d", count)
	}
}

func TestAuthService_InvalidCredentials(t *testing.T) {
	services, _, _, _, _ := setupServices()
	ctx := context.Background()

	if _, err := services.Auth.Register(ctx, &models.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw1",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Unknown user and wrong password are indistinguishable
	_, err := services.Auth.Login(ctx, &models.LoginRequest{Username: "nobody", Password: "pw1"})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	_, err = services.Auth.Login(ctx, &models.LoginRequest{Username: "alice", Password: "wrong"})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestPostService_CRUD(t *testing.T) {
	services, _, mockPosts, _, _ := setupServices()
	ctx := context.Background()
	mockPosts.Authors[1] = "alice"

	post, err := services.Post.Create(ctx, 1, &models.PostRequest{Title: "t1", Content: "c1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if post.AuthorID != 1 {
		t.Errorf("Expected author_id 1, got %d", post.AuthorID)
	}

	got, err := services.Post.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "t1" || got.Content != "c1" || got.Author != "alice" {
		t.Errorf("Unexpected post: %+v", got)
	}

	createdAt := got.CreatedAt
	updated, err := services.Post.Update(ctx, post.ID, &models.PostRequest{Title: "t2", Content: "c2"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "t2" {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}
	if updated.CreatedAt != createdAt {
		t.Error("created_at must not change on update")
	}
	if updated.UpdatedAt.Before(createdAt) {
		t.Error("updated_at should be refreshed on update")
	}

	if err := services.Post.Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := services.Post.Get(ctx, post.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestPostService_NotFound(t *testing.T) {
	services, _, _, _, _ := setupServices()
	ctx := context.Background()

	if _, err := services.Post.Get(ctx, 99); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := services.Post.Update(ctx, 99, &models.PostRequest{Title: "t", Content: "c"}); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := services.Post.Delete(ctx, 99); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCommentService_CreateRequiresPost(t *testing.T) {
	services, _, mockPosts, _, _ := setupServices()
	ctx := context.Background()

	_, err := services.Comment.Create(ctx, 1, &models.CreateCommentRequest{PostID: 42, Content: "nice"})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing post, got %v", err)
	}

	if _, err := services.Post.Create(ctx, 1, &models.PostRequest{Title: "t1", Content: "c1"}); err != nil {
		t.Fatalf("Post create failed: %v", err)
	}
	mockPosts.Authors[1] = "alice"

	comment, err := services.Comment.Create(ctx, 1, &models.CreateCommentRequest{PostID: 1, Content: "nice"})
	if err != nil {
		t.Fatalf("Comment create failed: %v", err)
	}
	if comment.PostID != 1 || comment.AuthorID != 1 {
		t.Errorf("Unexpected comment: %+v", comment)
	}
}

func TestCommentService_Ownership(t *testing.T) {
	services, _, _, mockComments, _ := setupServices()
	ctx := context.Background()
	mockComments.Authors[1] = "alice"

	mockComments.Create(ctx, &models.Comment{Content: "nice", PostID: 1, AuthorID: 1})

	// Another user may neither update nor delete
	if err := services.Comment.Update(ctx, 1, 2, "edited"); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("Expected ErrForbidden on foreign update, got %v", err)
	}
	if err := services.Comment.Delete(ctx, 1, 2); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("Expected ErrForbidden on foreign delete, got %v", err)
	}

	// The author may update; the mutation is visible afterwards
	if err := services.Comment.Update(ctx, 1, 1, "edited"); err != nil {
		t.Fatalf("Update by author failed: %v", err)
	}
	got, err := services.Comment.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Content != "edited" {
		t.Errorf("Expected edited content, got %q", got.Content)
	}

	// The author may delete; the comment is gone afterwards
	if err := services.Comment.Delete(ctx, 1, 1); err != nil {
		t.Fatalf("Delete by author failed: %v", err)
	}
	if _, err := services.Comment.Get(ctx, 1); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestCommentService_UpdateKeepsContentWhenEmpty(t *testing.T) {
	services, _, _, mockComments, _ := setupServices()
	ctx := context.Background()

	mockComments.Create(ctx, &models.Comment{Content: "original", PostID: 1, AuthorID: 1})

	if err := services.Comment.Update(ctx, 1, 1, ""); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := services.Comment.Get(ctx, 1)
	if got.Content != "original" {
		t.Errorf("Empty content should keep existing content, got %q", got.Content)
	}
}

func TestCommentService_ListByPost(t *testing.T) {
	services, _, _, mockComments, _ := setupServices()
	ctx := context.Background()
	mockComments.Authors[1] = "alice"

	// No comments yet: the empty list is reported as not found
	_, err := services.Comment.ListByPost(ctx, 1)
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for empty list, got %v", err)
	}

	mockComments.Create(ctx, &models.Comment{Content: "first", PostID: 1, AuthorID: 1})
	mockComments.Create(ctx, &models.Comment{Content: "second", PostID: 1, AuthorID: 1})
	mockComments.Create(ctx, &models.Comment{Content: "other post", PostID: 2, AuthorID: 1})

	comments, err := services.Comment.ListByPost(ctx, 1)
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(comments) != 2 {
		t.Errorf("Expected 2 comments, got %d", len(comments))
	}
	for _, c := range comments {
		if c.PostID != 1 {
			t.Errorf("Comment %d belongs to post %d", c.ID, c.PostID)
		}
		if c.Author != "alice" {
			t.Errorf("Expected author alice, got %q", c.Author)
		}
	}
}
