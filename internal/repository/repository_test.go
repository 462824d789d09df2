package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/blog-backend-api/internal/mocks"
	"github.com/blog-backend-api/internal/models"
)

func TestMockUserRepository_CreateAndLookup(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected a generated id")
	}

	byName, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if byName == nil || byName.ID != user.ID {
		t.Errorf("Unexpected user: %+v", byName)
	}

	// Missing rows come back nil, not as errors
	missing, err := repo.GetByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing user, got %+v", missing)
	}
}

func TestMockUserRepository_UsernameExists(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"})

	exists, err := repo.UsernameExists(ctx, "alice")
	if err != nil {
		t.Fatalf("UsernameExists failed: %v", err)
	}
	if !exists {
		t.Error("Username should exist")
	}

	exists, err = repo.UsernameExists(ctx, "bob")
	if err != nil {
		t.Fatalf("UsernameExists failed: %v", err)
	}
	if exists {
		t.Error("Username should not exist")
	}
}

func TestMockPostRepository_UpdateAndDelete(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()
	repo.Authors[1] = "alice"

	post := &models.Post{Title: "t1", Content: "c1", AuthorID: 1}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.Update(ctx, post.ID, "t2", "c2")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !found {
		t.Error("Update should report the row as found")
	}

	got, _ := repo.GetByID(ctx, post.ID)
	if got.Title != "t2" || got.Author != "alice" {
		t.Errorf("Unexpected post: %+v", got)
	}

	found, err = repo.Delete(ctx, post.ID)
	if err != nil || !found {
		t.Errorf("Delete failed: found=%v err=%v", found, err)
	}

	found, err = repo.Delete(ctx, post.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if found {
		t.Error("Second delete should not find the row")
	}
}

func TestMockCommentRepository_ListByPost(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()
	repo.Authors[1] = "alice"

	for i := 0; i < 3; i++ {
		repo.Create(ctx, &models.Comment{Content: fmt.Sprintf("comment %d", i), PostID: 1, AuthorID: 1})
	}
	repo.Create(ctx, &models.Comment{Content: "elsewhere", PostID: 2, AuthorID: 1})

	comments, err := repo.ListByPost(ctx, 1)
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(comments) != 3 {
		t.Errorf("Expected 3 comments, got %d", len(comments))
	}

	count, _ := repo.Count(ctx)
	if count != 4 {
		t.Errorf("Expected 4 comments total, got %d", count)
	}
}
