package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "pw1" {
		t.Error("Hash should not return the raw password")
	}

	if err := hasher.Verify(hash, "pw1"); err != nil {
		t.Errorf("Verify with correct password failed: %v", err)
	}
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if first == second {
		t.Error("Equal passwords should produce different hashes")
	}

	// Both hashes still verify the original password
	if err := hasher.Verify(first, "same-password"); err != nil {
		t.Errorf("Verify first hash failed: %v", err)
	}
	if err := hasher.Verify(second, "same-password"); err != nil {
		t.Errorf("Verify second hash failed: %v", err)
	}
}

func TestPasswordHasher_WrongPassword(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	err = hasher.Verify(hash, "incorrect")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("Expected ErrPasswordMismatch, got %v", err)
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	err := hasher.Verify("not-a-bcrypt-hash", "anything")
	if err == nil {
		t.Fatal("Expected error for malformed hash")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("Malformed hash should surface as a decode error, not a mismatch")
	}
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MaxCost + 1)
	if hasher.cost != bcrypt.DefaultCost {
		t.Errorf("Expected default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
	}
}
