package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blog-backend-api/internal/auth"
	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// authService implements AuthService
type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
	log    zerolog.Logger
}

func newAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer, log zerolog.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log.With().Str("service", "auth").Logger(),
	}
}

// Register hashes the password and persists a new user. Only the username is
// pre-checked for duplicates; a duplicate email still trips the database
// constraint and surfaces as a persistence error.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	taken, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The pre-check races with concurrent registrations; the unique
		// index on username is the last word.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" && strings.Contains(pqErr.Constraint, "username") {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password both return ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := s.hasher.Verify(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Msg("User logged in")
	return token, nil
}

// UserCount returns the total number of registered users
func (s *authService) UserCount(ctx context.Context) (int, error) {
	return s.users.Count(ctx)
}
