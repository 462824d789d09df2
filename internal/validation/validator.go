package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blog-backend-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidEmail reports whether the given string looks like an email address
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateRegistration validates a registration payload
func ValidateRegistration(req *models.RegisterRequest) []ValidationError {
	var errors []ValidationError

	// Validate username
	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	} else if len(req.Username) > models.MaxIdentifierLen {
		errors = append(errors, ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("username must be at most %d characters", models.MaxIdentifierLen),
		})
	}

	// Validate email
	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if len(req.Email) > models.MaxIdentifierLen {
		errors = append(errors, ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("email must be at most %d characters", models.MaxIdentifierLen),
		})
	} else if !ValidEmail(req.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email address"})
	}

	// Validate password
	if req.Password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	}

	return errors
}

// ValidateLogin validates a login payload
func ValidateLogin(req *models.LoginRequest) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	}
	if req.Password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	}

	return errors
}

// ValidatePost validates a post create/update payload
func ValidatePost(req *models.PostRequest) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if len(req.Title) > models.MaxTitleLen {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", models.MaxTitleLen),
		})
	}

	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	return errors
}

// ValidateComment validates a comment create payload
func ValidateComment(req *models.CreateCommentRequest) []ValidationError {
	var errors []ValidationError

	if req.PostID <= 0 {
		errors = append(errors, ValidationError{Field: "post_id", Message: "post_id is required"})
	}
	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	return errors
}
