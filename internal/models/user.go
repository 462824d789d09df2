package models

// User represents a registered account. The password hash is opaque bcrypt
// output and is never serialized into API responses.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// MaxIdentifierLen caps username and email length
const MaxIdentifierLen = 500

// RegisterRequest is the payload for POST /register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the payload returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
