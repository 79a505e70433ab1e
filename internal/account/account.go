package account

import (
	"time"

	"github.com/google/uuid"
)

// Role separates library members from administrators.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Account is a registered user or administrator, keyed by email.
type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// RegisterResult is the structured outcome of a registration attempt.
type RegisterResult struct {
	Success bool
	Message string
}

// LoginResult carries the issued token on success. Failed credentials
// yield Success=false with no error, matching the register envelope.
type LoginResult struct {
	Username string
	Success  bool
	Role     Role
	Token    string
}
