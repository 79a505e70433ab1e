package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/apostle/librarium/internal/auth"
	"github.com/apostle/librarium/internal/notification"
)

var ErrNotFound = errors.New("account not found")

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+[a-zA-Z]{2,}$`)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type Service struct {
	repo      Repository
	notifier  notification.Enqueuer
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(repo Repository, notifier notification.Enqueuer, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		repo:      repo,
		notifier:  notifier,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
	Role     Role
}

// Register creates an account. Validation failures come back as a
// structured result, not an error.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*RegisterResult, error) {
	if strings.TrimSpace(params.Username) == "" {
		return &RegisterResult{Success: false, Message: "Invalid input: username is required."}, nil
	}

	if len(params.Password) < 8 {
		return &RegisterResult{Success: false, Message: "Invalid input: password must be at least 8 characters."}, nil
	}

	email := strings.ToLower(strings.TrimSpace(params.Email))
	if !emailPattern.MatchString(email) {
		return &RegisterResult{Success: false, Message: "Invalid email"}, nil
	}

	if params.Role != RoleUser && params.Role != RoleAdmin {
		return &RegisterResult{Success: false, Message: "Invalid role"}, nil
	}

	used, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if used {
		return &RegisterResult{Success: false, Message: "Email already used"}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	acc := &Account{
		Username:     params.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         params.Role,
	}

	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(notification.KindRegistered, email, map[string]string{
			"username": acc.Username,
		})
	}

	message := "User registered successfully"
	if params.Role == RoleAdmin {
		message = "Admin registered successfully"
	}

	return &RegisterResult{Success: true, Message: message}, nil
}

// Login verifies credentials and issues an access token. Bad
// credentials yield Success=false, never a distinguishing error.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &LoginResult{Success: false}, nil
		}

		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return &LoginResult{Success: false}, nil
	}

	token, err := auth.GenerateToken(acc.Email, string(acc.Role), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &LoginResult{
		Username: acc.Username,
		Success:  true,
		Role:     acc.Role,
		Token:    token,
	}, nil
}

// ExistsByEmail satisfies the borrowing engine's account lookup.
func (s *Service) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*Account, error) {
	return s.repo.GetByEmail(ctx, email)
}
