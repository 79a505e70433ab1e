package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/apostle/librarium/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acc.Username,
		acc.Email,
		acc.PasswordHash,
		acc.Role,
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at
		FROM accounts
		WHERE email = $1
	`

	var acc account.Account

	var roleStr string

	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &roleStr, &acc.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	acc.Role = account.Role(roleStr)

	return &acc, nil
}

func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking account email: %w", err)
	}

	return exists, nil
}
