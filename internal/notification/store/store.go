package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/apostle/librarium/internal/notification"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) RecordAudit(ctx context.Context, audit *notification.Audit) error {
	query := `
		INSERT INTO notification_audits (kind, recipient, reference, success, sent_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		audit.Kind,
		audit.Recipient,
		sql.NullString{String: audit.Reference, Valid: audit.Reference != ""},
		audit.Success,
		audit.SentAt,
	)
	if err != nil {
		return fmt.Errorf("recording notification audit: %w", err)
	}

	return nil
}
