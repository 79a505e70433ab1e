package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/apostle/librarium/internal/fine"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectFineColumns = `
	id, borrow_id, book_isbn, borrower, amount, remaining, status, created_date, last_updated
`

func scanFine(s scanner) (*fine.Fine, error) {
	var f fine.Fine

	var statusStr string

	if err := s.Scan(
		&f.ID, &f.BorrowID, &f.BookISBN, &f.Borrower,
		&f.Amount, &f.RemainingAmount, &statusStr,
		&f.CreatedDate, &f.LastUpdatedDate,
	); err != nil {
		return nil, err
	}

	f.Status = fine.Status(statusStr)

	return &f, nil
}

func (s *Store) CreateFine(ctx context.Context, f *fine.Fine) error {
	query := `
		INSERT INTO fines (borrow_id, book_isbn, borrower, amount, remaining, status, created_date, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		f.BorrowID,
		f.BookISBN,
		f.Borrower,
		f.Amount,
		f.RemainingAmount,
		f.Status,
		f.CreatedDate,
		f.LastUpdatedDate,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("creating fine: %w", err)
	}

	return nil
}

func (s *Store) GetFine(ctx context.Context, id uuid.UUID) (*fine.Fine, error) {
	query := `SELECT ` + selectFineColumns + ` FROM fines WHERE id = $1`

	f, err := scanFine(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fine.ErrFineNotFound
		}

		return nil, fmt.Errorf("getting fine: %w", err)
	}

	if err := s.loadPayments(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Store) GetFineByBorrowID(ctx context.Context, borrowID uuid.UUID) (*fine.Fine, error) {
	query := `SELECT ` + selectFineColumns + ` FROM fines WHERE borrow_id = $1`

	f, err := scanFine(s.db.QueryRowContext(ctx, query, borrowID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fine.ErrFineNotFound
		}

		return nil, fmt.Errorf("getting fine by borrow id: %w", err)
	}

	if err := s.loadPayments(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

// UpdateFine persists the fine's balance and status; when payment is
// non-nil it is appended in the same database transaction.
func (s *Store) UpdateFine(ctx context.Context, f *fine.Fine, payment *fine.Payment) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE fines
		SET remaining = $1, status = $2, last_updated = $3
		WHERE id = $4
	`

	if _, err := dbTx.ExecContext(ctx, query,
		f.RemainingAmount, f.Status, f.LastUpdatedDate, f.ID,
	); err != nil {
		return fmt.Errorf("updating fine: %w", err)
	}

	if payment != nil {
		paymentQuery := `
			INSERT INTO payments (id, fine_id, amount, payment_date, method, status, reference)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		if _, err := dbTx.ExecContext(ctx, paymentQuery,
			payment.ID,
			payment.FineID,
			payment.Amount,
			payment.PaymentDate,
			payment.Method,
			payment.Status,
			payment.TransactionReference,
		); err != nil {
			return fmt.Errorf("recording payment: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing fine update: %w", err)
	}

	return nil
}

func (s *Store) ListFinesByBorrower(ctx context.Context, email string) ([]*fine.Fine, error) {
	query := `SELECT ` + selectFineColumns + ` FROM fines WHERE borrower = $1 ORDER BY created_date ASC`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("listing fines: %w", err)
	}
	defer rows.Close()

	var fines []*fine.Fine

	for rows.Next() {
		f, err := scanFine(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fine: %w", err)
		}

		fines = append(fines, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fine rows: %w", err)
	}

	for _, f := range fines {
		if err := s.loadPayments(ctx, f); err != nil {
			return nil, err
		}
	}

	return fines, nil
}

func (s *Store) loadPayments(ctx context.Context, f *fine.Fine) error {
	query := `
		SELECT id, fine_id, amount, payment_date, method, status, reference
		FROM payments
		WHERE fine_id = $1
		ORDER BY payment_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, f.ID)
	if err != nil {
		return fmt.Errorf("loading payments: %w", err)
	}
	defer rows.Close()

	f.Payments = []fine.Payment{}

	for rows.Next() {
		var p fine.Payment

		var methodStr, statusStr string

		if err := rows.Scan(
			&p.ID, &p.FineID, &p.Amount, &p.PaymentDate,
			&methodStr, &statusStr, &p.TransactionReference,
		); err != nil {
			return fmt.Errorf("scanning payment: %w", err)
		}

		p.Method = fine.Method(methodStr)
		p.Status = fine.PaymentStatus(statusStr)
		f.Payments = append(f.Payments, p)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating payment rows: %w", err)
	}

	return nil
}
