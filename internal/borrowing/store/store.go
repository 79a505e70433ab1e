package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/apostle/librarium/internal/borrowing"
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

const selectRecordColumns = `
	id, book_isbn, borrower, borrow_date, due_date, status, return_date, overdue, fine_amount
`

func scanRecord(s scanner) (*borrowing.Record, error) {
	var record borrowing.Record

	var statusStr string

	if err := s.Scan(
		&record.ID, &record.BookISBN, &record.Borrower,
		&record.BorrowDate, &record.DueDate, &statusStr,
		&record.ReturnDate, &record.Overdue, &record.FineAmount,
	); err != nil {
		return nil, err
	}

	record.Status = borrowing.Status(statusStr)

	return &record, nil
}

func (s *Store) CreateRecord(ctx context.Context, record *borrowing.Record) error {
	query := `
		INSERT INTO borrow_records (book_isbn, borrower, borrow_date, due_date, status, overdue, fine_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		record.BookISBN,
		record.Borrower,
		record.BorrowDate,
		record.DueDate,
		record.Status,
		record.Overdue,
		record.FineAmount,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("creating borrow record: %w", err)
	}

	return nil
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*borrowing.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM borrow_records WHERE id = $1`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, borrowing.ErrRecordNotFound
		}

		return nil, fmt.Errorf("getting borrow record: %w", err)
	}

	return record, nil
}

func (s *Store) UpdateRecord(ctx context.Context, record *borrowing.Record) error {
	query := `
		UPDATE borrow_records
		SET status = $1, return_date = $2, overdue = $3, fine_amount = $4
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		record.Status,
		record.ReturnDate,
		record.Overdue,
		record.FineAmount,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("updating borrow record: %w", err)
	}

	return nil
}

func (s *Store) FindByISBNAndStatus(ctx context.Context, isbn string, status borrowing.Status) ([]*borrowing.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM borrow_records
		WHERE book_isbn = $1 AND status = $2
		ORDER BY borrow_date ASC`

	return s.queryRecords(ctx, query, isbn, status)
}

func (s *Store) FindByBorrowerAndStatus(ctx context.Context, borrower string, status borrowing.Status) ([]*borrowing.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM borrow_records
		WHERE borrower = $1 AND status = $2
		ORDER BY borrow_date ASC`

	return s.queryRecords(ctx, query, borrower, status)
}

func (s *Store) FindByStatusAndDueBefore(ctx context.Context, status borrowing.Status, due time.Time) ([]*borrowing.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM borrow_records
		WHERE status = $1 AND due_date < $2
		ORDER BY due_date ASC`

	return s.queryRecords(ctx, query, status, due)
}

// FindByStatusAndDueBetween supports the due-soon reminder scan.
func (s *Store) FindByStatusAndDueBetween(ctx context.Context, status borrowing.Status, from, to time.Time) ([]*borrowing.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM borrow_records
		WHERE status = $1 AND due_date >= $2 AND due_date < $3
		ORDER BY due_date ASC`

	return s.queryRecords(ctx, query, status, from, to)
}

// FindBorrow satisfies the fine ledger's borrow lookup.
func (s *Store) FindBorrow(ctx context.Context, id uuid.UUID) (*fine.BorrowRef, error) {
	record, err := s.GetRecord(ctx, id)
	if err != nil {
		if err == borrowing.ErrRecordNotFound {
			return nil, fine.ErrBorrowRecordNotFound
		}

		return nil, err
	}

	return &fine.BorrowRef{BookISBN: record.BookISBN, Borrower: record.Borrower}, nil
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]*borrowing.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing borrow records: %w", err)
	}
	defer rows.Close()

	var records []*borrowing.Record

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning borrow record: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating borrow record rows: %w", err)
	}

	return records, nil
}
