package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/apostle/librarium/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBookColumns = `
	isbn, title, author, publisher, year, category, tags, image_url, created_at, updated_at
`

func scanBook(s scanner) (*catalog.Book, error) {
	var book catalog.Book

	var category, imageURL sql.NullString

	var tags pq.StringArray

	if err := s.Scan(
		&book.ISBN, &book.Title, &book.Author, &book.Publisher, &book.Year,
		&category, &tags, &imageURL, &book.CreatedAt, &book.UpdatedAt,
	); err != nil {
		return nil, err
	}

	book.Category = category.String
	book.ImageURL = imageURL.String
	book.Tags = tags

	return &book, nil
}

func (s *Store) CreateBook(ctx context.Context, book *catalog.Book) error {
	query := `
		INSERT INTO books (isbn, title, author, publisher, year, category, tags, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		book.ISBN,
		book.Title,
		book.Author,
		book.Publisher,
		book.Year,
		nullIfEmpty(book.Category),
		pq.StringArray(book.Tags),
		nullIfEmpty(book.ImageURL),
	).Scan(&book.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating book: %w", err)
	}

	return nil
}

func (s *Store) GetBook(ctx context.Context, isbn string) (*catalog.Book, error) {
	query := `SELECT ` + selectBookColumns + ` FROM books WHERE isbn = $1`

	book, err := scanBook(s.db.QueryRowContext(ctx, query, isbn))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting book: %w", err)
	}

	return book, nil
}

func (s *Store) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`, isbn,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking isbn: %w", err)
	}

	return exists, nil
}

func (s *Store) UpdateBook(ctx context.Context, book *catalog.Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, publisher = $3, year = $4,
		    category = $5, tags = $6, image_url = $7, updated_at = NOW()
		WHERE isbn = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		book.Title,
		book.Author,
		book.Publisher,
		book.Year,
		nullIfEmpty(book.Category),
		pq.StringArray(book.Tags),
		nullIfEmpty(book.ImageURL),
		book.ISBN,
	)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}

	if affected == 0 {
		return catalog.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteBook(ctx context.Context, isbn string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE isbn = $1`, isbn)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	return nil
}

func (s *Store) ListBooks(ctx context.Context) ([]*catalog.Book, error) {
	query := `SELECT ` + selectBookColumns + ` FROM books ORDER BY title ASC`

	return s.queryBooks(ctx, query)
}

func (s *Store) SearchBooks(ctx context.Context, q string) ([]*catalog.Book, error) {
	query := `SELECT ` + selectBookColumns + `
		FROM books
		WHERE title ILIKE '%' || $1 || '%'
		   OR author ILIKE '%' || $1 || '%'
		   OR isbn ILIKE '%' || $1 || '%'
		ORDER BY title ASC`

	return s.queryBooks(ctx, query, q)
}

func (s *Store) queryBooks(ctx context.Context, query string, args ...any) ([]*catalog.Book, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	defer rows.Close()

	var books []*catalog.Book

	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}

		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating book rows: %w", err)
	}

	return books, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
