package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	ErrNotFound      = errors.New("book not found")
	ErrDuplicateISBN = errors.New("isbn already exists")
	ErrMissingFields = errors.New("title, author, publisher and year are required")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	CreateBook(ctx context.Context, book *Book) error
	GetBook(ctx context.Context, isbn string) (*Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	UpdateBook(ctx context.Context, book *Book) error
	DeleteBook(ctx context.Context, isbn string) error
	ListBooks(ctx context.Context) ([]*Book, error)
	SearchBooks(ctx context.Context, query string) ([]*Book, error)
}

// Enricher fills in missing book metadata from an external catalog.
type Enricher interface {
	FetchByISBN(ctx context.Context, isbn string) (*Book, error)
}

type Service struct {
	repo     Repository
	enricher Enricher
}

func NewService(repo Repository, enricher Enricher) *Service {
	return &Service{repo: repo, enricher: enricher}
}

// Add registers a new book. Submissions missing core fields are enriched
// from the external catalog before validation; the ISBN must be unused.
func (s *Service) Add(ctx context.Context, book *Book) (*Book, error) {
	if strings.TrimSpace(book.ISBN) == "" {
		return nil, fmt.Errorf("%w: isbn is required", ErrMissingFields)
	}

	if !hasCoreFields(book) && s.enricher != nil {
		fetched, err := s.enricher.FetchByISBN(ctx, book.ISBN)
		if err != nil {
			slog.Warn("book enrichment failed", "isbn", book.ISBN, "error", err)
		} else if fetched != nil {
			mergeMissing(book, fetched)
		}
	}

	if !hasCoreFields(book) {
		return nil, ErrMissingFields
	}

	exists, err := s.repo.ExistsByISBN(ctx, book.ISBN)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, ErrDuplicateISBN
	}

	if err := s.repo.CreateBook(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

type UpdateParams struct {
	Title     *string
	Author    *string
	Publisher *string
	Year      *int
	Category  *string
	Tags      []string
	ImageURL  *string
}

func (s *Service) Update(ctx context.Context, isbn string, params UpdateParams) (*Book, error) {
	book, err := s.repo.GetBook(ctx, isbn)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		book.Title = *params.Title
	}

	if params.Author != nil {
		book.Author = *params.Author
	}

	if params.Publisher != nil {
		book.Publisher = *params.Publisher
	}

	if params.Year != nil {
		book.Year = *params.Year
	}

	if params.Category != nil {
		book.Category = *params.Category
	}

	if params.Tags != nil {
		book.Tags = params.Tags
	}

	if params.ImageURL != nil {
		book.ImageURL = *params.ImageURL
	}

	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

func (s *Service) Delete(ctx context.Context, isbn string) error {
	exists, err := s.repo.ExistsByISBN(ctx, isbn)
	if err != nil {
		return err
	}

	if !exists {
		return ErrNotFound
	}

	return s.repo.DeleteBook(ctx, isbn)
}

func (s *Service) Get(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.GetBook(ctx, isbn)
}

func (s *Service) List(ctx context.Context) ([]*Book, error) {
	return s.repo.ListBooks(ctx)
}

// Search finds books whose title, author or ISBN contains the query,
// backfilling a cover URL for results that have none.
func (s *Service) Search(ctx context.Context, query string) ([]*Book, error) {
	if strings.TrimSpace(query) == "" {
		return []*Book{}, nil
	}

	books, err := s.repo.SearchBooks(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}

	for _, b := range books {
		if b.ImageURL == "" && b.ISBN != "" {
			b.ImageURL = coverFallbackURL(b.ISBN)
		}
	}

	return books, nil
}

func hasCoreFields(b *Book) bool {
	return strings.TrimSpace(b.Title) != "" &&
		strings.TrimSpace(b.Author) != "" &&
		strings.TrimSpace(b.Publisher) != "" &&
		b.Year != 0
}

func mergeMissing(dst, src *Book) {
	if dst.Title == "" {
		dst.Title = src.Title
	}

	if dst.Author == "" {
		dst.Author = src.Author
	}

	if dst.Publisher == "" {
		dst.Publisher = src.Publisher
	}

	if dst.Year == 0 {
		dst.Year = src.Year
	}

	if dst.Category == "" {
		dst.Category = src.Category
	}

	if len(dst.Tags) == 0 {
		dst.Tags = src.Tags
	}

	if dst.ImageURL == "" {
		dst.ImageURL = src.ImageURL
	}
}
