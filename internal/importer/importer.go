// Package importer ingests book lists exported from other cataloguing
// systems as CSV.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apostle/librarium/internal/catalog"
	libenc "github.com/apostle/librarium/internal/encoding"
)

// Expected header: isbn,title,author,publisher,year[,category[,tags]]
// where tags are separated by semicolons.
const minColumns = 5

// RowError reports a rejected CSV row by line number.
type RowError struct {
	Line   int
	Reason string
}

// Result summarises one import run. Conflicts are ISBNs that already
// exist in the catalog; they never abort the rest of the file.
type Result struct {
	Added     []*catalog.Book
	Conflicts []string
	Rejected  []RowError
}

// Catalog is the slice of the catalog service the importer drives.
type Catalog interface {
	Add(ctx context.Context, book *catalog.Book) (*catalog.Book, error)
}

type Service struct {
	catalog Catalog
}

func NewService(cat Catalog) *Service {
	return &Service{catalog: cat}
}

// Import parses and inserts a CSV book list. The input may be in any
// of the charsets the encoding package understands.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Result, error) {
	utf8r, err := libenc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("normalizing input: %w", err)
	}

	cr := csv.NewReader(utf8r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if len(header) < minColumns || !strings.EqualFold(strings.TrimSpace(header[0]), "isbn") {
		return nil, errors.New("unrecognized book list header")
	}

	result := &Result{}
	line := 1

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}

		line++

		if err != nil {
			result.Rejected = append(result.Rejected, RowError{Line: line, Reason: err.Error()})
			continue
		}

		book, rowErr := parseRow(row, line)
		if rowErr != nil {
			result.Rejected = append(result.Rejected, *rowErr)
			continue
		}

		added, err := s.catalog.Add(ctx, book)
		switch {
		case err == nil:
			result.Added = append(result.Added, added)
		case errors.Is(err, catalog.ErrDuplicateISBN):
			result.Conflicts = append(result.Conflicts, book.ISBN)
		case errors.Is(err, catalog.ErrMissingFields):
			result.Rejected = append(result.Rejected, RowError{Line: line, Reason: err.Error()})
		default:
			return nil, fmt.Errorf("adding book %s: %w", book.ISBN, err)
		}
	}

	return result, nil
}

func parseRow(row []string, line int) (*catalog.Book, *RowError) {
	if len(row) < minColumns {
		return nil, &RowError{Line: line, Reason: "too few columns"}
	}

	isbn := strings.TrimSpace(row[0])
	if isbn == "" {
		return nil, &RowError{Line: line, Reason: "missing isbn"}
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return nil, &RowError{Line: line, Reason: "invalid year: " + row[4]}
	}

	book := &catalog.Book{
		ISBN:      isbn,
		Title:     strings.TrimSpace(row[1]),
		Author:    strings.TrimSpace(row[2]),
		Publisher: strings.TrimSpace(row[3]),
		Year:      year,
	}

	if len(row) > 5 {
		book.Category = strings.TrimSpace(row[5])
	}

	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		for _, tag := range strings.Split(row[6], ";") {
			if t := strings.TrimSpace(tag); t != "" {
				book.Tags = append(book.Tags, t)
			}
		}
	}

	return book, nil
}
