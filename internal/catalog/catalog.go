package catalog

import "time"

// Book is a catalog entry, keyed by its ISBN.
type Book struct {
	ISBN      string
	Title     string
	Author    string
	Publisher string
	Year      int
	Category  string
	Tags      []string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// coverFallbackURL points at Open Library's cover service for books
// that have no image of their own.
func coverFallbackURL(isbn string) string {
	return "https://covers.openlibrary.org/b/isbn/" + isbn + "-M.jpg"
}
