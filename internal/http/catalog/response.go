package catalog

import (
	"time"

	"github.com/apostle/librarium/internal/catalog"
)

type bookResponse struct {
	ISBN      string     `json:"isbn"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Publisher string     `json:"publisher"`
	Year      int        `json:"year"`
	Category  string     `json:"category,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	ImageURL  string     `json:"image_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(book *catalog.Book) bookResponse {
	return bookResponse{
		ISBN:      book.ISBN,
		Title:     book.Title,
		Author:    book.Author,
		Publisher: book.Publisher,
		Year:      book.Year,
		Category:  book.Category,
		Tags:      book.Tags,
		ImageURL:  book.ImageURL,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

func toResponseList(books []*catalog.Book) []bookResponse {
	resp := make([]bookResponse, len(books))
	for i, book := range books {
		resp[i] = toResponse(book)
	}

	return resp
}
