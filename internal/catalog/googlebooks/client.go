// Package googlebooks looks up book metadata on the Google Books
// volumes API, used to complete partial catalog submissions.
package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apostle/librarium/internal/catalog"
)

var ErrNoResults = errors.New("no volumes found")

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	VolumeInfo struct {
		Title               string   `json:"title"`
		Authors             []string `json:"authors"`
		Publisher           string   `json:"publisher"`
		PublishedDate       string   `json:"publishedDate"`
		Categories          []string `json:"categories"`
		IndustryIdentifiers []struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		} `json:"industryIdentifiers"`
		ImageLinks struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

// FetchByISBN returns the best-matching book for the given ISBN.
func (c *Client) FetchByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	if strings.TrimSpace(isbn) == "" {
		return nil, errors.New("isbn cannot be empty")
	}

	resp, err := c.query(ctx, "isbn:"+strings.TrimSpace(isbn), 1)
	if err != nil {
		return nil, err
	}

	for _, item := range resp.Items {
		if book := mapVolume(item); book != nil {
			return book, nil
		}
	}

	return nil, ErrNoResults
}

// Search returns up to 40 books matching a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]*catalog.Book, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query cannot be empty")
	}

	resp, err := c.query(ctx, strings.TrimSpace(query), 40)
	if err != nil {
		return nil, err
	}

	var books []*catalog.Book

	for _, item := range resp.Items {
		if book := mapVolume(item); book != nil {
			books = append(books, book)
		}
	}

	return books, nil
}

func (c *Client) query(ctx context.Context, q string, maxResults int) (*volumesResponse, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("maxResults", strconv.Itoa(maxResults))

	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/volumes?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling books api: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("books api returned status %d", res.StatusCode)
	}

	var parsed volumesResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding books response: %w", err)
	}

	return &parsed, nil
}

// mapVolume converts one API volume into a catalog book.
// Volumes without a title are dropped.
func mapVolume(v volume) *catalog.Book {
	info := v.VolumeInfo
	if strings.TrimSpace(info.Title) == "" {
		return nil
	}

	book := &catalog.Book{
		Title:     info.Title,
		Publisher: info.Publisher,
	}

	if len(info.Authors) > 0 {
		book.Author = info.Authors[0]
	}

	if len(info.PublishedDate) >= 4 {
		if year, err := strconv.Atoi(info.PublishedDate[:4]); err == nil {
			book.Year = year
		}
	}

	for _, id := range info.IndustryIdentifiers {
		if id.Type == "ISBN_13" || id.Type == "ISBN_10" {
			book.ISBN = id.Identifier
			break
		}
	}

	for _, cat := range info.Categories {
		if strings.TrimSpace(cat) == "" {
			continue
		}

		book.Tags = append(book.Tags, cat)

		if book.Category == "" {
			book.Category = cat
		}
	}

	book.ImageURL = info.ImageLinks.Thumbnail
	if book.ImageURL == "" && book.ISBN != "" {
		book.ImageURL = "https://covers.openlibrary.org/b/isbn/" + book.ISBN + "-M.jpg"
	}

	return book
}
