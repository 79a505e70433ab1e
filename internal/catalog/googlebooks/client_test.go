package googlebooks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apostle/librarium/internal/catalog/googlebooks"
)

const volumesPayload = `{
	"totalItems": 2,
	"items": [
		{
			"volumeInfo": {
				"title": "The Go Programming Language",
				"authors": ["Alan A. A. Donovan", "Brian W. Kernighan"],
				"publisher": "Addison-Wesley",
				"publishedDate": "2015-11-16",
				"categories": ["Computers", "Programming"],
				"industryIdentifiers": [
					{"type": "ISBN_13", "identifier": "9780134190440"},
					{"type": "ISBN_10", "identifier": "0134190440"}
				],
				"imageLinks": {"thumbnail": "https://example.com/go.jpg"}
			}
		},
		{
			"volumeInfo": {
				"authors": ["Nobody"],
				"publishedDate": "2001"
			}
		}
	]
}`

func TestClient_FetchByISBN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "isbn:9780134190440", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("maxResults"))

		_, _ = w.Write([]byte(volumesPayload))
	}))
	defer srv.Close()

	client := googlebooks.New(srv.URL, "")

	book, err := client.FetchByISBN(context.Background(), "9780134190440")
	require.NoError(t, err)

	assert.Equal(t, "9780134190440", book.ISBN)
	assert.Equal(t, "The Go Programming Language", book.Title)
	assert.Equal(t, "Alan A. A. Donovan", book.Author)
	assert.Equal(t, "Addison-Wesley", book.Publisher)
	assert.Equal(t, 2015, book.Year)
	assert.Equal(t, "Computers", book.Category)
	assert.Equal(t, []string{"Computers", "Programming"}, book.Tags)
	assert.Equal(t, "https://example.com/go.jpg", book.ImageURL)
}

func TestClient_FetchByISBN_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer srv.Close()

	client := googlebooks.New(srv.URL, "")

	_, err := client.FetchByISBN(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, googlebooks.ErrNoResults)
}

func TestClient_FetchByISBN_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := googlebooks.New(srv.URL, "")

	_, err := client.FetchByISBN(context.Background(), "9780134190440")
	assert.Error(t, err)
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "go programming", r.URL.Query().Get("q"))
		assert.Equal(t, "40", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		_, _ = w.Write([]byte(volumesPayload))
	}))
	defer srv.Close()

	client := googlebooks.New(srv.URL, "test-key")

	books, err := client.Search(context.Background(), "go programming")
	require.NoError(t, err)

	// The titleless volume is dropped.
	require.Len(t, books, 1)
	assert.Equal(t, "The Go Programming Language", books[0].Title)
}

func TestClient_Search_EmptyQuery(t *testing.T) {
	client := googlebooks.New("http://unused", "")

	_, err := client.Search(context.Background(), "  ")
	assert.Error(t, err)
}
