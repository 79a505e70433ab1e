package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/apostle/librarium/internal/borrowing"
	"github.com/apostle/librarium/internal/catalog"
)

type Handler struct {
	svc       *catalog.Service
	borrowSvc *borrowing.Service
}

func NewHandler(svc *catalog.Service, borrowSvc *borrowing.Service) *Handler {
	return &Handler{svc: svc, borrowSvc: borrowSvc}
}

// AdminRoutes carries the catalog-management surface.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/", h.add)
	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/{isbn}", h.get)
	r.Put("/{isbn}", h.update)
	r.Delete("/{isbn}", h.delete)
}

// UserRoutes carries the read-only member surface.
func (h *Handler) UserRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/{isbn}/availability", h.availability)
}

type bookRequest struct {
	ISBN      string   `json:"isbn"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Publisher string   `json:"publisher"`
	Year      int      `json:"year"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	ImageURL  string   `json:"image_url"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	book, err := h.svc.Add(r.Context(), &catalog.Book{
		ISBN:      req.ISBN,
		Title:     req.Title,
		Author:    req.Author,
		Publisher: req.Publisher,
		Year:      req.Year,
		Category:  req.Category,
		Tags:      req.Tags,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateISBN) || errors.Is(err, catalog.ErrMissingFields) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(book)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateBookRequest struct {
	Title     *string  `json:"title,omitempty"`
	Author    *string  `json:"author,omitempty"`
	Publisher *string  `json:"publisher,omitempty"`
	Year      *int     `json:"year,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	ImageURL  *string  `json:"image_url,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")
	if strings.TrimSpace(isbn) == "" {
		http.Error(w, "isbn cannot be empty", http.StatusBadRequest)
		return
	}

	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	book, err := h.svc.Update(r.Context(), isbn, catalog.UpdateParams{
		Title:     req.Title,
		Author:    req.Author,
		Publisher: req.Publisher,
		Year:      req.Year,
		Category:  req.Category,
		Tags:      req.Tags,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "book not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toResponse(book))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")
	if strings.TrimSpace(isbn) == "" {
		http.Error(w, "isbn cannot be empty", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), isbn); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "book not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.Get(r.Context(), chi.URLParam(r, "isbn"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "book not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toResponse(book))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponseList(books))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		http.Error(w, "search query cannot be empty", http.StatusBadRequest)
		return
	}

	books, err := h.svc.Search(r.Context(), query)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponseList(books))
}

type availabilityResponse struct {
	ISBN      string `json:"isbn"`
	Available bool   `json:"available"`
}

func (h *Handler) availability(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	available, err := h.borrowSvc.IsBookAvailable(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "book not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, availabilityResponse{ISBN: isbn, Available: available})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
