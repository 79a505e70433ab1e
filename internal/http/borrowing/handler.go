package borrowing

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/apostle/librarium/internal/borrowing"
	"github.com/apostle/librarium/internal/fine"
	"github.com/apostle/librarium/internal/http/middleware"
)

type Handler struct {
	svc     *borrowing.Service
	fineSvc *fine.Service
}

func NewHandler(svc *borrowing.Service, fineSvc *fine.Service) *Handler {
	return &Handler{svc: svc, fineSvc: fineSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.borrow)
	r.Post("/return", h.returnBook)
	r.Get("/current", h.current)
	r.Get("/fines", h.fines)
	r.Post("/fines/{borrowId}/pay", h.payFine)
}

// AdminRoutes carries the staff-only views.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/overdue", h.overdue)
}

type borrowRequest struct {
	ISBN string `json:"isbn"`
}

// borrow and returnBook take the borrower identity from the token, so
// a member can only act on their own loans.
func (h *Handler) borrow(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.svc.Borrow(r.Context(), req.ISBN, id.Email)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponse(resp))
}

func (h *Handler) returnBook(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.svc.Return(r.Context(), req.ISBN, id.Email)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponse(resp))
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	records, err := h.svc.CurrentBorrowings(r.Context(), id.Email)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toRecordList(records))
}

func (h *Handler) overdue(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.OverdueBorrowings(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toRecordList(records))
}

func (h *Handler) fines(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	fines, err := h.fineSvc.UserFines(r.Context(), id.Email)
	if err != nil {
		if errors.Is(err, fine.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toFineList(fines))
}

type payFineRequest struct {
	Amount float64     `json:"amount"`
	Method fine.Method `json:"method,omitempty"`
}

func (h *Handler) payFine(w http.ResponseWriter, r *http.Request) {
	borrowID, err := uuid.Parse(chi.URLParam(r, "borrowId"))
	if err != nil {
		http.Error(w, "invalid borrow id", http.StatusBadRequest)
		return
	}

	var req payFineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	method := req.Method
	if method == "" {
		method = fine.MethodCash
	}

	resp, err := h.svc.PayFine(r.Context(), borrowID, req.Amount, method)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponse(resp))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
