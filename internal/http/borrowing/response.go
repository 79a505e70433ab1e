package borrowing

import (
	"time"

	"github.com/google/uuid"

	"github.com/apostle/librarium/internal/borrowing"
	"github.com/apostle/librarium/internal/fine"
)

type borrowResponse struct {
	Message    string           `json:"message"`
	Success    bool             `json:"success"`
	BorrowID   *uuid.UUID       `json:"borrow_id,omitempty"`
	BookISBN   string           `json:"book_isbn,omitempty"`
	Borrower   string           `json:"borrower,omitempty"`
	BorrowDate *time.Time       `json:"borrow_date,omitempty"`
	DueDate    *time.Time       `json:"due_date,omitempty"`
	Status     borrowing.Status `json:"status,omitempty"`
	FineAmount *float64         `json:"fine_amount,omitempty"`
}

func toResponse(resp *borrowing.Response) borrowResponse {
	return borrowResponse{
		Message:    resp.Message,
		Success:    resp.Success,
		BorrowID:   resp.BorrowID,
		BookISBN:   resp.BookISBN,
		Borrower:   resp.Borrower,
		BorrowDate: resp.BorrowDate,
		DueDate:    resp.DueDate,
		Status:     resp.Status,
		FineAmount: resp.FineAmount,
	}
}

type recordResponse struct {
	ID         uuid.UUID        `json:"id"`
	BookISBN   string           `json:"book_isbn"`
	Borrower   string           `json:"borrower"`
	BorrowDate time.Time        `json:"borrow_date"`
	DueDate    time.Time        `json:"due_date"`
	Status     borrowing.Status `json:"status"`
	ReturnDate *time.Time       `json:"return_date,omitempty"`
	Overdue    bool             `json:"overdue"`
	FineAmount float64          `json:"fine_amount"`
}

func toRecordList(records []*borrowing.Record) []recordResponse {
	resp := make([]recordResponse, len(records))
	for i, record := range records {
		resp[i] = recordResponse{
			ID:         record.ID,
			BookISBN:   record.BookISBN,
			Borrower:   record.Borrower,
			BorrowDate: record.BorrowDate,
			DueDate:    record.DueDate,
			Status:     record.Status,
			ReturnDate: record.ReturnDate,
			Overdue:    record.Overdue,
			FineAmount: record.FineAmount,
		}
	}

	return resp
}

type paymentResponse struct {
	ID                   uuid.UUID          `json:"id"`
	Amount               float64            `json:"amount"`
	PaymentDate          time.Time          `json:"payment_date"`
	Method               fine.Method        `json:"method"`
	Status               fine.PaymentStatus `json:"status"`
	TransactionReference string             `json:"transaction_reference"`
}

type fineResponse struct {
	ID              uuid.UUID         `json:"id"`
	BorrowID        uuid.UUID         `json:"borrow_id"`
	BookISBN        string            `json:"book_isbn"`
	Borrower        string            `json:"borrower"`
	Amount          float64           `json:"amount"`
	RemainingAmount float64           `json:"remaining_amount"`
	Status          fine.Status       `json:"status"`
	CreatedDate     time.Time         `json:"created_date"`
	LastUpdatedDate time.Time         `json:"last_updated_date"`
	Payments        []paymentResponse `json:"payments"`
}

func toFineList(fines []*fine.Fine) []fineResponse {
	resp := make([]fineResponse, len(fines))
	for i, f := range fines {
		payments := make([]paymentResponse, len(f.Payments))
		for j, p := range f.Payments {
			payments[j] = paymentResponse{
				ID:                   p.ID,
				Amount:               p.Amount,
				PaymentDate:          p.PaymentDate,
				Method:               p.Method,
				Status:               p.Status,
				TransactionReference: p.TransactionReference,
			}
		}

		resp[i] = fineResponse{
			ID:              f.ID,
			BorrowID:        f.BorrowID,
			BookISBN:        f.BookISBN,
			Borrower:        f.Borrower,
			Amount:          f.Amount,
			RemainingAmount: f.RemainingAmount,
			Status:          f.Status,
			CreatedDate:     f.CreatedDate,
			LastUpdatedDate: f.LastUpdatedDate,
			Payments:        payments,
		}
	}

	return resp
}
