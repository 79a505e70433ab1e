package borrowing

import (
	"time"

	"github.com/google/uuid"
)

// Status is the loan state of a borrow record. RETURNED is terminal.
// An overdue record stays BORROWED with the overdue flag set until the
// fine is settled and an explicit return succeeds.
type Status string

const (
	StatusBorrowed Status = "BORROWED"
	StatusReturned Status = "RETURNED"
)

// Record is one borrow transaction. Records are never deleted; returned
// ones are kept as history.
type Record struct {
	ID         uuid.UUID
	BookISBN   string
	Borrower   string
	BorrowDate time.Time
	DueDate    time.Time
	Status     Status
	ReturnDate *time.Time
	Overdue    bool
	FineAmount float64
}

// Response is the structured outcome of every lifecycle operation.
// Business-rule failures come back with Success=false and a message
// (plus the relevant amount, for financial failures) instead of an
// error, so the HTTP layer renders them uniformly.
type Response struct {
	Message    string
	Success    bool
	BorrowID   *uuid.UUID
	BookISBN   string
	Borrower   string
	BorrowDate *time.Time
	DueDate    *time.Time
	Status     Status
	FineAmount *float64
}

func successResponse(record *Record, message string) *Response {
	fineAmount := record.FineAmount

	return &Response{
		Message:    message,
		Success:    true,
		BorrowID:   &record.ID,
		BookISBN:   record.BookISBN,
		Borrower:   record.Borrower,
		BorrowDate: &record.BorrowDate,
		DueDate:    &record.DueDate,
		Status:     record.Status,
		FineAmount: &fineAmount,
	}
}

func failureResponse(message, isbn, borrower string) *Response {
	return &Response{
		Message:  message,
		Success:  false,
		BookISBN: isbn,
		Borrower: borrower,
	}
}

func fineFailureResponse(message, isbn, borrower string, amount float64) *Response {
	resp := failureResponse(message, isbn, borrower)
	resp.FineAmount = &amount

	return resp
}
