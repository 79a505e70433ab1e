package fine

import (
	"time"

	"github.com/google/uuid"
)

// Status is the settlement state of a fine. PAID is terminal.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

// Method is how a payment was made.
type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
)

// PaymentStatus never leaves completed; there are no partial-failure
// payment states in this design.
type PaymentStatus string

const PaymentCompleted PaymentStatus = "completed"

// Fine is a monetary obligation tied to exactly one borrow record.
type Fine struct {
	ID              uuid.UUID
	BorrowID        uuid.UUID
	BookISBN        string
	Borrower        string
	Amount          float64
	RemainingAmount float64
	Status          Status
	CreatedDate     time.Time
	LastUpdatedDate time.Time
	Payments        []Payment
}

// Payment is immutable once appended to a fine's payment list.
type Payment struct {
	ID                   uuid.UUID
	FineID               uuid.UUID
	Amount               float64
	PaymentDate          time.Time
	Method               Method
	Status               PaymentStatus
	TransactionReference string
}
