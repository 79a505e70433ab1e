package fine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/apostle/librarium/internal/notification"
)

// Ledger failures are typed so the borrowing engine can translate them
// into user-facing responses; this package renders no messages itself.
var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidInput         = errors.New("invalid input")
	ErrFineNotFound         = errors.New("fine not found")
	ErrBorrowRecordNotFound = errors.New("borrow record not found")
	ErrDuplicateFine        = errors.New("fine already exists for this borrow record")
	ErrAlreadyPaid          = errors.New("fine has already been paid")
)

// OverpaymentError reports a payment exceeding the remaining balance,
// carrying both figures so a client can render an actionable prompt.
type OverpaymentError struct {
	Amount    float64
	Remaining float64
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment amount %.2f exceeds remaining fine amount %.2f", e.Amount, e.Remaining)
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=fine
type Repository interface {
	CreateFine(ctx context.Context, f *Fine) error
	GetFine(ctx context.Context, id uuid.UUID) (*Fine, error)
	GetFineByBorrowID(ctx context.Context, borrowID uuid.UUID) (*Fine, error)
	UpdateFine(ctx context.Context, f *Fine, payment *Payment) error
	ListFinesByBorrower(ctx context.Context, email string) ([]*Fine, error)
}

// BorrowRef is the slice of a borrow record the ledger needs.
type BorrowRef struct {
	BookISBN string
	Borrower string
}

// BorrowLookup resolves borrow records without pulling in the borrowing
// package. Implementations return ErrBorrowRecordNotFound for unknown ids.
type BorrowLookup interface {
	FindBorrow(ctx context.Context, id uuid.UUID) (*BorrowRef, error)
}

type Service struct {
	repo     Repository
	borrows  BorrowLookup
	notifier notification.Enqueuer
	now      func() time.Time
}

func NewService(repo Repository, borrows BorrowLookup, notifier notification.Enqueuer) *Service {
	return &Service{
		repo:     repo,
		borrows:  borrows,
		notifier: notifier,
		now:      time.Now,
	}
}

// WithClock overrides the service clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create opens a PENDING fine for a borrow record. At most one fine may
// exist per borrow record.
func (s *Service) Create(ctx context.Context, borrowID uuid.UUID, amount float64) (*Fine, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	ref, err := s.borrows.FindBorrow(ctx, borrowID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetFineByBorrowID(ctx, borrowID); err == nil {
		return nil, ErrDuplicateFine
	} else if !errors.Is(err, ErrFineNotFound) {
		return nil, err
	}

	now := s.now()
	f := &Fine{
		BorrowID:        borrowID,
		BookISBN:        ref.BookISBN,
		Borrower:        ref.Borrower,
		Amount:          amount,
		RemainingAmount: amount,
		Status:          StatusPending,
		CreatedDate:     now,
		LastUpdatedDate: now,
		Payments:        []Payment{},
	}

	if err := s.repo.CreateFine(ctx, f); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(notification.KindFineCreated, f.Borrower, map[string]string{
			"fine_id": f.ID.String(),
			"amount":  fmt.Sprintf("%.2f", f.Amount),
		})
	}

	return f, nil
}

// ProcessPayment applies one payment to a fine. The fine flips to PAID
// exactly when the remaining amount reaches zero.
func (s *Service) ProcessPayment(ctx context.Context, fineID uuid.UUID, amount float64, method Method) (*Fine, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	f, err := s.repo.GetFine(ctx, fineID)
	if err != nil {
		return nil, err
	}

	if f.Status == StatusPaid {
		return nil, ErrAlreadyPaid
	}

	if amount > f.RemainingAmount {
		return nil, &OverpaymentError{Amount: amount, Remaining: f.RemainingAmount}
	}

	payment := Payment{
		ID:                   uuid.New(),
		FineID:               f.ID,
		Amount:               amount,
		PaymentDate:          s.now(),
		Method:               method,
		Status:               PaymentCompleted,
		TransactionReference: newTransactionReference(),
	}

	f.Payments = append(f.Payments, payment)
	f.RemainingAmount -= amount
	f.LastUpdatedDate = s.now()

	if f.RemainingAmount == 0 {
		f.Status = StatusPaid
	}

	if err := s.repo.UpdateFine(ctx, f, &payment); err != nil {
		return nil, err
	}

	if f.Status == StatusPaid && s.notifier != nil {
		s.notifier.Enqueue(notification.KindFinePaid, f.Borrower, map[string]string{
			"fine_id": f.ID.String(),
		})
	}

	return s.repo.GetFine(ctx, fineID)
}

// UserFines returns every fine owed by the given borrower.
func (s *Service) UserFines(ctx context.Context, email string) ([]*Fine, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: borrower email cannot be empty", ErrInvalidInput)
	}

	return s.repo.ListFinesByBorrower(ctx, email)
}

func (s *Service) FineDetails(ctx context.Context, fineID uuid.UUID) (*Fine, error) {
	return s.repo.GetFine(ctx, fineID)
}

func (s *Service) FineByBorrowID(ctx context.Context, borrowID uuid.UUID) (*Fine, error) {
	return s.repo.GetFineByBorrowID(ctx, borrowID)
}

func (s *Service) Payments(ctx context.Context, fineID uuid.UUID) ([]Payment, error) {
	f, err := s.repo.GetFine(ctx, fineID)
	if err != nil {
		return nil, err
	}

	return f.Payments, nil
}

func (s *Service) RemainingAmount(ctx context.Context, fineID uuid.UUID) (float64, error) {
	f, err := s.repo.GetFine(ctx, fineID)
	if err != nil {
		return 0, err
	}

	return f.RemainingAmount, nil
}

func newTransactionReference() string {
	return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
}
