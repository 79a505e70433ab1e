package borrowing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/apostle/librarium/internal/catalog"
	"github.com/apostle/librarium/internal/fine"
	"github.com/apostle/librarium/internal/notification"
)

var ErrRecordNotFound = errors.New("borrow record not found")

// Policy carries the lending constants. They are injected rather than
// hardcoded so tests can shorten the period or change the rate.
type Policy struct {
	PeriodDays     int
	FinePerDay     float64
	MaxUnpaidFines float64
}

func DefaultPolicy() Policy {
	return Policy{PeriodDays: 7, FinePerDay: 10.0, MaxUnpaidFines: 1000.0}
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=borrowing
type Repository interface {
	CreateRecord(ctx context.Context, record *Record) error
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	UpdateRecord(ctx context.Context, record *Record) error
	FindByISBNAndStatus(ctx context.Context, isbn string, status Status) ([]*Record, error)
	FindByBorrowerAndStatus(ctx context.Context, borrower string, status Status) ([]*Record, error)
	FindByStatusAndDueBefore(ctx context.Context, status Status, due time.Time) ([]*Record, error)
}

// BookCatalog is the slice of the catalog the engine needs.
type BookCatalog interface {
	Get(ctx context.Context, isbn string) (*catalog.Book, error)
}

// AccountLookup answers whether a borrower account exists.
type AccountLookup interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// FineLedger is the surface of the fine ledger the engine drives.
// Ledger errors are typed; the engine translates them into responses.
type FineLedger interface {
	Create(ctx context.Context, borrowID uuid.UUID, amount float64) (*fine.Fine, error)
	ProcessPayment(ctx context.Context, fineID uuid.UUID, amount float64, method fine.Method) (*fine.Fine, error)
	UserFines(ctx context.Context, email string) ([]*fine.Fine, error)
	FineByBorrowID(ctx context.Context, borrowID uuid.UUID) (*fine.Fine, error)
}

// Service is the borrow/fine lifecycle engine.
type Service struct {
	repo     Repository
	books    BookCatalog
	accounts AccountLookup
	fines    FineLedger
	notifier notification.Enqueuer
	policy   Policy
	now      func() time.Time
}

func NewService(
	repo Repository,
	books BookCatalog,
	accounts AccountLookup,
	fines FineLedger,
	notifier notification.Enqueuer,
	policy Policy,
) *Service {
	return &Service{
		repo:     repo,
		books:    books,
		accounts: accounts,
		fines:    fines,
		notifier: notifier,
		policy:   policy,
		now:      time.Now,
	}
}

// WithClock overrides the service clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Borrow lends a book. Checks run in order: outstanding fines below the
// ceiling, the book exists, no active loan for the ISBN, the borrower
// account exists.
func (s *Service) Borrow(ctx context.Context, isbn, borrower string) (*Response, error) {
	unpaid, err := s.unpaidFines(ctx, borrower)
	if err != nil {
		return nil, err
	}

	if unpaid >= s.policy.MaxUnpaidFines {
		return fineFailureResponse(
			fmt.Sprintf("Cannot borrow book. Please pay your outstanding fines: $%.2f", unpaid),
			isbn, borrower, unpaid), nil
	}

	book, err := s.books.Get(ctx, isbn)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return failureResponse(fmt.Sprintf("Book with ISBN %s not found", isbn), isbn, borrower), nil
		}

		return nil, err
	}

	active, err := s.repo.FindByISBNAndStatus(ctx, isbn, StatusBorrowed)
	if err != nil {
		return nil, err
	}

	if len(active) > 0 {
		return failureResponse("Book is not available for borrowing", isbn, borrower), nil
	}

	exists, err := s.accounts.ExistsByEmail(ctx, borrower)
	if err != nil {
		return nil, err
	}

	if !exists {
		return failureResponse("User not found", isbn, borrower), nil
	}

	now := s.now()
	record := &Record{
		BookISBN:   isbn,
		Borrower:   borrower,
		BorrowDate: now,
		DueDate:    now.AddDate(0, 0, s.policy.PeriodDays),
		Status:     StatusBorrowed,
		Overdue:    false,
		FineAmount: 0,
	}

	if err := s.repo.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	s.notify(notification.KindBorrowConfirmed, borrower, map[string]string{
		"title":    book.Title,
		"due_date": record.DueDate.Format(time.DateOnly),
	})
	slog.Info("book borrowed", "isbn", isbn, "borrower", borrower, "due", record.DueDate)

	return successResponse(record, "Book borrowed successfully"), nil
}

// Return closes an active loan. An overdue loan gets its fine created
// and flagged, and the return is refused until the fine is paid.
func (s *Service) Return(ctx context.Context, isbn, borrower string) (*Response, error) {
	active, err := s.repo.FindByISBNAndStatus(ctx, isbn, StatusBorrowed)
	if err != nil {
		return nil, err
	}

	if len(active) == 0 {
		return failureResponse("Book is not currently borrowed", isbn, borrower), nil
	}

	record := active[0]

	if s.now().After(record.DueDate) {
		if lateFee := s.lateFee(record); lateFee > 0 {
			blocked, err := s.chargeOverdue(ctx, record, lateFee)
			if err != nil {
				return nil, err
			}

			if blocked != nil {
				slog.Warn("return blocked by overdue fine",
					"isbn", isbn, "borrower", borrower, "fine", *blocked.FineAmount)

				return blocked, nil
			}
		}
	}

	book, err := s.books.Get(ctx, isbn)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return failureResponse("Book not found", isbn, borrower), nil
		}

		return nil, err
	}

	now := s.now()
	record.Status = StatusReturned
	record.ReturnDate = &now

	if err := s.repo.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	s.notify(notification.KindReturnConfirmed, borrower, map[string]string{
		"title": book.Title,
	})
	slog.Info("book returned", "isbn", isbn, "borrower", borrower)

	return successResponse(record, "Book returned successfully"), nil
}

// chargeOverdue opens (or re-reads) the fine on an overdue loan and
// returns the payment-required response blocking the return. A nil
// response means the fine was already settled and the return may
// proceed.
func (s *Service) chargeOverdue(ctx context.Context, record *Record, lateFee float64) (*Response, error) {
	owed := lateFee

	_, err := s.fines.Create(ctx, record.ID, lateFee)

	switch {
	case err == nil:
	case errors.Is(err, fine.ErrDuplicateFine):
		existing, lookupErr := s.fines.FineByBorrowID(ctx, record.ID)
		if lookupErr != nil {
			return nil, lookupErr
		}

		if existing.Status == fine.StatusPaid {
			return nil, nil
		}

		owed = existing.RemainingAmount
	default:
		return nil, err
	}

	record.Overdue = true
	record.FineAmount = owed

	if err := s.repo.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	return fineFailureResponse(
		"Please pay the overdue fine before returning the book",
		record.BookISBN, record.Borrower, owed), nil
}

// CurrentBorrowings lists the borrower's active loans.
func (s *Service) CurrentBorrowings(ctx context.Context, borrower string) ([]*Record, error) {
	return s.repo.FindByBorrowerAndStatus(ctx, borrower, StatusBorrowed)
}

// OverdueBorrowings lists every active loan past its due date.
func (s *Service) OverdueBorrowings(ctx context.Context) ([]*Record, error) {
	return s.repo.FindByStatusAndDueBefore(ctx, StatusBorrowed, s.now())
}

// IsBookAvailable reports whether the book can be borrowed right now.
func (s *Service) IsBookAvailable(ctx context.Context, isbn string) (bool, error) {
	if _, err := s.books.Get(ctx, isbn); err != nil {
		return false, err
	}

	active, err := s.repo.FindByISBNAndStatus(ctx, isbn, StatusBorrowed)
	if err != nil {
		return false, err
	}

	return len(active) == 0, nil
}

// UpdateOverdueStatus flags overdue loans and opens their fines. The
// fine amount is a snapshot taken at flag time; already-flagged records
// are skipped, so repeated runs are idempotent. Each record is handled
// independently and one failure does not stop the scan.
func (s *Service) UpdateOverdueStatus(ctx context.Context) error {
	overdue, err := s.OverdueBorrowings(ctx)
	if err != nil {
		return err
	}

	for _, record := range overdue {
		if record.Overdue {
			continue
		}

		lateFee := s.lateFee(record)
		if lateFee <= 0 {
			continue
		}

		if _, err := s.fines.Create(ctx, record.ID, lateFee); err != nil {
			if !errors.Is(err, fine.ErrDuplicateFine) {
				slog.Error("overdue scan: fine creation failed",
					"borrow_id", record.ID, "error", err)

				continue
			}
		}

		record.Overdue = true
		record.FineAmount = lateFee

		if err := s.repo.UpdateRecord(ctx, record); err != nil {
			slog.Error("overdue scan: record update failed",
				"borrow_id", record.ID, "error", err)

			continue
		}

		s.notify(notification.KindOverdue, record.Borrower, map[string]string{
			"title":  record.BookISBN,
			"amount": fmt.Sprintf("%.2f", lateFee),
		})
	}

	return nil
}

// CalculateFine returns the fine owed on a borrow record: zero for
// returned or unflagged records, otherwise days overdue times the daily
// rate. Days are counted from the due date at call time, not from flag
// time, so this can exceed the snapshot UpdateOverdueStatus stored.
func (s *Service) CalculateFine(ctx context.Context, borrowID uuid.UUID) (float64, error) {
	record, err := s.repo.GetRecord(ctx, borrowID)
	if err != nil {
		return 0, err
	}

	if record.Status == StatusReturned || !record.Overdue {
		return 0, nil
	}

	return s.lateFee(record), nil
}

// PayFine settles the fine on a borrow record. The payment must cover
// the full recorded fine amount; partial payments go through the fine
// ledger API directly.
func (s *Service) PayFine(ctx context.Context, borrowID uuid.UUID, amount float64, method fine.Method) (*Response, error) {
	record, err := s.repo.GetRecord(ctx, borrowID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return failureResponse("Borrow record not found", "", ""), nil
		}

		return nil, err
	}

	if amount < record.FineAmount {
		return fineFailureResponse(
			"Payment amount is less than the fine amount",
			record.BookISBN, record.Borrower, record.FineAmount), nil
	}

	userFines, err := s.fines.UserFines(ctx, record.Borrower)
	if err != nil {
		return nil, err
	}

	var target *fine.Fine

	for _, f := range userFines {
		if f.BorrowID == borrowID {
			target = f
			break
		}
	}

	if target == nil {
		return fineFailureResponse("No fine record found for this borrow",
			record.BookISBN, record.Borrower, amount), nil
	}

	updated, err := s.fines.ProcessPayment(ctx, target.ID, amount, method)
	if err != nil {
		return s.translateLedgerError(err, record, amount)
	}

	record.FineAmount = updated.RemainingAmount
	if updated.Status == fine.StatusPaid {
		record.Overdue = false
	}

	if err := s.repo.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	slog.Info("fine paid", "borrow_id", borrowID, "amount", amount,
		"remaining", updated.RemainingAmount)

	return successResponse(record, "Fine paid successfully"), nil
}

// translateLedgerError converts the fine ledger's typed errors into the
// structured responses the boundary layer renders. Unknown errors are
// infrastructure faults and propagate.
func (s *Service) translateLedgerError(err error, record *Record, amount float64) (*Response, error) {
	var overpayment *fine.OverpaymentError
	if errors.As(err, &overpayment) {
		return fineFailureResponse(overpayment.Error(),
			record.BookISBN, record.Borrower, overpayment.Remaining), nil
	}

	switch {
	case errors.Is(err, fine.ErrAlreadyPaid):
		return failureResponse("Fine has already been paid",
			record.BookISBN, record.Borrower), nil
	case errors.Is(err, fine.ErrInvalidAmount):
		return failureResponse("Payment amount must be greater than zero",
			record.BookISBN, record.Borrower), nil
	case errors.Is(err, fine.ErrFineNotFound):
		return failureResponse("No fine record found for this borrow",
			record.BookISBN, record.Borrower), nil
	}

	return nil, err
}

// lateFee is the raw overdue charge: whole days past due times the
// daily rate, floored at zero.
func (s *Service) lateFee(record *Record) float64 {
	daysOverdue := int(s.now().Sub(record.DueDate).Hours() / 24)
	if daysOverdue < 0 {
		return 0
	}

	return float64(daysOverdue) * s.policy.FinePerDay
}

// unpaidFines sums the recorded fine amounts across the borrower's
// active loans.
func (s *Service) unpaidFines(ctx context.Context, borrower string) (float64, error) {
	records, err := s.repo.FindByBorrowerAndStatus(ctx, borrower, StatusBorrowed)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, record := range records {
		total += record.FineAmount
	}

	return total, nil
}

func (s *Service) notify(kind notification.Kind, recipient string, params map[string]string) {
	if s.notifier != nil {
		s.notifier.Enqueue(kind, recipient, params)
	}
}
