package borrowing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/apostle/librarium/internal/borrowing"
	"github.com/apostle/librarium/internal/catalog"
	"github.com/apostle/librarium/internal/fine"
	"github.com/apostle/librarium/internal/notification"
)

type stubNotifier struct {
	kinds []notification.Kind
}

func (s *stubNotifier) Enqueue(kind notification.Kind, _ string, _ map[string]string) {
	s.kinds = append(s.kinds, kind)
}

type engineMocks struct {
	repo     *borrowing.MockRepository
	books    *borrowing.MockBookCatalog
	accounts *borrowing.MockAccountLookup
	fines    *borrowing.MockFineLedger
	notifier *stubNotifier
}

func newEngine(t *testing.T, now time.Time) (*borrowing.Service, engineMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := engineMocks{
		repo:     borrowing.NewMockRepository(ctrl),
		books:    borrowing.NewMockBookCatalog(ctrl),
		accounts: borrowing.NewMockAccountLookup(ctrl),
		fines:    borrowing.NewMockFineLedger(ctrl),
		notifier: &stubNotifier{},
	}

	svc := borrowing.NewService(m.repo, m.books, m.accounts, m.fines, m.notifier, borrowing.DefaultPolicy()).
		WithClock(func() time.Time { return now })

	return svc, m
}

func TestService_Borrow(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name        string
		setupMock   func(m engineMocks)
		wantSuccess bool
		wantMessage string
		wantErr     bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m engineMocks) {
				m.repo.EXPECT().
					FindByBorrowerAndStatus(gomock.Any(), "reader@example.com", borrowing.StatusBorrowed).
					Return(nil, nil)
				m.books.EXPECT().
					Get(gomock.Any(), "9780134190440").
					Return(&catalog.Book{ISBN: "9780134190440", Title: "The Go Programming Language"}, nil)
				m.repo.EXPECT().
					FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
					Return(nil, nil)
				m.accounts.EXPECT().
					ExistsByEmail(gomock.Any(), "reader@example.com").
					Return(true, nil)
				m.repo.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record *borrowing.Record) error {
						record.ID = uuid.New()
						return nil
					})
			},
			wantSuccess: true,
			wantMessage: "Book borrowed successfully",
		},
		{
			name: "FineCeilingBlocks",
			setupMock: func(m engineMocks) {
				m.repo.EXPECT().
					FindByBorrowerAndStatus(gomock.Any(), "reader@example.com", borrowing.StatusBorrowed).
					Return([]*borrowing.Record{
						{FineAmount: 600},
						{FineAmount: 400},
					}, nil)
			},
			wantSuccess: false,
			wantMessage: "Cannot borrow book. Please pay your outstanding fines: $1000.00",
		},
		{
			name: "BookNotFound",
			setupMock: func(m engineMocks) {
				m.repo.EXPECT().
					FindByBorrowerAndStatus(gomock.Any(), "reader@example.com", borrowing.StatusBorrowed).
					Return(nil, nil)
				m.books.EXPECT().
					Get(gomock.Any(), "9780134190440").
					Return(nil, catalog.ErrNotFound)
			},
			wantSuccess: false,
			wantMessage: "Book with ISBN 9780134190440 not found",
		},
		{
			name: "AlreadyBorrowed",
			setupMock: func(m engineMocks) {
				m.repo.EXPECT().
					FindByBorrowerAndStatus(gomock.Any(), "reader@example.com", borrowing.StatusBorrowed).
					Return(nil, nil)
				m.books.EXPECT().
					Get(gomock.Any(), "9780134190440").
					Return(&catalog.Book{ISBN: "9780134190440"}, nil)
				m.repo.EXPECT().
					FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
					Return([]*borrowing.Record{{ID: uuid.New()}}, nil)
			},
			wantSuccess: false,
			wantMessage: "Book is not available for borrowing",
		},
		{
			name: "UnknownBorrower",
			setupMock: func(m engineMocks) {
				m.repo.EXPECT().
					FindByBorrowerAndStatus(gomock.Any(), "reader@example.com", borrowing.StatusBorrowed).
					Return(nil, nil)
				m.books.EXPECT().
					Get(gomock.Any(), "9780134190440").
					Return(&catalog.Book{ISBN: "9780134190440"}, nil)
				m.repo.EXPECT().
					FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
					Return(nil, nil)
				m.accounts.EXPECT().
					ExistsByEmail(gomock.Any(), "reader@example.com").
					Return(false, nil)
			},
			wantSuccess: false,
			wantMessage: "User not found",
		},
		{
			name: "RepoError",
			setupMock: func(m engineMocks) {
				m.repo.EXPECT().
					FindByBorrowerAndStatus(gomock.Any(), "reader@example.com", borrowing.StatusBorrowed).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newEngine(t, now)
			tt.setupMock(m)

			got, err := svc.Borrow(context.Background(), "9780134190440", "reader@example.com")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, got.Success)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestService_Borrow_SetsDueDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, m := newEngine(t, now)

	m.repo.EXPECT().
		FindByBorrowerAndStatus(gomock.Any(), "reader@example.com", borrowing.StatusBorrowed).
		Return(nil, nil)
	m.books.EXPECT().
		Get(gomock.Any(), "9780134190440").
		Return(&catalog.Book{ISBN: "9780134190440", Title: "The Go Programming Language"}, nil)
	m.repo.EXPECT().
		FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
		Return(nil, nil)
	m.accounts.EXPECT().
		ExistsByEmail(gomock.Any(), "reader@example.com").
		Return(true, nil)

	var created *borrowing.Record

	m.repo.EXPECT().
		CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *borrowing.Record) error {
			record.ID = uuid.New()
			created = record
			return nil
		})

	got, err := svc.Borrow(context.Background(), "9780134190440", "reader@example.com")
	require.NoError(t, err)
	require.True(t, got.Success)

	assert.Equal(t, now, created.BorrowDate)
	assert.Equal(t, now.AddDate(0, 0, 7), created.DueDate)
	assert.Equal(t, borrowing.StatusBorrowed, created.Status)
	assert.False(t, created.Overdue)
	assert.Zero(t, created.FineAmount)
	assert.Equal(t, []notification.Kind{notification.KindBorrowConfirmed}, m.notifier.kinds)
}

func TestService_Return(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	activeRecord := func(due time.Time) *borrowing.Record {
		return &borrowing.Record{
			ID:         uuid.New(),
			BookISBN:   "9780134190440",
			Borrower:   "reader@example.com",
			BorrowDate: due.AddDate(0, 0, -7),
			DueDate:    due,
			Status:     borrowing.StatusBorrowed,
		}
	}

	t.Run("NotBorrowed", func(t *testing.T) {
		svc, m := newEngine(t, now)

		m.repo.EXPECT().
			FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
			Return(nil, nil)

		got, err := svc.Return(context.Background(), "9780134190440", "reader@example.com")
		require.NoError(t, err)
		assert.False(t, got.Success)
		assert.Equal(t, "Book is not currently borrowed", got.Message)
	})

	t.Run("OnTime", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := activeRecord(now.AddDate(0, 0, 2))

		m.repo.EXPECT().
			FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
			Return([]*borrowing.Record{record}, nil)
		m.books.EXPECT().
			Get(gomock.Any(), "9780134190440").
			Return(&catalog.Book{ISBN: "9780134190440", Title: "The Go Programming Language"}, nil)
		m.repo.EXPECT().
			UpdateRecord(gomock.Any(), record).
			Return(nil)

		got, err := svc.Return(context.Background(), "9780134190440", "reader@example.com")
		require.NoError(t, err)
		assert.True(t, got.Success)
		assert.Equal(t, "Book returned successfully", got.Message)
		assert.Equal(t, borrowing.StatusReturned, record.Status)
		require.NotNil(t, record.ReturnDate)
		assert.Equal(t, now, *record.ReturnDate)
		assert.Equal(t, []notification.Kind{notification.KindReturnConfirmed}, m.notifier.kinds)
	})

	t.Run("OverdueBlocksAndCreatesFine", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := activeRecord(now.AddDate(0, 0, -3))

		m.repo.EXPECT().
			FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
			Return([]*borrowing.Record{record}, nil)
		m.fines.EXPECT().
			Create(gomock.Any(), record.ID, 30.0).
			Return(&fine.Fine{ID: uuid.New(), Amount: 30, RemainingAmount: 30}, nil)
		m.repo.EXPECT().
			UpdateRecord(gomock.Any(), record).
			Return(nil)

		got, err := svc.Return(context.Background(), "9780134190440", "reader@example.com")
		require.NoError(t, err)
		assert.False(t, got.Success)
		assert.Equal(t, "Please pay the overdue fine before returning the book", got.Message)
		require.NotNil(t, got.FineAmount)
		assert.Equal(t, 30.0, *got.FineAmount)
		assert.True(t, record.Overdue)
		assert.Equal(t, 30.0, record.FineAmount)
	})

	t.Run("OverdueWithExistingUnpaidFine", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := activeRecord(now.AddDate(0, 0, -3))

		m.repo.EXPECT().
			FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
			Return([]*borrowing.Record{record}, nil)
		m.fines.EXPECT().
			Create(gomock.Any(), record.ID, 30.0).
			Return(nil, fine.ErrDuplicateFine)
		m.fines.EXPECT().
			FineByBorrowID(gomock.Any(), record.ID).
			Return(&fine.Fine{Status: fine.StatusPending, RemainingAmount: 20}, nil)
		m.repo.EXPECT().
			UpdateRecord(gomock.Any(), record).
			Return(nil)

		got, err := svc.Return(context.Background(), "9780134190440", "reader@example.com")
		require.NoError(t, err)
		assert.False(t, got.Success)
		require.NotNil(t, got.FineAmount)
		assert.Equal(t, 20.0, *got.FineAmount)
	})

	t.Run("OverdueWithPaidFineProceeds", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := activeRecord(now.AddDate(0, 0, -3))

		m.repo.EXPECT().
			FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
			Return([]*borrowing.Record{record}, nil)
		m.fines.EXPECT().
			Create(gomock.Any(), record.ID, 30.0).
			Return(nil, fine.ErrDuplicateFine)
		m.fines.EXPECT().
			FineByBorrowID(gomock.Any(), record.ID).
			Return(&fine.Fine{Status: fine.StatusPaid, RemainingAmount: 0}, nil)
		m.books.EXPECT().
			Get(gomock.Any(), "9780134190440").
			Return(&catalog.Book{ISBN: "9780134190440", Title: "The Go Programming Language"}, nil)
		m.repo.EXPECT().
			UpdateRecord(gomock.Any(), record).
			Return(nil)

		got, err := svc.Return(context.Background(), "9780134190440", "reader@example.com")
		require.NoError(t, err)
		assert.True(t, got.Success)
		assert.Equal(t, borrowing.StatusReturned, record.Status)
	})
}

func TestService_UpdateOverdueStatus(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("FlagsAndCharges", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := &borrowing.Record{
			ID:       uuid.New(),
			BookISBN: "9780134190440",
			Borrower: "reader@example.com",
			DueDate:  now.AddDate(0, 0, -2),
			Status:   borrowing.StatusBorrowed,
		}

		m.repo.EXPECT().
			FindByStatusAndDueBefore(gomock.Any(), borrowing.StatusBorrowed, now).
			Return([]*borrowing.Record{record}, nil)
		m.fines.EXPECT().
			Create(gomock.Any(), record.ID, 20.0).
			Return(&fine.Fine{ID: uuid.New()}, nil)
		m.repo.EXPECT().
			UpdateRecord(gomock.Any(), record).
			Return(nil)

		require.NoError(t, svc.UpdateOverdueStatus(context.Background()))
		assert.True(t, record.Overdue)
		assert.Equal(t, 20.0, record.FineAmount)
		assert.Equal(t, []notification.Kind{notification.KindOverdue}, m.notifier.kinds)
	})

	t.Run("SecondRunSkipsFlagged", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := &borrowing.Record{
			ID:         uuid.New(),
			DueDate:    now.AddDate(0, 0, -2),
			Status:     borrowing.StatusBorrowed,
			Overdue:    true,
			FineAmount: 20,
		}

		m.repo.EXPECT().
			FindByStatusAndDueBefore(gomock.Any(), borrowing.StatusBorrowed, now).
			Return([]*borrowing.Record{record}, nil)

		require.NoError(t, svc.UpdateOverdueStatus(context.Background()))
		assert.Equal(t, 20.0, record.FineAmount)
		assert.Empty(t, m.notifier.kinds)
	})

	t.Run("ToleratesExistingFine", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := &borrowing.Record{
			ID:      uuid.New(),
			DueDate: now.AddDate(0, 0, -2),
			Status:  borrowing.StatusBorrowed,
		}

		m.repo.EXPECT().
			FindByStatusAndDueBefore(gomock.Any(), borrowing.StatusBorrowed, now).
			Return([]*borrowing.Record{record}, nil)
		m.fines.EXPECT().
			Create(gomock.Any(), record.ID, 20.0).
			Return(nil, fine.ErrDuplicateFine)
		m.repo.EXPECT().
			UpdateRecord(gomock.Any(), record).
			Return(nil)

		require.NoError(t, svc.UpdateOverdueStatus(context.Background()))
		assert.True(t, record.Overdue)
	})

	t.Run("OneFailureDoesNotStopScan", func(t *testing.T) {
		svc, m := newEngine(t, now)
		bad := &borrowing.Record{ID: uuid.New(), DueDate: now.AddDate(0, 0, -1), Status: borrowing.StatusBorrowed}
		good := &borrowing.Record{ID: uuid.New(), DueDate: now.AddDate(0, 0, -1), Status: borrowing.StatusBorrowed}

		m.repo.EXPECT().
			FindByStatusAndDueBefore(gomock.Any(), borrowing.StatusBorrowed, now).
			Return([]*borrowing.Record{bad, good}, nil)
		m.fines.EXPECT().
			Create(gomock.Any(), bad.ID, 10.0).
			Return(nil, errors.New("db error"))
		m.fines.EXPECT().
			Create(gomock.Any(), good.ID, 10.0).
			Return(&fine.Fine{ID: uuid.New()}, nil)
		m.repo.EXPECT().
			UpdateRecord(gomock.Any(), good).
			Return(nil)

		require.NoError(t, svc.UpdateOverdueStatus(context.Background()))
		assert.False(t, bad.Overdue)
		assert.True(t, good.Overdue)
	})
}

func TestService_CalculateFine(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	borrowID := uuid.New()

	type testCase struct {
		name   string
		record *borrowing.Record
		want   float64
	}

	tests := []testCase{
		{
			name:   "ReturnedRecordOwesNothing",
			record: &borrowing.Record{Status: borrowing.StatusReturned, Overdue: true, DueDate: now.AddDate(0, 0, -5)},
			want:   0,
		},
		{
			name:   "UnflaggedRecordOwesNothing",
			record: &borrowing.Record{Status: borrowing.StatusBorrowed, DueDate: now.AddDate(0, 0, -5)},
			want:   0,
		},
		{
			name:   "FlaggedRecordAccruesDaily",
			record: &borrowing.Record{Status: borrowing.StatusBorrowed, Overdue: true, DueDate: now.AddDate(0, 0, -5)},
			want:   50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newEngine(t, now)

			m.repo.EXPECT().
				GetRecord(gomock.Any(), borrowID).
				Return(tt.record, nil)

			got, err := svc.CalculateFine(context.Background(), borrowID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_PayFine(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	borrowID := uuid.New()
	fineID := uuid.New()

	overdueRecord := func() *borrowing.Record {
		return &borrowing.Record{
			ID:         borrowID,
			BookISBN:   "9780134190440",
			Borrower:   "reader@example.com",
			DueDate:    now.AddDate(0, 0, -3),
			Status:     borrowing.StatusBorrowed,
			Overdue:    true,
			FineAmount: 30,
		}
	}

	t.Run("FullPaymentClearsFlag", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := overdueRecord()

		m.repo.EXPECT().
			GetRecord(gomock.Any(), borrowID).
			Return(record, nil)
		m.fines.EXPECT().
			UserFines(gomock.Any(), "reader@example.com").
			Return([]*fine.Fine{{ID: fineID, BorrowID: borrowID, RemainingAmount: 30}}, nil)
		m.fines.EXPECT().
			ProcessPayment(gomock.Any(), fineID, 30.0, fine.MethodCash).
			Return(&fine.Fine{ID: fineID, BorrowID: borrowID, Status: fine.StatusPaid, RemainingAmount: 0}, nil)
		m.repo.EXPECT().
			UpdateRecord(gomock.Any(), record).
			Return(nil)

		got, err := svc.PayFine(context.Background(), borrowID, 30, fine.MethodCash)
		require.NoError(t, err)
		assert.True(t, got.Success)
		assert.Equal(t, "Fine paid successfully", got.Message)
		assert.False(t, record.Overdue)
		assert.Zero(t, record.FineAmount)
	})

	t.Run("RecordNotFound", func(t *testing.T) {
		svc, m := newEngine(t, now)

		m.repo.EXPECT().
			GetRecord(gomock.Any(), borrowID).
			Return(nil, borrowing.ErrRecordNotFound)

		got, err := svc.PayFine(context.Background(), borrowID, 30, fine.MethodCash)
		require.NoError(t, err)
		assert.False(t, got.Success)
		assert.Equal(t, "Borrow record not found", got.Message)
	})

	t.Run("InsufficientAmount", func(t *testing.T) {
		svc, m := newEngine(t, now)

		m.repo.EXPECT().
			GetRecord(gomock.Any(), borrowID).
			Return(overdueRecord(), nil)

		got, err := svc.PayFine(context.Background(), borrowID, 10, fine.MethodCash)
		require.NoError(t, err)
		assert.False(t, got.Success)
		assert.Equal(t, "Payment amount is less than the fine amount", got.Message)
		require.NotNil(t, got.FineAmount)
		assert.Equal(t, 30.0, *got.FineAmount)
	})

	t.Run("NoFineOnRecord", func(t *testing.T) {
		svc, m := newEngine(t, now)

		m.repo.EXPECT().
			GetRecord(gomock.Any(), borrowID).
			Return(overdueRecord(), nil)
		m.fines.EXPECT().
			UserFines(gomock.Any(), "reader@example.com").
			Return(nil, nil)

		got, err := svc.PayFine(context.Background(), borrowID, 30, fine.MethodCash)
		require.NoError(t, err)
		assert.False(t, got.Success)
		assert.Equal(t, "No fine record found for this borrow", got.Message)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		svc, m := newEngine(t, now)

		m.repo.EXPECT().
			GetRecord(gomock.Any(), borrowID).
			Return(overdueRecord(), nil)
		m.fines.EXPECT().
			UserFines(gomock.Any(), "reader@example.com").
			Return([]*fine.Fine{{ID: fineID, BorrowID: borrowID}}, nil)
		m.fines.EXPECT().
			ProcessPayment(gomock.Any(), fineID, 30.0, fine.MethodCash).
			Return(nil, fine.ErrAlreadyPaid)

		got, err := svc.PayFine(context.Background(), borrowID, 30, fine.MethodCash)
		require.NoError(t, err)
		assert.False(t, got.Success)
		assert.Equal(t, "Fine has already been paid", got.Message)
	})

	t.Run("Overpayment", func(t *testing.T) {
		svc, m := newEngine(t, now)
		record := overdueRecord()
		record.FineAmount = 30

		m.repo.EXPECT().
			GetRecord(gomock.Any(), borrowID).
			Return(record, nil)
		m.fines.EXPECT().
			UserFines(gomock.Any(), "reader@example.com").
			Return([]*fine.Fine{{ID: fineID, BorrowID: borrowID, RemainingAmount: 30}}, nil)
		m.fines.EXPECT().
			ProcessPayment(gomock.Any(), fineID, 50.0, fine.MethodCash).
			Return(nil, &fine.OverpaymentError{Amount: 50, Remaining: 30})

		got, err := svc.PayFine(context.Background(), borrowID, 50, fine.MethodCash)
		require.NoError(t, err)
		assert.False(t, got.Success)
		require.NotNil(t, got.FineAmount)
		assert.Equal(t, 30.0, *got.FineAmount)
	})
}

func TestService_IsBookAvailable(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Available", func(t *testing.T) {
		svc, m := newEngine(t, now)

		m.books.EXPECT().
			Get(gomock.Any(), "9780134190440").
			Return(&catalog.Book{ISBN: "9780134190440"}, nil)
		m.repo.EXPECT().
			FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
			Return(nil, nil)

		available, err := svc.IsBookAvailable(context.Background(), "9780134190440")
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("OnLoan", func(t *testing.T) {
		svc, m := newEngine(t, now)

		m.books.EXPECT().
			Get(gomock.Any(), "9780134190440").
			Return(&catalog.Book{ISBN: "9780134190440"}, nil)
		m.repo.EXPECT().
			FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
			Return([]*borrowing.Record{{ID: uuid.New()}}, nil)

		available, err := svc.IsBookAvailable(context.Background(), "9780134190440")
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("UnknownBook", func(t *testing.T) {
		svc, m := newEngine(t, now)

		m.books.EXPECT().
			Get(gomock.Any(), "9780134190440").
			Return(nil, catalog.ErrNotFound)

		_, err := svc.IsBookAvailable(context.Background(), "9780134190440")
		assert.Error(t, err)
	})
}

// Overdue loans must be payable and then returnable in sequence: the
// scan flags the loan, the first return attempt is blocked, payment
// settles the fine, and the second return attempt succeeds.
func TestService_OverdueLifecycle(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newEngine(t, now)

	record := &borrowing.Record{
		ID:       uuid.New(),
		BookISBN: "9780134190440",
		Borrower: "reader@example.com",
		DueDate:  now.AddDate(0, 0, -2),
		Status:   borrowing.StatusBorrowed,
	}
	fineID := uuid.New()

	// Scan flags the record and opens a 2-day fine.
	m.repo.EXPECT().
		FindByStatusAndDueBefore(gomock.Any(), borrowing.StatusBorrowed, now).
		Return([]*borrowing.Record{record}, nil)
	m.fines.EXPECT().
		Create(gomock.Any(), record.ID, 20.0).
		Return(&fine.Fine{ID: fineID, BorrowID: record.ID, Amount: 20, RemainingAmount: 20}, nil)
	m.repo.EXPECT().UpdateRecord(gomock.Any(), record).Return(nil)

	require.NoError(t, svc.UpdateOverdueStatus(context.Background()))
	require.True(t, record.Overdue)

	// Return is blocked while the fine is unpaid.
	m.repo.EXPECT().
		FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
		Return([]*borrowing.Record{record}, nil)
	m.fines.EXPECT().
		Create(gomock.Any(), record.ID, 20.0).
		Return(nil, fine.ErrDuplicateFine)
	m.fines.EXPECT().
		FineByBorrowID(gomock.Any(), record.ID).
		Return(&fine.Fine{ID: fineID, Status: fine.StatusPending, RemainingAmount: 20}, nil)
	m.repo.EXPECT().UpdateRecord(gomock.Any(), record).Return(nil)

	blocked, err := svc.Return(context.Background(), "9780134190440", "reader@example.com")
	require.NoError(t, err)
	require.False(t, blocked.Success)

	// Payment settles the fine and clears the flag.
	m.repo.EXPECT().GetRecord(gomock.Any(), record.ID).Return(record, nil)
	m.fines.EXPECT().
		UserFines(gomock.Any(), "reader@example.com").
		Return([]*fine.Fine{{ID: fineID, BorrowID: record.ID, RemainingAmount: 20}}, nil)
	m.fines.EXPECT().
		ProcessPayment(gomock.Any(), fineID, 20.0, fine.MethodCard).
		Return(&fine.Fine{ID: fineID, Status: fine.StatusPaid, RemainingAmount: 0}, nil)
	m.repo.EXPECT().UpdateRecord(gomock.Any(), record).Return(nil)

	paid, err := svc.PayFine(context.Background(), record.ID, 20, fine.MethodCard)
	require.NoError(t, err)
	require.True(t, paid.Success)
	require.False(t, record.Overdue)

	// Second return attempt goes through.
	m.repo.EXPECT().
		FindByISBNAndStatus(gomock.Any(), "9780134190440", borrowing.StatusBorrowed).
		Return([]*borrowing.Record{record}, nil)
	m.fines.EXPECT().
		Create(gomock.Any(), record.ID, 20.0).
		Return(nil, fine.ErrDuplicateFine)
	m.fines.EXPECT().
		FineByBorrowID(gomock.Any(), record.ID).
		Return(&fine.Fine{ID: fineID, Status: fine.StatusPaid, RemainingAmount: 0}, nil)
	m.books.EXPECT().
		Get(gomock.Any(), "9780134190440").
		Return(&catalog.Book{ISBN: "9780134190440", Title: "The Go Programming Language"}, nil)
	m.repo.EXPECT().UpdateRecord(gomock.Any(), record).Return(nil)

	returned, err := svc.Return(context.Background(), "9780134190440", "reader@example.com")
	require.NoError(t, err)
	assert.True(t, returned.Success)
	assert.Equal(t, borrowing.StatusReturned, record.Status)
}
