package fine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/apostle/librarium/internal/fine"
)

func newLedger(t *testing.T, now time.Time) (*fine.Service, *fine.MockRepository, *fine.MockBorrowLookup) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := fine.NewMockRepository(ctrl)
	borrows := fine.NewMockBorrowLookup(ctrl)

	svc := fine.NewService(repo, borrows, nil).
		WithClock(func() time.Time { return now })

	return svc, repo, borrows
}

func TestService_Create(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	borrowID := uuid.New()

	type testCase struct {
		name      string
		amount    float64
		setupMock func(repo *fine.MockRepository, borrows *fine.MockBorrowLookup)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			amount: 30,
			setupMock: func(repo *fine.MockRepository, borrows *fine.MockBorrowLookup) {
				borrows.EXPECT().
					FindBorrow(gomock.Any(), borrowID).
					Return(&fine.BorrowRef{BookISBN: "9780134190440", Borrower: "reader@example.com"}, nil)
				repo.EXPECT().
					GetFineByBorrowID(gomock.Any(), borrowID).
					Return(nil, fine.ErrFineNotFound)
				repo.EXPECT().
					CreateFine(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f *fine.Fine) error {
						f.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "ZeroAmount",
			amount:  0,
			wantErr: fine.ErrInvalidAmount,
		},
		{
			name:    "NegativeAmount",
			amount:  -10,
			wantErr: fine.ErrInvalidAmount,
		},
		{
			name:   "UnknownBorrowRecord",
			amount: 30,
			setupMock: func(repo *fine.MockRepository, borrows *fine.MockBorrowLookup) {
				borrows.EXPECT().
					FindBorrow(gomock.Any(), borrowID).
					Return(nil, fine.ErrBorrowRecordNotFound)
			},
			wantErr: fine.ErrBorrowRecordNotFound,
		},
		{
			name:   "DuplicateFine",
			amount: 30,
			setupMock: func(repo *fine.MockRepository, borrows *fine.MockBorrowLookup) {
				borrows.EXPECT().
					FindBorrow(gomock.Any(), borrowID).
					Return(&fine.BorrowRef{BookISBN: "9780134190440", Borrower: "reader@example.com"}, nil)
				repo.EXPECT().
					GetFineByBorrowID(gomock.Any(), borrowID).
					Return(&fine.Fine{ID: uuid.New()}, nil)
			},
			wantErr: fine.ErrDuplicateFine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, borrows := newLedger(t, now)
			if tt.setupMock != nil {
				tt.setupMock(repo, borrows)
			}

			got, err := svc.Create(context.Background(), borrowID, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, borrowID, got.BorrowID)
			assert.Equal(t, "reader@example.com", got.Borrower)
			assert.Equal(t, tt.amount, got.Amount)
			assert.Equal(t, tt.amount, got.RemainingAmount)
			assert.Equal(t, fine.StatusPending, got.Status)
			assert.Equal(t, now, got.CreatedDate)
			assert.Empty(t, got.Payments)
		})
	}
}

func TestService_ProcessPayment(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	fineID := uuid.New()

	pendingFine := func(remaining float64) *fine.Fine {
		return &fine.Fine{
			ID:              fineID,
			BorrowID:        uuid.New(),
			Borrower:        "reader@example.com",
			Amount:          30,
			RemainingAmount: remaining,
			Status:          fine.StatusPending,
		}
	}

	t.Run("PartialPaymentStaysPending", func(t *testing.T) {
		svc, repo, _ := newLedger(t, now)
		f := pendingFine(30)

		repo.EXPECT().GetFine(gomock.Any(), fineID).Return(f, nil)
		repo.EXPECT().
			UpdateFine(gomock.Any(), f, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *fine.Fine, payment *fine.Payment) error {
				assert.Equal(t, 10.0, payment.Amount)
				assert.Equal(t, fine.MethodCash, payment.Method)
				assert.Equal(t, fine.PaymentCompleted, payment.Status)
				assert.NotEmpty(t, payment.TransactionReference)
				return nil
			})
		repo.EXPECT().GetFine(gomock.Any(), fineID).Return(f, nil)

		got, err := svc.ProcessPayment(context.Background(), fineID, 10, fine.MethodCash)
		require.NoError(t, err)
		assert.Equal(t, 20.0, got.RemainingAmount)
		assert.Equal(t, fine.StatusPending, got.Status)
		assert.Len(t, got.Payments, 1)
	})

	t.Run("ExactPaymentFlipsToPaid", func(t *testing.T) {
		svc, repo, _ := newLedger(t, now)
		f := pendingFine(30)

		repo.EXPECT().GetFine(gomock.Any(), fineID).Return(f, nil)
		repo.EXPECT().UpdateFine(gomock.Any(), f, gomock.Any()).Return(nil)
		repo.EXPECT().GetFine(gomock.Any(), fineID).Return(f, nil)

		got, err := svc.ProcessPayment(context.Background(), fineID, 30, fine.MethodCard)
		require.NoError(t, err)
		assert.Zero(t, got.RemainingAmount)
		assert.Equal(t, fine.StatusPaid, got.Status)
	})

	t.Run("Overpayment", func(t *testing.T) {
		svc, repo, _ := newLedger(t, now)

		repo.EXPECT().GetFine(gomock.Any(), fineID).Return(pendingFine(20), nil)

		_, err := svc.ProcessPayment(context.Background(), fineID, 50, fine.MethodCash)

		var overpayment *fine.OverpaymentError
		require.ErrorAs(t, err, &overpayment)
		assert.Equal(t, 50.0, overpayment.Amount)
		assert.Equal(t, 20.0, overpayment.Remaining)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		svc, repo, _ := newLedger(t, now)
		f := pendingFine(0)
		f.Status = fine.StatusPaid

		repo.EXPECT().GetFine(gomock.Any(), fineID).Return(f, nil)

		_, err := svc.ProcessPayment(context.Background(), fineID, 10, fine.MethodCash)
		assert.ErrorIs(t, err, fine.ErrAlreadyPaid)
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		svc, _, _ := newLedger(t, now)

		_, err := svc.ProcessPayment(context.Background(), fineID, 0, fine.MethodCash)
		assert.ErrorIs(t, err, fine.ErrInvalidAmount)
	})

	t.Run("UnknownFine", func(t *testing.T) {
		svc, repo, _ := newLedger(t, now)

		repo.EXPECT().GetFine(gomock.Any(), fineID).Return(nil, fine.ErrFineNotFound)

		_, err := svc.ProcessPayment(context.Background(), fineID, 10, fine.MethodCash)
		assert.ErrorIs(t, err, fine.ErrFineNotFound)
	})
}

func TestService_UserFines(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("EmptyEmail", func(t *testing.T) {
		svc, _, _ := newLedger(t, now)

		_, err := svc.UserFines(context.Background(), "  ")
		assert.ErrorIs(t, err, fine.ErrInvalidInput)
	})

	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := newLedger(t, now)

		repo.EXPECT().
			ListFinesByBorrower(gomock.Any(), "reader@example.com").
			Return([]*fine.Fine{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

		got, err := svc.UserFines(context.Background(), "reader@example.com")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("RepoError", func(t *testing.T) {
		svc, repo, _ := newLedger(t, now)

		repo.EXPECT().
			ListFinesByBorrower(gomock.Any(), "reader@example.com").
			Return(nil, errors.New("db error"))

		_, err := svc.UserFines(context.Background(), "reader@example.com")
		assert.Error(t, err)
	})
}

func TestService_RemainingAmount(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	fineID := uuid.New()

	svc, repo, _ := newLedger(t, now)

	repo.EXPECT().
		GetFine(gomock.Any(), fineID).
		Return(&fine.Fine{ID: fineID, RemainingAmount: 12.5}, nil)

	got, err := svc.RemainingAmount(context.Background(), fineID)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)
}
