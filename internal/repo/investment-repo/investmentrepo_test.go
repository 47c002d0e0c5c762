package investmentrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/wearshop/investmart/internal/domain"
)

var investmentCols = []string{
	"id", "user_id", "project_id", "amount", "insurance_fee", "payment_method",
	"status", "is_cancelled", "balance_debited", "invested_credited", "provider_ref", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func investmentRow(id uuid.UUID, status string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(investmentCols).
		AddRow(id, uuid.New(), uuid.New(), 100.0, 5.0, domain.PaymentMethodBalance,
			status, false, true, true, "", now, now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()

	investment := &domain.Investment{
		UserID:           uuid.New(),
		ProjectID:        uuid.New(),
		Amount:           100,
		InsuranceFee:     5,
		PaymentMethod:    domain.PaymentMethodBalance,
		Status:           domain.TransactionStatusCompleted,
		BalanceDebited:   true,
		InvestedCredited: true,
	}

	mock.ExpectQuery(`INSERT INTO investments`).
		WithArgs(investment.UserID, investment.ProjectID, 100.0, 5.0, domain.PaymentMethodBalance,
			domain.TransactionStatusCompleted, true, true, "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	created, err := repo.Create(context.Background(), investment)
	assert.NoError(t, err)
	assert.Equal(t, id, created.ID)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing investment",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM investments WHERE id = \$1`).
					WithArgs(id).
					WillReturnRows(investmentRow(id, domain.TransactionStatusCompleted))
			},
			found: true,
		},
		{
			name: "Missing investment returns nil",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM investments WHERE id = \$1`).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM investments WHERE id = \$1`).
					WithArgs(id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			investment, err := repo.FindByID(context.Background(), id)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, investment)
			} else {
				assert.Nil(t, investment)
			}
		})
	}
}

func TestRepository_FindPendingCard(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM investments\s+WHERE status = \$1 AND payment_method = \$2`).
		WithArgs(domain.TransactionStatusPending, domain.PaymentMethodCard, uint32(100)).
		WillReturnRows(investmentRow(id, domain.TransactionStatusPending))

	pending, err := repo.FindPendingCard(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, id, pending[0].ID)
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	t.Run("Live row is cancelled and returned with its recorded effects", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`UPDATE investments\s+SET status = 'cancelled'.+WHERE id = \$1 AND is_cancelled = FALSE\s+RETURNING`).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(investmentCols).
				AddRow(id, uuid.New(), uuid.New(), 100.0, 5.0, domain.PaymentMethodBalance,
					domain.TransactionStatusCancelled, true, true, true, "", now, now))

		cancelled, err := repo.Cancel(context.Background(), id)
		assert.NoError(t, err)
		assert.True(t, cancelled.IsCancelled)
		assert.True(t, cancelled.BalanceDebited)
		assert.True(t, cancelled.InvestedCredited)
	})

	t.Run("Already cancelled row matches nothing", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE investments\s+SET status = 'cancelled'`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		cancelled, err := repo.Cancel(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, cancelled)
	})
}

func TestRepository_Complete(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	t.Run("Pending row completes and records the credit", func(t *testing.T) {
		mock.ExpectExec(`UPDATE investments\s+SET status = 'completed', invested_credited = TRUE.+WHERE id = \$1 AND status = 'pending'`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Complete(context.Background(), id)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Non-pending row matches nothing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE investments\s+SET status = 'completed'`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Complete(context.Background(), id)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_SetProviderRef(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE investments SET provider_ref = \$1`).
		WithArgs("cs_123", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetProviderRef(context.Background(), id, "cs_123")
	assert.NoError(t, err)
}

func TestRepository_SumCompletedByProject(t *testing.T) {
	repo, mock := NewMock(t)
	projectID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expected  float64
		expectErr bool
	}{
		{
			name: "Sum of completed investments",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
					WithArgs(projectID, domain.TransactionStatusCompleted).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(1250.0))
			},
			expected: 1250,
		},
		{
			name: "No investments sums to zero",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
					WithArgs(projectID, domain.TransactionStatusCompleted).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0.0))
			},
			expected: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
					WithArgs(projectID, domain.TransactionStatusCompleted).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			sum, err := repo.SumCompletedByProject(context.Background(), projectID)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, sum)
		})
	}
}
