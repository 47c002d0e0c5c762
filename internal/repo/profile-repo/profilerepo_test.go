package profilerepo

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

var profileCols = []string{
	"id", "email", "password_hash", "first_name", "last_name", "address", "phone",
	"is_admin", "available_balance", "invested_amount", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func profileRow(id uuid.UUID, balance, invested float64) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(profileCols).
		AddRow(id, "marie@wearshops.fr", "hash", "Marie", "Dupont", "12 rue de la Paix", "+33612345678",
			false, balance, invested, now, now)
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
			name: "Existing profile",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).
					WithArgs(id).
					WillReturnRows(profileRow(id, 100, 50))
			},
			found: true,
		},
		{
			name: "Missing profile returns nil",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).
					WithArgs(id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			profile, err := repo.FindByID(context.Background(), id)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, profile)
				assert.Equal(t, id, profile.ID)
			} else {
				assert.Nil(t, profile)
			}
		})
	}
}

func TestRepository_ApplyLedgerDelta(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		balanceDelta  float64
		investedDelta float64
		mockSetup     func()
		expectErr     bool
		expectNil     bool
	}{
		{
			name:          "Delta applied",
			balanceDelta:  -105,
			investedDelta: 100,
			mockSetup: func() {
				mock.ExpectQuery(`UPDATE profiles\s+SET available_balance = available_balance \+ \$1`).
					WithArgs(-105.0, 100.0, id).
					WillReturnRows(profileRow(id, 95, 100))
			},
		},
		{
			name:          "Guard rejects overdraft with no row",
			balanceDelta:  -500,
			investedDelta: 0,
			mockSetup: func() {
				mock.ExpectQuery(`UPDATE profiles\s+SET available_balance = available_balance \+ \$1`).
					WithArgs(-500.0, 0.0, id).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name:          "Database error",
			balanceDelta:  10,
			investedDelta: 0,
			mockSetup: func() {
				mock.ExpectQuery(`UPDATE profiles\s+SET available_balance = available_balance \+ \$1`).
					WithArgs(10.0, 0.0, id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			profile, err := repo.ApplyLedgerDelta(context.Background(), id, tt.balanceDelta, tt.investedDelta)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, profile)
			} else {
				assert.NotNil(t, profile)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO profiles`).
		WithArgs("marie@wearshops.fr", "hash", "Marie", "Dupont", "12 rue de la Paix", "+33612345678", false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	profile, err := repo.Create(context.Background(), &domain.Profile{
		Email:        "marie@wearshops.fr",
		PasswordHash: "hash",
		FirstName:    "Marie",
		LastName:     "Dupont",
		Address:      "12 rue de la Paix",
		Phone:        "+33612345678",
	})
	assert.NoError(t, err)
	assert.Equal(t, id, profile.ID)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	rows := profileRow(uuid.New(), 100, 0)
	now := time.Now()
	rows.AddRow(uuid.New(), "paul@wearshops.fr", "hash2", "Paul", "Martin", "", "",
		true, 0.0, 250.0, now, now)

	mock.ExpectQuery(`SELECT .+ FROM profiles ORDER BY created_at DESC`).
		WillReturnRows(rows)

	profiles, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.True(t, profiles[1].IsAdmin)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM profiles WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
}
