package projectrepo

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

var projectCols = []string{
	"id", "name", "short_description", "detailed_description", "location", "category",
	"image_url", "target_amount", "collected_amount", "min_amount", "return_rate",
	"status", "is_active", "implementation_date", "end_date", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func projectRow(id uuid.UUID, status string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(projectCols).
		AddRow(id, "Lyon boutique", "New storefront", "Full renovation of the Lyon shop", "Lyon", "retail",
			"https://cdn.wearshops.fr/lyon.jpg", 5000.0, 1250.0, 50.0, 8.5,
			status, true, (*time.Time)(nil), (*time.Time)(nil), now, now)
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
			name: "Existing project",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM order_projects WHERE id = \$1`).
					WithArgs(id).
					WillReturnRows(projectRow(id, domain.ProjectStatusCollecting))
			},
			found: true,
		},
		{
			name: "Missing project returns nil",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM order_projects WHERE id = \$1`).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM order_projects WHERE id = \$1`).
					WithArgs(id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			project, err := repo.FindByID(context.Background(), id)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, project)
				assert.Equal(t, id, project.ID)
			} else {
				assert.Nil(t, project)
			}
		})
	}
}

func TestRepository_FindInvestable(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM order_projects\s+WHERE status = \$1 AND is_active = TRUE`).
		WithArgs(domain.ProjectStatusCollecting).
		WillReturnRows(projectRow(id, domain.ProjectStatusCollecting))

	projects, err := repo.FindInvestable(context.Background())
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, domain.ProjectStatusCollecting, projects[0].Status)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()

	project := &domain.Project{
		Name:             "Lyon boutique",
		ShortDescription: "New storefront",
		Location:         "Lyon",
		Category:         "retail",
		TargetAmount:     5000,
		MinAmount:        50,
		ReturnRate:       8.5,
		Status:           domain.ProjectStatusUpcoming,
		IsActive:         true,
	}

	mock.ExpectQuery(`INSERT INTO order_projects`).
		WithArgs(project.Name, project.ShortDescription, "", project.Location, project.Category,
			"", 5000.0, 0.0, 50.0, 8.5, domain.ProjectStatusUpcoming, true,
			(*time.Time)(nil), (*time.Time)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	created, err := repo.Create(context.Background(), project)
	assert.NoError(t, err)
	assert.Equal(t, id, created.ID)
}

func TestRepository_UpdateFunding(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE order_projects\s+SET collected_amount = \$1, status = \$2`).
		WithArgs(5000.0, domain.ProjectStatusCompleted, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateFunding(context.Background(), id, 5000, domain.ProjectStatusCompleted)
	assert.NoError(t, err)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM order_projects WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
}
