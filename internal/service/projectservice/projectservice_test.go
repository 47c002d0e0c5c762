package projectservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wearshop/investmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		collected float64
		target    float64
		expected  float64
	}{
		{name: "Partial funding", collected: 1250, target: 5000, expected: 25},
		{name: "Exactly funded", collected: 5000, target: 5000, expected: 100},
		{name: "Over-subscribed clamps to 100", collected: 7500, target: 5000, expected: 100},
		{name: "Nothing collected", collected: 0, target: 5000, expected: 0},
		{name: "Zero target reports 0", collected: 1000, target: 0, expected: 0},
		{name: "Negative collected clamps to 0", collected: -50, target: 5000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Progress(tt.collected, tt.target))
		})
	}
}

func TestRemainingAmount(t *testing.T) {
	tests := []struct {
		name     string
		project  *domain.Project
		expected float64
	}{
		{
			name:     "Remaining capacity",
			project:  &domain.Project{TargetAmount: 5000, CollectedAmount: 1250},
			expected: 3750,
		},
		{
			name:     "Over-subscribed floors at zero",
			project:  &domain.Project{TargetAmount: 5000, CollectedAmount: 6000},
			expected: 0,
		},
		{
			name:     "Untouched project",
			project:  &domain.Project{TargetAmount: 5000},
			expected: 5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemainingAmount(tt.project))
		})
	}
}

func TestService_GetProject(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name: "Project found",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), projectID).
					Return(&domain.Project{ID: projectID, Name: "Atelier Lyon"}, nil)
			},
		},
		{
			name: "Project missing",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), projectID).Return(nil, nil)
			},
			expectedError: ErrProjectNotFound,
		},
		{
			name: "Repo error",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), projectID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			project, err := service.GetProject(context.Background(), projectID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, projectID, project.ID)
			}
		})
	}
}

func TestService_CreateProject(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Project) (*domain.Project, error) {
			assert.Equal(t, domain.ProjectStatusUpcoming, p.Status)
			p.ID = uuid.New()
			return p, nil
		})

	project, err := service.CreateProject(context.Background(), &domain.Project{
		Name:         "Atelier Lyon",
		TargetAmount: 5000,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, project.ID)
}

func TestService_UpdateProject(t *testing.T) {
	service, repo := NewMock(t)
	projectID := uuid.New()

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err := service.UpdateProject(context.Background(), &domain.Project{ID: projectID})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
