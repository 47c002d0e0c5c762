package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	reg := Registration{
		Email:     "marie@wearshops.fr",
		Password:  "secret123",
		FirstName: "Marie",
		LastName:  "Dupont",
		Address:   "12 rue de la Paix, Paris",
		Phone:     "+33612345678",
	}

	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, hashService *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name: "Successful registration",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), reg.Email).Return(nil, nil)
				hashService.EXPECT().HashPassword(reg.Password).Return("hashedpassword", nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
						assert.Equal(t, "hashedpassword", profile.PasswordHash)
						assert.False(t, profile.IsAdmin)
						assert.Equal(t, 0.0, profile.AvailableBalance)
						profile.ID = uuid.New()
						return profile, nil
					})
			},
		},
		{
			name: "Email already taken",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), reg.Email).
					Return(&domain.Profile{Email: reg.Email}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			// A concurrent registration can commit between the lookup and the
			// insert; the unique index on email surfaces as a conflict, not a
			// database failure.
			name: "Concurrent duplicate hits the unique index",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), reg.Email).Return(nil, nil)
				hashService.EXPECT().HashPassword(reg.Password).Return("hashedpassword", nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).
					Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "profiles_email_key"})
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Hashing failure",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), reg.Email).Return(nil, nil)
				hashService.EXPECT().HashPassword(reg.Password).Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hashService, _ := NewMock(t)
			tt.prepareMock(repo, hashService)

			profile, err := service.Register(context.Background(), reg)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, reg.Email, profile.Email)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	email := "marie@wearshops.fr"

	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, hashService *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), email).
					Return(&domain.Profile{Email: email, PasswordHash: "hashedpassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "secret123").Return(true)
			},
		},
		{
			name: "Unknown email",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), email).Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func(repo *MockRepo, hashService *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), email).
					Return(&domain.Profile{Email: email, PasswordHash: "hashedpassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "secret123").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hashService, _ := NewMock(t)
			tt.prepareMock(repo, hashService)

			profile, err := service.Authenticate(context.Background(), email, "secret123")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, email, profile.Email)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	userID := uuid.New()

	jwtService.EXPECT().GenerateJWT(userID, true, gomock.Any()).Return("token123", nil)
	token, err := service.GenerateToken(userID, true)
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)

	jwtService.EXPECT().GenerateJWT(userID, false, gomock.Any()).Return("", errors.New("sign error"))
	_, err = service.GenerateToken(userID, false)
	assert.Error(t, err)
}
