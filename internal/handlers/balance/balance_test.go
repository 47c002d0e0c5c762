package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/dto"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/pkg/auth"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.BalanceResponseDTO
	}{
		{
			name: "Current ledger",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), userID).Return(&domain.Profile{
					ID:               userID,
					AvailableBalance: 150.5,
					InvestedAmount:   850,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.BalanceResponseDTO{Available: 150.5, Invested: 850},
		},
		{
			name: "Profile not found",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), userID).Return(nil, ledgerservice.ErrProfileNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), userID).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/balance", nil)
			ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
			rr := httptest.NewRecorder()

			handler.GetBalance(rr, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var resp dto.BalanceResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}
