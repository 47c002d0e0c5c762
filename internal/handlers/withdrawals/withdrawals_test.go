package withdrawals

import (
	"bytes"
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
	"github.com/wearshop/investmart/internal/service/withdrawalservice"
	"github.com/wearshop/investmart/pkg/auth"
	"github.com/wearshop/investmart/pkg/utils"
)

const testIBAN = "FR1420041010050500013M02606"

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestRequestHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	withdrawalID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Bank transfer withdrawal",
			body: `{"amount":100,"withdrawal_method":"bank_transfer","iban":"` + testIBAN + `"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), userID, 100.0, domain.WithdrawalMethodBankTransfer, testIBAN, "").
					Return(&domain.Withdrawal{
						ID:               withdrawalID,
						UserID:           userID,
						Amount:           100,
						Fees:             0.5,
						WithdrawalMethod: domain.WithdrawalMethodBankTransfer,
						IBAN:             testIBAN,
						Status:           domain.TransactionStatusPending,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount below method minimum",
			body: `{"amount":2,"withdrawal_method":"bank_transfer","iban":"` + testIBAN + `"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), userID, 2.0, domain.WithdrawalMethodBankTransfer, testIBAN, "").
					Return(nil, withdrawalservice.ErrBelowMinimumForMethod)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: withdrawalservice.ErrBelowMinimumForMethod.Error(),
		},
		{
			name: "Missing bank details",
			body: `{"amount":100,"withdrawal_method":"bank_transfer"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), userID, 100.0, domain.WithdrawalMethodBankTransfer, "", "").
					Return(nil, withdrawalservice.ErrMissingBankDetails)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: withdrawalservice.ErrMissingBankDetails.Error(),
		},
		{
			name: "Insufficient funds",
			body: `{"amount":10000,"withdrawal_method":"bank_transfer","iban":"` + testIBAN + `"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), userID, 10000.0, domain.WithdrawalMethodBankTransfer, testIBAN, "").
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: ledgerservice.ErrInsufficientFunds.Error(),
		},
		{
			name: "Service failure",
			body: `{"amount":100,"withdrawal_method":"bank_transfer","iban":"` + testIBAN + `"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), userID, 100.0, domain.WithdrawalMethodBankTransfer, testIBAN, "").
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/user/withdrawals", tt.body, userID)
			rr := httptest.NewRecorder()

			handler.Request(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusOK {
				var resp dto.WithdrawalResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 99.5, resp.NetAmount)
			}
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Withdrawals history",
			prepareMock: func() {
				service.EXPECT().GetUserWithdrawals(gomock.Any(), userID).Return([]domain.Withdrawal{
					{ID: uuid.New(), Amount: 100, Status: domain.TransactionStatusPending},
					{ID: uuid.New(), Amount: 50, Status: domain.TransactionStatusCompleted},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No withdrawals",
			prepareMock: func() {
				service.EXPECT().GetUserWithdrawals(gomock.Any(), userID).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetUserWithdrawals(gomock.Any(), userID).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("GET", "/api/user/withdrawals", "", userID)
			rr := httptest.NewRecorder()

			handler.GetWithdrawals(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedLen > 0 {
				var resp []dto.WithdrawalResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
