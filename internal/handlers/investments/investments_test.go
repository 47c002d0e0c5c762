package investments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/dto"
	"github.com/wearshop/investmart/internal/service/investmentservice"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/pkg/auth"
	"github.com/wearshop/investmart/pkg/utils"
)

func NewMock(t *testing.T) (*InvestmentHandler, *MockService) {
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

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	projectID := uuid.New()
	investmentID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Balance investment completes immediately",
			body: fmt.Sprintf(`{"project_id":"%s","amount":100,"payment_method":"balance","has_insurance":true}`, projectID),
			prepareMock: func() {
				service.EXPECT().
					CreateBalanceInvestment(gomock.Any(), userID, projectID, 100.0, true).
					Return(&domain.Investment{
						ID:            investmentID,
						ProjectID:     projectID,
						Amount:        100,
						InsuranceFee:  5,
						PaymentMethod: domain.PaymentMethodBalance,
						Status:        domain.TransactionStatusCompleted,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Card investment returns a checkout URL",
			body: fmt.Sprintf(`{"project_id":"%s","amount":200,"payment_method":"card"}`, projectID),
			prepareMock: func() {
				service.EXPECT().
					InitiateCardInvestment(gomock.Any(), userID, projectID, 200.0, false).
					Return(&domain.Investment{
						ID:            investmentID,
						ProjectID:     projectID,
						Amount:        200,
						PaymentMethod: domain.PaymentMethodCard,
						Status:        domain.TransactionStatusPending,
					}, "https://checkout.stripe.com/c/pay/cs_123", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "PayPal investment is verified server side",
			body: fmt.Sprintf(`{"project_id":"%s","amount":150,"payment_method":"paypal","provider_order_id":"ORDER-1"}`, projectID),
			prepareMock: func() {
				service.EXPECT().
					CreatePayPalInvestment(gomock.Any(), userID, projectID, 150.0, false, "ORDER-1").
					Return(&domain.Investment{
						ID:            investmentID,
						ProjectID:     projectID,
						Amount:        150,
						PaymentMethod: domain.PaymentMethodPayPal,
						Status:        domain.TransactionStatusCompleted,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount below project minimum",
			body: fmt.Sprintf(`{"project_id":"%s","amount":1,"payment_method":"balance"}`, projectID),
			prepareMock: func() {
				service.EXPECT().
					CreateBalanceInvestment(gomock.Any(), userID, projectID, 1.0, false).
					Return(nil, investmentservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: investmentservice.ErrInvalidAmount.Error(),
		},
		{
			name: "Insufficient balance",
			body: fmt.Sprintf(`{"project_id":"%s","amount":100,"payment_method":"balance"}`, projectID),
			prepareMock: func() {
				service.EXPECT().
					CreateBalanceInvestment(gomock.Any(), userID, projectID, 100.0, false).
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: ledgerservice.ErrInsufficientFunds.Error(),
		},
		{
			name: "Payment provider failure",
			body: fmt.Sprintf(`{"project_id":"%s","amount":200,"payment_method":"card"}`, projectID),
			prepareMock: func() {
				service.EXPECT().
					InitiateCardInvestment(gomock.Any(), userID, projectID, 200.0, false).
					Return(nil, "", investmentservice.ErrPaymentProvider)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: investmentservice.ErrPaymentProvider.Error(),
		},
		{
			name:         "Unknown payment method",
			body:         fmt.Sprintf(`{"project_id":"%s","amount":100,"payment_method":"crypto"}`, projectID),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid project id",
			body:         `{"project_id":"not-a-uuid","amount":100,"payment_method":"balance"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
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

			req := authedRequest("POST", "/api/user/investments", tt.body, userID)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusCreated {
				var resp dto.CheckoutResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, investmentID.String(), resp.InvestmentID)
				assert.NotEmpty(t, resp.URL)
			}
		})
	}
}

func TestGetInvestmentsHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Investments history",
			prepareMock: func() {
				service.EXPECT().GetUserInvestments(gomock.Any(), userID).Return([]domain.Investment{
					{ID: uuid.New(), ProjectID: uuid.New(), Amount: 100, Status: domain.TransactionStatusCompleted},
					{ID: uuid.New(), ProjectID: uuid.New(), Amount: 200, Status: domain.TransactionStatusPending},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No investments",
			prepareMock: func() {
				service.EXPECT().GetUserInvestments(gomock.Any(), userID).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetUserInvestments(gomock.Any(), userID).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("GET", "/api/user/investments", "", userID)
			rr := httptest.NewRecorder()

			handler.GetInvestments(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedLen > 0 {
				var resp []dto.InvestmentResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
