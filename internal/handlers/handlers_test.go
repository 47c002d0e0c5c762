package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockProjectHandler := NewMockProjectHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockInvestmentHandler := NewMockInvestmentHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockNewsletterHandler := NewMockNewsletterHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockProjectHandler.EXPECT().GetActive(gomock.Any(), gomock.Any()).AnyTimes()
	mockProjectHandler.EXPECT().GetInvestable(gomock.Any(), gomock.Any()).AnyTimes()
	mockProjectHandler.EXPECT().GetProject(gomock.Any(), gomock.Any()).AnyTimes()
	mockNewsletterHandler.EXPECT().GetPublished(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		ProjectHandler:    mockProjectHandler,
		BalanceHandler:    mockBalanceHandler,
		InvestmentHandler: mockInvestmentHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		NewsletterHandler: mockNewsletterHandler,
		AdminHandler:      mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/projects/", http.StatusOK},
		{"GET", "/api/projects/all", http.StatusOK},
		{"GET", "/api/newsletter", http.StatusOK},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"POST", "/api/user/investments/", http.StatusUnauthorized},
		{"GET", "/api/user/investments/", http.StatusUnauthorized},
		{"POST", "/api/user/withdrawals/", http.StatusUnauthorized},
		{"GET", "/api/user/withdrawals/", http.StatusUnauthorized},
		{"GET", "/api/admin/users/", http.StatusUnauthorized},
		{"POST", "/api/admin/adjustments", http.StatusUnauthorized},
		{"POST", "/api/admin/projects/", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals/", http.StatusUnauthorized},
		{"POST", "/api/admin/emails", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
