package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/payments"
)

type mocks struct {
	investmentRepo    *MockInvestmentRepo
	projectRepo       *MockProjectRepo
	withdrawalRepo    *MockWithdrawalRepo
	investmentService *MockInvestmentService
	withdrawalService *MockWithdrawalService
	checkout          *MockCheckout
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		investmentRepo:    NewMockInvestmentRepo(ctrl),
		projectRepo:       NewMockProjectRepo(ctrl),
		withdrawalRepo:    NewMockWithdrawalRepo(ctrl),
		investmentService: NewMockInvestmentService(ctrl),
		withdrawalService: NewMockWithdrawalService(ctrl),
		checkout:          NewMockCheckout(ctrl),
	}
	service := New(m.investmentRepo, m.projectRepo, m.withdrawalRepo,
		m.investmentService, m.withdrawalService, m.checkout)
	defer ctrl.Finish()
	return service, m
}

func pendingCardInvestment() domain.Investment {
	return domain.Investment{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		ProjectID:     uuid.New(),
		Amount:        200,
		PaymentMethod: domain.PaymentMethodCard,
		Status:        domain.TransactionStatusPending,
		ProviderRef:   "cs_123",
	}
}

func TestService_HandleInvestment(t *testing.T) {
	tests := []struct {
		name        string
		investment  func() domain.Investment
		prepareMock func(m *mocks, investment domain.Investment)
		expectedErr bool
	}{
		{
			name:       "Paid session completes the investment",
			investment: pendingCardInvestment,
			prepareMock: func(m *mocks, investment domain.Investment) {
				m.checkout.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").
					Return(&payments.CheckoutSession{
						ID:            "cs_123",
						Status:        payments.SessionComplete,
						PaymentStatus: payments.SessionPaid,
					}, nil)
				m.investmentService.EXPECT().CompleteCardInvestment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, inv *domain.Investment) error {
						assert.Equal(t, investment.ID, inv.ID)
						return nil
					})
			},
		},
		{
			name:       "Expired session cancels the investment",
			investment: pendingCardInvestment,
			prepareMock: func(m *mocks, investment domain.Investment) {
				m.checkout.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").
					Return(&payments.CheckoutSession{
						ID:            "cs_123",
						Status:        payments.SessionExpired,
						PaymentStatus: payments.SessionUnpaid,
					}, nil)
				m.investmentService.EXPECT().CancelInvestment(gomock.Any(), investment.ID).
					Return(&domain.Investment{ID: investment.ID}, nil)
			},
		},
		{
			name:       "Open session is left pending",
			investment: pendingCardInvestment,
			prepareMock: func(m *mocks, investment domain.Investment) {
				m.checkout.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").
					Return(&payments.CheckoutSession{
						ID:            "cs_123",
						Status:        "open",
						PaymentStatus: payments.SessionUnpaid,
					}, nil)
			},
		},
		{
			name:       "Unknown session cancels the investment",
			investment: pendingCardInvestment,
			prepareMock: func(m *mocks, investment domain.Investment) {
				m.checkout.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").
					Return(nil, payments.ErrSessionNotFound)
				m.investmentService.EXPECT().CancelInvestment(gomock.Any(), investment.ID).
					Return(&domain.Investment{ID: investment.ID}, nil)
			},
		},
		{
			name: "Missing session reference is skipped",
			investment: func() domain.Investment {
				investment := pendingCardInvestment()
				investment.ProviderRef = ""
				return investment
			},
			prepareMock: func(m *mocks, investment domain.Investment) {},
		},
		{
			name:       "Completion failure is reported",
			investment: pendingCardInvestment,
			prepareMock: func(m *mocks, investment domain.Investment) {
				m.checkout.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").
					Return(&payments.CheckoutSession{
						ID:            "cs_123",
						PaymentStatus: payments.SessionPaid,
					}, nil)
				m.investmentService.EXPECT().CompleteCardInvestment(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			investment := tt.investment()
			tt.prepareMock(m, investment)

			err := service.handleInvestment(context.Background(), investment)
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ReconcileFunding(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
	}{
		{
			name: "Reaching the target completes the project",
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().FindActive(gomock.Any()).Return([]domain.Project{{
					ID:              projectID,
					TargetAmount:    5000,
					CollectedAmount: 4800,
					Status:          domain.ProjectStatusCollecting,
				}}, nil)
				m.investmentRepo.EXPECT().SumCompletedByProject(gomock.Any(), projectID).Return(5000.0, nil)
				m.projectRepo.EXPECT().UpdateFunding(gomock.Any(), projectID, 5000.0, domain.ProjectStatusCompleted).Return(nil)
			},
		},
		{
			name: "Stale cached total is corrected",
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().FindActive(gomock.Any()).Return([]domain.Project{{
					ID:              projectID,
					TargetAmount:    5000,
					CollectedAmount: 1000,
					Status:          domain.ProjectStatusCollecting,
				}}, nil)
				m.investmentRepo.EXPECT().SumCompletedByProject(gomock.Any(), projectID).Return(900.0, nil)
				m.projectRepo.EXPECT().UpdateFunding(gomock.Any(), projectID, 900.0, domain.ProjectStatusCollecting).Return(nil)
			},
		},
		{
			name: "Unchanged project is not rewritten",
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().FindActive(gomock.Any()).Return([]domain.Project{{
					ID:              projectID,
					TargetAmount:    5000,
					CollectedAmount: 1000,
					Status:          domain.ProjectStatusCollecting,
				}}, nil)
				m.investmentRepo.EXPECT().SumCompletedByProject(gomock.Any(), projectID).Return(1000.0, nil)
			},
		},
		{
			name: "Sum failure skips the project",
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().FindActive(gomock.Any()).Return([]domain.Project{{
					ID:     projectID,
					Status: domain.ProjectStatusCollecting,
				}}, nil)
				m.investmentRepo.EXPECT().SumCompletedByProject(gomock.Any(), projectID).
					Return(0.0, errors.New("database error"))
			},
		},
		{
			name: "Listing failure aborts the sweep",
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			service.reconcileFunding(context.Background())
		})
	}
}

func TestService_RetryWithdrawalNotices(t *testing.T) {
	withdrawalID := uuid.New()

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
	}{
		{
			name: "Unnotified withdrawals are retried",
			prepareMock: func(m *mocks) {
				m.withdrawalRepo.EXPECT().FindUnnotified(gomock.Any(), uint32(1000)).
					Return([]domain.Withdrawal{{ID: withdrawalID}}, nil)
				m.withdrawalService.EXPECT().RetryNotification(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, w *domain.Withdrawal) error {
						assert.Equal(t, withdrawalID, w.ID)
						return nil
					})
			},
		},
		{
			name: "Retry failure does not stop the sweep",
			prepareMock: func(m *mocks) {
				m.withdrawalRepo.EXPECT().FindUnnotified(gomock.Any(), uint32(1000)).
					Return([]domain.Withdrawal{{ID: withdrawalID}, {ID: uuid.New()}}, nil)
				m.withdrawalService.EXPECT().RetryNotification(gomock.Any(), gomock.Any()).
					Return(errors.New("resend unavailable")).Times(2)
			},
		},
		{
			name: "Listing failure aborts the sweep",
			prepareMock: func(m *mocks) {
				m.withdrawalRepo.EXPECT().FindUnnotified(gomock.Any(), uint32(1000)).
					Return(nil, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			service.retryWithdrawalNotices(context.Background())
		})
	}
}
