package investmentservice

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/payments"
	"github.com/wearshop/investmart/internal/pg"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/internal/service/projectservice"
)

type Repo interface {
	Create(ctx context.Context, investment *domain.Investment) (*domain.Investment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Investment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error)
	FindAll(ctx context.Context) ([]domain.Investment, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Investment, error)
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
	SetProviderRef(ctx context.Context, id uuid.UUID, ref string) error
}

type ProjectRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type Ledger interface {
	Apply(ctx context.Context, delta ledgerservice.Delta) (*domain.Profile, error)
}

type Checkout interface {
	CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (*payments.CheckoutSession, error)
}

type OrderVerifier interface {
	VerifyOrder(ctx context.Context, orderID string) (*payments.Order, error)
}

var (
	ErrInvalidAmount        = errors.New("amount outside the allowed range")
	ErrProjectNotInvestable = errors.New("project is not open for investment")
	ErrPaymentProvider      = errors.New("payment provider error")
	ErrInvestmentNotFound   = errors.New("investment not found")
	ErrAlreadyCancelled     = errors.New("investment already cancelled")
	ErrNotPending           = errors.New("investment is not pending")
)

// amountTolerance absorbs provider-side rounding when comparing captured
// totals against the charged amount.
const amountTolerance = 0.01

type Service struct {
	repo        Repo
	projectRepo ProjectRepo
	ledger      Ledger
	txManager   pg.TXManager
	checkout    Checkout
	paypal      OrderVerifier
}

func New(repo Repo, projectRepo ProjectRepo, ledger Ledger, txManager pg.TXManager, checkout Checkout, paypal OrderVerifier) *Service {
	return &Service{
		repo:        repo,
		projectRepo: projectRepo,
		ledger:      ledger,
		txManager:   txManager,
		checkout:    checkout,
		paypal:      paypal,
	}
}

func insuranceFee(hasInsurance bool) float64 {
	if hasInsurance {
		return domain.InsuranceFee
	}
	return 0
}

// validateInvestable rejects the request before any write happens: the
// project must be an active collecting campaign and the amount must fall
// inside [min_amount, remaining].
func (s *Service) validateInvestable(ctx context.Context, projectID uuid.UUID, amount float64) (*domain.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, projectservice.ErrProjectNotFound
	}
	if !project.IsActive || project.Status != domain.ProjectStatusCollecting {
		return nil, ErrProjectNotInvestable
	}
	if amount < project.MinAmount || amount > projectservice.RemainingAmount(project) {
		return nil, ErrInvalidAmount
	}
	return project, nil
}

// CreateBalanceInvestment funds an investment from available_balance. The row
// insert and both ledger movements commit in one transaction.
func (s *Service) CreateBalanceInvestment(ctx context.Context, userID, projectID uuid.UUID, amount float64, hasInsurance bool) (*domain.Investment, error) {
	if _, err := s.validateInvestable(ctx, projectID, amount); err != nil {
		return nil, err
	}

	investment := &domain.Investment{
		UserID:           userID,
		ProjectID:        projectID,
		Amount:           amount,
		InsuranceFee:     insuranceFee(hasInsurance),
		PaymentMethod:    domain.PaymentMethodBalance,
		Status:           domain.TransactionStatusCompleted,
		BalanceDebited:   true,
		InvestedCredited: true,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.repo.Create(ctx, investment); err != nil {
			return err
		}
		_, err := s.ledger.Apply(ctx, ledgerservice.ForInvestmentCreated(investment))
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("balance investment created",
		zap.String("investmentID", investment.ID.String()),
		zap.Float64("amount", amount))
	return investment, nil
}

// InitiateCardInvestment records a pending investment and opens a hosted card
// checkout. Nothing is credited here; the reconciler completes the row once
// the session is confirmed paid server-side.
func (s *Service) InitiateCardInvestment(ctx context.Context, userID, projectID uuid.UUID, amount float64, hasInsurance bool) (*domain.Investment, string, error) {
	project, err := s.validateInvestable(ctx, projectID, amount)
	if err != nil {
		return nil, "", err
	}

	investment := &domain.Investment{
		UserID:        userID,
		ProjectID:     projectID,
		Amount:        amount,
		InsuranceFee:  insuranceFee(hasInsurance),
		PaymentMethod: domain.PaymentMethodCard,
		Status:        domain.TransactionStatusPending,
	}
	if _, err := s.repo.Create(ctx, investment); err != nil {
		return nil, "", err
	}

	session, err := s.checkout.CreateCheckoutSession(ctx, payments.CheckoutParams{
		InvestmentID: investment.ID,
		UserID:       userID,
		ProjectID:    projectID,
		ProjectName:  project.Name,
		Amount:       amount,
		HasInsurance: hasInsurance,
		Total:        investment.Total(),
	})
	if err != nil {
		zap.L().Error("checkout session creation failed", zap.Error(err))
		if _, cancelErr := s.repo.Cancel(ctx, investment.ID); cancelErr != nil {
			zap.L().Error("failed to cancel orphaned pending investment", zap.Error(cancelErr))
		}
		return nil, "", ErrPaymentProvider
	}
	if err := s.repo.SetProviderRef(ctx, investment.ID, session.ID); err != nil {
		// Without the session id the reconciler can never resolve this row,
		// and the checkout URL was never handed to the client. Cancel it.
		zap.L().Error("failed to store checkout session id", zap.Error(err))
		if _, cancelErr := s.repo.Cancel(ctx, investment.ID); cancelErr != nil {
			zap.L().Error("failed to cancel orphaned pending investment", zap.Error(cancelErr))
		}
		return nil, "", err
	}
	investment.ProviderRef = session.ID

	return investment, session.URL, nil
}

// CreatePayPalInvestment verifies the captured order with PayPal before any
// write: the order must be COMPLETED, in EUR, and match the charged total.
func (s *Service) CreatePayPalInvestment(ctx context.Context, userID, projectID uuid.UUID, amount float64, hasInsurance bool, orderID string) (*domain.Investment, error) {
	if _, err := s.validateInvestable(ctx, projectID, amount); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, ErrPaymentProvider
	}

	investment := &domain.Investment{
		UserID:           userID,
		ProjectID:        projectID,
		Amount:           amount,
		InsuranceFee:     insuranceFee(hasInsurance),
		PaymentMethod:    domain.PaymentMethodPayPal,
		Status:           domain.TransactionStatusCompleted,
		InvestedCredited: true,
		ProviderRef:      orderID,
	}

	order, err := s.paypal.VerifyOrder(ctx, orderID)
	if err != nil {
		zap.L().Error("paypal order verification failed", zap.Error(err))
		return nil, ErrPaymentProvider
	}
	if order.Status != payments.OrderCompleted || order.Currency != "EUR" ||
		math.Abs(order.Amount-investment.Total()) > amountTolerance {
		zap.L().Error("paypal order mismatch",
			zap.String("orderID", orderID),
			zap.String("status", order.Status),
			zap.Float64("orderAmount", order.Amount),
			zap.Float64("chargedTotal", investment.Total()))
		return nil, ErrPaymentProvider
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.repo.Create(ctx, investment); err != nil {
			return err
		}
		_, err := s.ledger.Apply(ctx, ledgerservice.ForInvestmentCreated(investment))
		return err
	})
	if err != nil {
		return nil, err
	}

	return investment, nil
}

// CreateAdminInvestment is the back-office tool for cash or manual entries.
// It bypasses the min/remaining bounds but never touches available_balance.
func (s *Service) CreateAdminInvestment(ctx context.Context, userID, projectID uuid.UUID, amount float64, paymentMethod string) (*domain.Investment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if paymentMethod != domain.PaymentMethodCash && paymentMethod != domain.PaymentMethodAdmin {
		paymentMethod = domain.PaymentMethodAdmin
	}
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, projectservice.ErrProjectNotFound
	}

	investment := &domain.Investment{
		UserID:           userID,
		ProjectID:        projectID,
		Amount:           amount,
		PaymentMethod:    paymentMethod,
		Status:           domain.TransactionStatusCompleted,
		InvestedCredited: true,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.repo.Create(ctx, investment); err != nil {
			return err
		}
		_, err := s.ledger.Apply(ctx, ledgerservice.ForInvestmentCreated(investment))
		return err
	})
	if err != nil {
		return nil, err
	}

	return investment, nil
}

// CompleteCardInvestment finalizes a pending card investment after its
// checkout session was confirmed paid. The conditional update only matches a
// row that is still pending, so two overlapping confirmations credit the
// ledger once.
func (s *Service) CompleteCardInvestment(ctx context.Context, investment *domain.Investment) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Complete(ctx, investment.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotPending
		}
		investment.InvestedCredited = true
		investment.Status = domain.TransactionStatusCompleted
		_, err = s.ledger.Apply(ctx, ledgerservice.ForInvestmentCreated(investment))
		return err
	})
}

// CancelInvestment reverses exactly the ledger effects recorded at creation.
func (s *Service) CancelInvestment(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	investment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if investment == nil {
		return nil, ErrInvestmentNotFound
	}
	if investment.IsCancelled || investment.Status == domain.TransactionStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	// The conditional update is the authoritative guard: a concurrent cancel
	// that won the race leaves no row to match, the tx rolls back and the
	// recorded effects are reversed exactly once. The inverse delta comes
	// from the row the update returns, so a completion that landed after the
	// read above is reversed too.
	var cancelled *domain.Investment
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		cancelled, err = s.repo.Cancel(ctx, investment.ID)
		if err != nil {
			return err
		}
		if cancelled == nil {
			return ErrAlreadyCancelled
		}
		_, err = s.ledger.Apply(ctx, ledgerservice.ForInvestmentCancelled(cancelled))
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("investment cancelled", zap.String("investmentID", cancelled.ID.String()))
	return cancelled, nil
}

func (s *Service) GetUserInvestments(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error) {
	investments, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get investments", zap.Error(err))
		return nil, err
	}
	return investments, nil
}

func (s *Service) GetAllInvestments(ctx context.Context) ([]domain.Investment, error) {
	investments, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get investments", zap.Error(err))
		return nil, err
	}
	return investments, nil
}
