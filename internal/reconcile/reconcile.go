package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/payments"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type InvestmentRepo interface {
	FindPendingCard(ctx context.Context, limit uint32) ([]domain.Investment, error)
	SumCompletedByProject(ctx context.Context, projectID uuid.UUID) (float64, error)
}

type ProjectRepo interface {
	FindActive(ctx context.Context) ([]domain.Project, error)
	UpdateFunding(ctx context.Context, id uuid.UUID, collected float64, status string) error
}

type WithdrawalRepo interface {
	FindUnnotified(ctx context.Context, limit uint32) ([]domain.Withdrawal, error)
}

type InvestmentService interface {
	CompleteCardInvestment(ctx context.Context, investment *domain.Investment) error
	CancelInvestment(ctx context.Context, id uuid.UUID) (*domain.Investment, error)
}

type WithdrawalService interface {
	RetryNotification(ctx context.Context, withdrawal *domain.Withdrawal) error
}

type Checkout interface {
	GetCheckoutSession(ctx context.Context, sessionID string) (*payments.CheckoutSession, error)
}

// inFlight guards against the same investment being reconciled by two
// overlapping ticks.
var inFlight sync.Map

// Service is the background reconciler. Card investments stay pending until
// the provider confirms payment here; the client-side redirect is never
// trusted. It also recomputes project funding totals and retries withdrawal
// notification emails that failed at request time.
type Service struct {
	investmentRepo    InvestmentRepo
	projectRepo       ProjectRepo
	withdrawalRepo    WithdrawalRepo
	investmentService InvestmentService
	withdrawalService WithdrawalService
	checkout          Checkout
	limit             uint32
	workerPool        WorkerPoolI
	updateInterval    time.Duration
}

func New(
	investmentRepo InvestmentRepo,
	projectRepo ProjectRepo,
	withdrawalRepo WithdrawalRepo,
	investmentService InvestmentService,
	withdrawalService WithdrawalService,
	checkout Checkout,
) *Service {
	return &Service{
		investmentRepo:    investmentRepo,
		projectRepo:       projectRepo,
		withdrawalRepo:    withdrawalRepo,
		investmentService: investmentService,
		withdrawalService: withdrawalService,
		checkout:          checkout,
		limit:             1000,
		workerPool:        NewWorkerPool(10),
		updateInterval:    time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconcile service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconcile service")
			return
		case <-ticker.C:
			s.processPendingInvestments(ctx)
			s.reconcileFunding(ctx)
			s.retryWithdrawalNotices(ctx)
		}
	}
}

func (s *Service) processPendingInvestments(ctx context.Context) {
	pending, err := s.investmentRepo.FindPendingCard(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending card investments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, investment := range pending {
		investment := investment

		if _, loaded := inFlight.LoadOrStore(investment.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(investment.ID)
				return s.handleInvestment(ctx, investment)
			})
			if err != nil {
				inFlight.Delete(investment.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing pending investments", zap.Error(err))
	}
}

func (s *Service) handleInvestment(ctx context.Context, investment domain.Investment) error {
	if investment.ProviderRef == "" {
		zap.L().Warn("Pending card investment has no checkout session", zap.String("investmentID", investment.ID.String()))
		return nil
	}

	var session *payments.CheckoutSession
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		session, err = s.checkout.GetCheckoutSession(ctx, investment.ProviderRef)
		if err == nil {
			break
		}
		if errors.Is(err, payments.ErrSessionNotFound) {
			break
		}
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	if err != nil {
		if errors.Is(err, payments.ErrSessionNotFound) {
			zap.L().Warn("Checkout session not found, cancelling investment", zap.String("investmentID", investment.ID.String()))
			_, cancelErr := s.investmentService.CancelInvestment(ctx, investment.ID)
			return cancelErr
		}
		return fmt.Errorf("failed to fetch checkout session for investment %s: %w", investment.ID, err)
	}

	switch {
	case session.PaymentStatus == payments.SessionPaid:
		if err := s.investmentService.CompleteCardInvestment(ctx, &investment); err != nil {
			return fmt.Errorf("failed to complete investment %s: %w", investment.ID, err)
		}
		zap.L().Info("Card investment confirmed paid",
			zap.String("investmentID", investment.ID.String()),
			zap.String("session", session.ID),
		)
	case session.Status == payments.SessionExpired:
		if _, err := s.investmentService.CancelInvestment(ctx, investment.ID); err != nil {
			return fmt.Errorf("failed to cancel expired investment %s: %w", investment.ID, err)
		}
		zap.L().Info("Checkout session expired, investment cancelled", zap.String("investmentID", investment.ID.String()))
	default:
		// Session is still open. Leave the investment pending for the next tick.
	}
	return nil
}

// reconcileFunding recomputes each active project's collected amount from the
// completed investments and flips collecting projects to completed once the
// target is reached. The stored total is a cache; this sweep is its source of
// truth.
func (s *Service) reconcileFunding(ctx context.Context) {
	projects, err := s.projectRepo.FindActive(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch projects for funding reconciliation", zap.Error(err))
		return
	}

	for _, project := range projects {
		collected, err := s.investmentRepo.SumCompletedByProject(ctx, project.ID)
		if err != nil {
			zap.L().Error("Failed to sum investments", zap.String("projectID", project.ID.String()), zap.Error(err))
			continue
		}

		status := project.Status
		if status == domain.ProjectStatusCollecting && project.TargetAmount > 0 && collected >= project.TargetAmount {
			status = domain.ProjectStatusCompleted
		}

		if collected == project.CollectedAmount && status == project.Status {
			continue
		}
		if err := s.projectRepo.UpdateFunding(ctx, project.ID, collected, status); err != nil {
			zap.L().Error("Failed to update project funding", zap.String("projectID", project.ID.String()), zap.Error(err))
			continue
		}
		if status != project.Status {
			zap.L().Info("Project fully funded",
				zap.String("projectID", project.ID.String()),
				zap.Float64("collected", collected),
			)
		}
	}
}

func (s *Service) retryWithdrawalNotices(ctx context.Context) {
	unnotified, err := s.withdrawalRepo.FindUnnotified(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch unnotified withdrawals", zap.Error(err))
		return
	}

	for _, withdrawal := range unnotified {
		withdrawal := withdrawal
		if err := s.withdrawalService.RetryNotification(ctx, &withdrawal); err != nil {
			zap.L().Warn("Withdrawal notification retry failed",
				zap.String("withdrawalID", withdrawal.ID.String()),
				zap.Error(err),
			)
		}
	}
}
