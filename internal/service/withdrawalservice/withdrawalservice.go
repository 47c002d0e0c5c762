package withdrawalservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/mailer"
	"github.com/wearshop/investmart/internal/pg"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error)
	FindAll(ctx context.Context) ([]domain.Withdrawal, error)
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

type ProfileRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type Ledger interface {
	Apply(ctx context.Context, delta ledgerservice.Delta) (*domain.Profile, error)
}

type Notifier interface {
	SendWithdrawalNotice(ctx context.Context, notice mailer.WithdrawalNotice) error
}

var (
	ErrInvalidAmount         = errors.New("invalid withdrawal amount")
	ErrInvalidMethod         = errors.New("unknown withdrawal method")
	ErrBelowMinimumForMethod = errors.New("amount below the minimum for this method")
	ErrMissingBankDetails    = errors.New("incomplete banking details")
	ErrWithdrawalNotFound    = errors.New("withdrawal not found")
	ErrAlreadyCancelled      = errors.New("withdrawal already cancelled")
	ErrNotPending            = errors.New("withdrawal is not pending")
)

type Service struct {
	repo        Repo
	profileRepo ProfileRepo
	ledger      Ledger
	txManager   pg.TXManager
	notifier    Notifier
}

func New(repo Repo, profileRepo ProfileRepo, ledger Ledger, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		repo:        repo,
		profileRepo: profileRepo,
		ledger:      ledger,
		txManager:   txManager,
		notifier:    notifier,
	}
}

func withdrawalFees(method string) float64 {
	if method == domain.WithdrawalMethodBankTransfer {
		return domain.BankTransferFee
	}
	return 0
}

// Request reserves the gross amount at request time: the row insert and the
// balance debit commit together, so the same funds can't be requested twice.
func (s *Service) Request(ctx context.Context, userID uuid.UUID, amount float64, method, iban, phone string) (*domain.Withdrawal, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	switch method {
	case domain.WithdrawalMethodBankTransfer, domain.WithdrawalMethodCash, domain.WithdrawalMethodPayPal:
	default:
		return nil, ErrInvalidMethod
	}

	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ledgerservice.ErrProfileNotFound
	}

	if method == domain.WithdrawalMethodBankTransfer {
		if amount < domain.BankTransferMinimum {
			return nil, ErrBelowMinimumForMethod
		}
		if !validate.IsIBAN(iban) || phone == "" ||
			profile.FirstName == "" || profile.LastName == "" || profile.Address == "" {
			return nil, ErrMissingBankDetails
		}
	}

	withdrawal := &domain.Withdrawal{
		UserID:           userID,
		Amount:           amount,
		Fees:             withdrawalFees(method),
		WithdrawalMethod: method,
		IBAN:             iban,
		PhoneNumber:      phone,
		Status:           domain.TransactionStatusPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.repo.Create(ctx, withdrawal); err != nil {
			return err
		}
		_, err := s.ledger.Apply(ctx, ledgerservice.ForWithdrawalRequested(withdrawal))
		return err
	})
	if err != nil {
		return nil, err
	}

	if method == domain.WithdrawalMethodBankTransfer {
		// Notification failure is non-fatal: the reservation stands and the
		// reconciler retries the email until it goes through.
		if err := s.notify(ctx, withdrawal, profile); err != nil {
			zap.L().Error("withdrawal notification failed, queued for retry",
				zap.String("withdrawalID", withdrawal.ID.String()), zap.Error(err))
		}
	}

	zap.L().Info("withdrawal requested",
		zap.String("withdrawalID", withdrawal.ID.String()),
		zap.Float64("amount", amount),
		zap.String("method", method))
	return withdrawal, nil
}

func (s *Service) notify(ctx context.Context, withdrawal *domain.Withdrawal, profile *domain.Profile) error {
	err := s.notifier.SendWithdrawalNotice(ctx, mailer.WithdrawalNotice{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Address:   profile.Address,
		Phone:     withdrawal.PhoneNumber,
		IBAN:      withdrawal.IBAN,
		Amount:    withdrawal.Amount,
		Fees:      withdrawal.Fees,
		NetAmount: withdrawal.NetAmount(),
	})
	if err != nil {
		return err
	}
	return s.repo.MarkNotified(ctx, withdrawal.ID)
}

// RetryNotification re-sends the operator notice for a withdrawal whose email
// never went out.
func (s *Service) RetryNotification(ctx context.Context, withdrawal *domain.Withdrawal) error {
	profile, err := s.profileRepo.FindByID(ctx, withdrawal.UserID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ledgerservice.ErrProfileNotFound
	}
	return s.notify(ctx, withdrawal, profile)
}

// Cancel returns the reserved funds and marks the withdrawal cancelled.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	withdrawal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}
	if withdrawal.IsCancelled || withdrawal.Status == domain.TransactionStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	// The conditional update is the authoritative guard: if a concurrent
	// cancel won the race since the read above, zero rows match and the tx
	// rolls back without re-applying the refund.
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Cancel(ctx, withdrawal.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyCancelled
		}
		_, err = s.ledger.Apply(ctx, ledgerservice.ForWithdrawalCancelled(withdrawal))
		return err
	})
	if err != nil {
		return nil, err
	}

	withdrawal.Status = domain.TransactionStatusCancelled
	withdrawal.IsCancelled = true
	zap.L().Info("withdrawal cancelled", zap.String("withdrawalID", withdrawal.ID.String()))
	return withdrawal, nil
}

// Complete marks a pending withdrawal paid out. The funds were already
// reserved at request time, so no ledger movement happens here.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	withdrawal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}
	if withdrawal.Status != domain.TransactionStatusPending {
		return nil, ErrNotPending
	}

	ok, err := s.repo.Complete(ctx, withdrawal.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotPending
	}
	withdrawal.Status = domain.TransactionStatusCompleted
	return withdrawal, nil
}

func (s *Service) GetUserWithdrawals(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error) {
	withdrawals, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) GetAllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
