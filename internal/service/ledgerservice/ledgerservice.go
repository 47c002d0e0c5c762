package ledgerservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
)

type ProfileRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	ApplyLedgerDelta(ctx context.Context, id uuid.UUID, balanceDelta, investedDelta float64) (*domain.Profile, error)
}

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// DeltaKind tags the ledger mutation with the business event that caused it.
type DeltaKind string

const (
	InvestmentCreated   DeltaKind = "investment_created"
	InvestmentCancelled DeltaKind = "investment_cancelled"
	WithdrawalRequested DeltaKind = "withdrawal_requested"
	WithdrawalCancelled DeltaKind = "withdrawal_cancelled"
	BalanceAdjusted     DeltaKind = "balance_adjusted"
)

// Delta is one atomic change to a profile's ledger. Balance and Invested are
// signed; both are applied in a single conditional update.
type Delta struct {
	Kind      DeltaKind
	ProfileID uuid.UUID
	Balance   float64
	Invested  float64
}

// ForInvestmentCreated derives the delta from the effects recorded on the
// investment row: balance-funded investments debit the charged total, every
// completed investment credits the principal to invested_amount.
func ForInvestmentCreated(inv *domain.Investment) Delta {
	d := Delta{Kind: InvestmentCreated, ProfileID: inv.UserID}
	if inv.BalanceDebited {
		d.Balance = -inv.Total()
	}
	if inv.InvestedCredited {
		d.Invested = inv.Amount
	}
	return d
}

// ForInvestmentCancelled is the exact inverse of the recorded creation
// effects. An investment that never touched available_balance leaves it alone
// here as well, whatever its payment method says.
func ForInvestmentCancelled(inv *domain.Investment) Delta {
	d := Delta{Kind: InvestmentCancelled, ProfileID: inv.UserID}
	if inv.BalanceDebited {
		d.Balance = inv.Total()
	}
	if inv.InvestedCredited {
		d.Invested = -inv.Amount
	}
	return d
}

// ForWithdrawalRequested reserves the gross amount at request time.
func ForWithdrawalRequested(wd *domain.Withdrawal) Delta {
	return Delta{Kind: WithdrawalRequested, ProfileID: wd.UserID, Balance: -wd.Amount}
}

// ForWithdrawalCancelled returns the reserved funds.
func ForWithdrawalCancelled(wd *domain.Withdrawal) Delta {
	return Delta{Kind: WithdrawalCancelled, ProfileID: wd.UserID, Balance: wd.Amount}
}

// ForAdjustment is the admin credit/debit tool; amount may carry either sign.
func ForAdjustment(profileID uuid.UUID, amount float64) Delta {
	return Delta{Kind: BalanceAdjusted, ProfileID: profileID, Balance: amount}
}

type Service struct {
	profileRepo ProfileRepo
}

func New(profileRepo ProfileRepo) *Service {
	return &Service{
		profileRepo: profileRepo,
	}
}

// Apply executes the delta as one conditional update. Callers that pair it
// with a row insert run both inside a TXManager.Begin so the ledger and the
// transaction row commit or roll back together.
func (s *Service) Apply(ctx context.Context, delta Delta) (*domain.Profile, error) {
	if delta.Balance == 0 && delta.Invested == 0 {
		profile, err := s.profileRepo.FindByID(ctx, delta.ProfileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, ErrProfileNotFound
		}
		return profile, nil
	}

	updated, err := s.profileRepo.ApplyLedgerDelta(ctx, delta.ProfileID, delta.Balance, delta.Invested)
	if err != nil {
		zap.L().Error("failed to apply ledger delta",
			zap.String("kind", string(delta.Kind)),
			zap.String("profileID", delta.ProfileID.String()),
			zap.Error(err))
		return nil, err
	}
	if updated == nil {
		// The guard rejected the update: either the profile is gone or the
		// delta would drive a ledger field negative.
		profile, err := s.profileRepo.FindByID(ctx, delta.ProfileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, ErrProfileNotFound
		}
		zap.L().Info("ledger delta rejected by balance guard",
			zap.String("kind", string(delta.Kind)),
			zap.String("profileID", delta.ProfileID.String()),
			zap.Float64("balanceDelta", delta.Balance),
			zap.Float64("investedDelta", delta.Invested))
		return nil, ErrInsufficientFunds
	}
	return updated, nil
}

func (s *Service) GetBalance(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
