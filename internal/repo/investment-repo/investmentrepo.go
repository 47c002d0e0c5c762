package investmentrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/pg"
)

const investmentColumns = `id, user_id, project_id, amount, insurance_fee, payment_method,
       status, is_cancelled, balance_debited, invested_credited, provider_ref, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(&inv.ID, &inv.UserID, &inv.ProjectID, &inv.Amount, &inv.InsuranceFee,
		&inv.PaymentMethod, &inv.Status, &inv.IsCancelled, &inv.BalanceDebited,
		&inv.InvestedCredited, &inv.ProviderRef, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) scanInvestments(rows pgx.Rows) ([]domain.Investment, error) {
	defer rows.Close()

	var investments []domain.Investment
	for rows.Next() {
		var inv domain.Investment
		err := rows.Scan(&inv.ID, &inv.UserID, &inv.ProjectID, &inv.Amount, &inv.InsuranceFee,
			&inv.PaymentMethod, &inv.Status, &inv.IsCancelled, &inv.BalanceDebited,
			&inv.InvestedCredited, &inv.ProviderRef, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan investment row", zap.Error(err))
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, nil
}

func (r *Repository) Create(ctx context.Context, investment *domain.Investment) (*domain.Investment, error) {
	query := `
		INSERT INTO investments (user_id, project_id, amount, insurance_fee, payment_method,
		    status, balance_debited, invested_credited, provider_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, investment.UserID, investment.ProjectID, investment.Amount,
		investment.InsuranceFee, investment.PaymentMethod, investment.Status,
		investment.BalanceDebited, investment.InvestedCredited, investment.ProviderRef).
		Scan(&investment.ID, &investment.CreatedAt, &investment.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save investment", zap.Error(err))
		return nil, err
	}
	return investment, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE id = $1`
	investment, err := scanInvestment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find investment", zap.Error(err))
		return nil, err
	}
	return investment, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch investments", zap.Error(err))
		return nil, err
	}
	return r.scanInvestments(rows)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch investments", zap.Error(err))
		return nil, err
	}
	return r.scanInvestments(rows)
}

// FindPendingCard returns card investments still waiting for a server-side
// checkout confirmation.
func (r *Repository) FindPendingCard(ctx context.Context, limit uint32) ([]domain.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE status = $1 AND payment_method = $2
		ORDER BY created_at
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, domain.TransactionStatusPending, domain.PaymentMethodCard, limit)
	if err != nil {
		zap.L().Error("failed to fetch pending card investments", zap.Error(err))
		return nil, err
	}
	return r.scanInvestments(rows)
}

// Cancel flips a live investment to cancelled and returns the row as stored,
// so the inverse ledger delta is derived from the effects recorded at the
// moment of cancellation, not from an earlier read. The predicate makes the
// transition single-shot: a concurrent duplicate cancel gets nil instead of
// reversing the ledger twice.
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	query := `
		UPDATE investments
		SET status = 'cancelled', is_cancelled = TRUE, updated_at = now()
		WHERE id = $1 AND is_cancelled = FALSE
		RETURNING ` + investmentColumns + `
	`
	investment, err := scanInvestment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to cancel investment", zap.Error(err))
		return nil, err
	}
	return investment, nil
}

// Complete finalizes a pending investment and records the invested_amount
// credit applied with that move, reporting whether the row was still pending.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE investments
		SET status = 'completed', invested_credited = TRUE, updated_at = now()
		WHERE id = $1 AND status = 'pending' AND is_cancelled = FALSE
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to complete investment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SetProviderRef attaches the checkout session or provider order id once the
// external flow has been opened.
func (r *Repository) SetProviderRef(ctx context.Context, id uuid.UUID, ref string) error {
	_, err := r.db.Exec(ctx, `UPDATE investments SET provider_ref = $1, updated_at = now() WHERE id = $2`, ref, id)
	if err != nil {
		zap.L().Error("failed to set provider ref", zap.Error(err))
		return err
	}
	return nil
}

// SumCompletedByProject is the reconciliation source of truth for a project's
// collected amount.
func (r *Repository) SumCompletedByProject(ctx context.Context, projectID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM investments
		WHERE project_id = $1 AND status = $2 AND is_cancelled = FALSE
	`
	var sum float64
	err := r.db.QueryRow(ctx, query, projectID, domain.TransactionStatusCompleted).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum investments", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
