package withdrawalrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/pg"
)

const withdrawalColumns = `id, user_id, amount, fees, withdrawal_method, iban, phone_number,
       status, is_cancelled, notified_at, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	err := row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Fees, &wd.WithdrawalMethod, &wd.IBAN,
		&wd.PhoneNumber, &wd.Status, &wd.IsCancelled, &wd.NotifiedAt, &wd.CreatedAt, &wd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) scanWithdrawals(rows pgx.Rows) ([]domain.Withdrawal, error) {
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Fees, &wd.WithdrawalMethod, &wd.IBAN,
			&wd.PhoneNumber, &wd.Status, &wd.IsCancelled, &wd.NotifiedAt, &wd.CreatedAt, &wd.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	return withdrawals, nil
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount, fees, withdrawal_method, iban, phone_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.UserID, withdrawal.Amount, withdrawal.Fees,
		withdrawal.WithdrawalMethod, withdrawal.IBAN, withdrawal.PhoneNumber, withdrawal.Status).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt, &withdrawal.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`
	withdrawal, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return r.scanWithdrawals(rows)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return r.scanWithdrawals(rows)
}

// Cancel flips a live withdrawal to cancelled. It reports whether a row
// matched: the predicate makes the transition single-shot, so a concurrent
// duplicate cancel loses instead of refunding twice.
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE withdrawals
		SET status = 'cancelled', is_cancelled = TRUE, updated_at = now()
		WHERE id = $1 AND is_cancelled = FALSE
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to cancel withdrawal", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Complete marks a pending withdrawal paid out, reporting whether the row was
// still pending.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE withdrawals
		SET status = 'completed', updated_at = now()
		WHERE id = $1 AND status = 'pending' AND is_cancelled = FALSE
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to complete withdrawal", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindUnnotified returns pending bank transfers whose operator notice has not
// gone out yet, so the reconciler can retry the email.
func (r *Repository) FindUnnotified(ctx context.Context, limit uint32) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE withdrawal_method = $1 AND status = $2 AND notified_at IS NULL
		ORDER BY created_at
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, domain.WithdrawalMethodBankTransfer, domain.TransactionStatusPending, limit)
	if err != nil {
		zap.L().Error("failed to fetch unnotified withdrawals", zap.Error(err))
		return nil, err
	}
	return r.scanWithdrawals(rows)
}

func (r *Repository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE withdrawals SET notified_at = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to mark withdrawal notified", zap.Error(err))
		return err
	}
	return nil
}
