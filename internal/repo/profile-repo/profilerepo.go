package profilerepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/pg"
)

const profileColumns = `id, email, password_hash, first_name, last_name, address, phone,
       is_admin, available_balance, invested_amount, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FirstName, &p.LastName, &p.Address,
		&p.Phone, &p.IsAdmin, &p.AvailableBalance, &p.InvestedAmount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find profile by email", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find profile by id", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (email, password_hash, first_name, last_name, address, phone, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, profile.Email, profile.PasswordHash, profile.FirstName,
		profile.LastName, profile.Address, profile.Phone, profile.IsAdmin).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		err := rows.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FirstName, &p.LastName, &p.Address,
			&p.Phone, &p.IsAdmin, &p.AvailableBalance, &p.InvestedAmount, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan profile row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// UpdateIdentity updates the non-ledger fields. Ledger fields change only
// through ApplyLedgerDelta.
func (r *Repository) UpdateIdentity(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET first_name = $1, last_name = $2, address = $3, phone = $4, is_admin = $5, updated_at = now()
		WHERE id = $6
		RETURNING ` + profileColumns
	updated, err := scanProfile(r.db.QueryRow(ctx, query, profile.FirstName, profile.LastName,
		profile.Address, profile.Phone, profile.IsAdmin, profile.ID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update profile", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// ApplyLedgerDelta adds the deltas to the ledger fields in one conditional
// update. No row comes back when the non-negativity guard rejects the change,
// so a concurrent stale read can never drive a balance below zero.
func (r *Repository) ApplyLedgerDelta(ctx context.Context, id uuid.UUID, balanceDelta, investedDelta float64) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET available_balance = available_balance + $1,
		    invested_amount = invested_amount + $2,
		    updated_at = now()
		WHERE id = $3
		  AND available_balance + $1 >= 0
		  AND invested_amount + $2 >= 0
		RETURNING ` + profileColumns
	updated, err := scanProfile(r.db.QueryRow(ctx, query, balanceDelta, investedDelta, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to apply ledger delta", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete profile", zap.Error(err))
		return err
	}
	return nil
}
