package projectrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/pg"
)

const projectColumns = `id, name, short_description, detailed_description, location, category,
       image_url, target_amount, collected_amount, min_amount, return_rate, status, is_active,
       implementation_date, end_date, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.ShortDescription, &p.DetailedDescription, &p.Location,
		&p.Category, &p.ImageURL, &p.TargetAmount, &p.CollectedAmount, &p.MinAmount,
		&p.ReturnRate, &p.Status, &p.IsActive, &p.ImplementationDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) scanProjects(rows pgx.Rows) ([]domain.Project, error) {
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		err := rows.Scan(&p.ID, &p.Name, &p.ShortDescription, &p.DetailedDescription, &p.Location,
			&p.Category, &p.ImageURL, &p.TargetAmount, &p.CollectedAmount, &p.MinAmount,
			&p.ReturnRate, &p.Status, &p.IsActive, &p.ImplementationDate, &p.EndDate,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan project row", zap.Error(err))
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM order_projects WHERE id = $1`
	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find project", zap.Error(err))
		return nil, err
	}
	return project, nil
}

// FindInvestable lists the projects open for new investments.
func (r *Repository) FindInvestable(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM order_projects
		WHERE status = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, domain.ProjectStatusCollecting)
	if err != nil {
		zap.L().Error("failed to fetch investable projects", zap.Error(err))
		return nil, err
	}
	return r.scanProjects(rows)
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM order_projects
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch active projects", zap.Error(err))
		return nil, err
	}
	return r.scanProjects(rows)
}

func (r *Repository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query := `
		INSERT INTO order_projects (name, short_description, detailed_description, location,
		    category, image_url, target_amount, collected_amount, min_amount, return_rate,
		    status, is_active, implementation_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, project.Name, project.ShortDescription,
		project.DetailedDescription, project.Location, project.Category, project.ImageURL,
		project.TargetAmount, project.CollectedAmount, project.MinAmount, project.ReturnRate,
		project.Status, project.IsActive, project.ImplementationDate, project.EndDate).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save project", zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (r *Repository) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query := `
		UPDATE order_projects
		SET name = $1, short_description = $2, detailed_description = $3, location = $4,
		    category = $5, image_url = $6, target_amount = $7, collected_amount = $8,
		    min_amount = $9, return_rate = $10, status = $11, is_active = $12,
		    implementation_date = $13, end_date = $14, updated_at = now()
		WHERE id = $15
		RETURNING ` + projectColumns
	updated, err := scanProject(r.db.QueryRow(ctx, query, project.Name, project.ShortDescription,
		project.DetailedDescription, project.Location, project.Category, project.ImageURL,
		project.TargetAmount, project.CollectedAmount, project.MinAmount, project.ReturnRate,
		project.Status, project.IsActive, project.ImplementationDate, project.EndDate, project.ID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update project", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// UpdateFunding writes the recomputed collected amount and status.
func (r *Repository) UpdateFunding(ctx context.Context, id uuid.UUID, collected float64, status string) error {
	query := `
		UPDATE order_projects
		SET collected_amount = $1, status = $2, updated_at = now()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, collected, status, id)
	if err != nil {
		zap.L().Error("failed to update project funding", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM order_projects WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete project", zap.Error(err))
		return err
	}
	return nil
}
