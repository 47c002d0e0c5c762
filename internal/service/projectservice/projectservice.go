package projectservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindInvestable(ctx context.Context) ([]domain.Project, error)
	FindActive(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var ErrProjectNotFound = errors.New("project not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Progress is the 0-100 display value for a funding campaign. A zero target
// is a data error: it logs and reports 0 instead of leaking NaN/Inf into the
// catalog.
func Progress(collected, target float64) float64 {
	if target == 0 {
		zap.L().Error("project has zero target amount, progress undefined")
		return 0
	}
	progress := collected / target * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// RemainingAmount bounds the investable input range; over-subscribed projects
// report 0, never a negative cap.
func RemainingAmount(p *domain.Project) float64 {
	remaining := p.TargetAmount - p.CollectedAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get project", zap.Error(err))
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *Service) GetInvestable(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.FindInvestable(ctx)
	if err != nil {
		zap.L().Error("failed to get investable projects", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (s *Service) GetActive(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get active projects", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (s *Service) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project.Status == "" {
		project.Status = domain.ProjectStatusUpcoming
	}
	created, err := s.repo.Create(ctx, project)
	if err != nil {
		zap.L().Error("failed to create project", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		zap.L().Error("failed to update project", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrProjectNotFound
	}
	return updated, nil
}

func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete project", zap.Error(err))
		return err
	}
	return nil
}
