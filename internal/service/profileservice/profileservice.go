package profileservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	UpdateIdentity(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var ErrProfileNotFound = errors.New("profile not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *Service) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list profiles", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

type IdentityUpdate struct {
	FirstName string
	LastName  string
	Address   string
	Phone     string
	IsAdmin   bool
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, update IdentityUpdate) (*domain.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	profile.FirstName = update.FirstName
	profile.LastName = update.LastName
	profile.Address = update.Address
	profile.Phone = update.Phone
	profile.IsAdmin = update.IsAdmin

	updated, err := s.repo.UpdateIdentity(ctx, profile)
	if err != nil {
		zap.L().Error("failed to update profile", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrProfileNotFound
	}
	return updated, nil
}

func (s *Service) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete profile", zap.Error(err))
		return err
	}
	return nil
}

// Emails resolves campaign recipients: every profile when ids is empty,
// otherwise only the selected ones.
func (s *Service) Emails(ctx context.Context, ids []uuid.UUID) ([]string, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		emails := make([]string, 0, len(profiles))
		for _, p := range profiles {
			if p.Email != "" {
				emails = append(emails, p.Email)
			}
		}
		return emails, nil
	}

	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var emails []string
	for _, p := range profiles {
		if _, ok := wanted[p.ID]; ok && p.Email != "" {
			emails = append(emails, p.Email)
		}
	}
	return emails, nil
}
