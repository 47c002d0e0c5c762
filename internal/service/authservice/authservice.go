package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/pg"
	"github.com/wearshop/investmart/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	profileRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		profileRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

// Register creates a profile with a zeroed ledger. Admin accounts are only
// ever promoted through the back-office, never self-registered.
func (s *Service) Register(ctx context.Context, reg Registration) (*domain.Profile, error) {
	existing, err := s.profileRepo.FindByEmail(ctx, reg.Email)
	if err != nil {
		zap.L().Error("can't find profile: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("profile already exists", zap.String("email", reg.Email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(reg.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	profile := &domain.Profile{
		Email:        reg.Email,
		PasswordHash: hashedPassword,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Address:      reg.Address,
		Phone:        reg.Phone,
	}
	created, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		// A concurrent registration can slip past the lookup above and hit
		// the unique index on email instead.
		if pg.IsUniqueViolation(err) {
			zap.L().Info("profile already exists", zap.String("email", reg.Email))
			return nil, ErrEmailTaken
		}
		zap.L().Error("can't create profile: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("profile successfully registered", zap.String("email", reg.Email))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, email)
	if err != nil || profile == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(profile.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("profile successfully authenticated", zap.String("email", email))
	return profile, nil
}

func (s *Service) GenerateToken(userID uuid.UUID, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
