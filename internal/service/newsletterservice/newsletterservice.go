package newsletterservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, article *domain.NewsletterArticle) (*domain.NewsletterArticle, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.NewsletterArticle, error)
	FindPublished(ctx context.Context) ([]domain.NewsletterArticle, error)
	FindAll(ctx context.Context) ([]domain.NewsletterArticle, error)
	Update(ctx context.Context, article *domain.NewsletterArticle) error
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var ErrArticleNotFound = errors.New("article not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetPublished(ctx context.Context) ([]domain.NewsletterArticle, error) {
	articles, err := s.repo.FindPublished(ctx)
	if err != nil {
		zap.L().Error("failed to fetch published articles", zap.Error(err))
		return nil, err
	}
	return articles, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.NewsletterArticle, error) {
	articles, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch articles", zap.Error(err))
		return nil, err
	}
	return articles, nil
}

func (s *Service) Create(ctx context.Context, title, content string) (*domain.NewsletterArticle, error) {
	article := &domain.NewsletterArticle{
		Title:   title,
		Content: content,
	}
	created, err := s.repo.Create(ctx, article)
	if err != nil {
		zap.L().Error("failed to create article", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, title, content string) (*domain.NewsletterArticle, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	article.Title = title
	article.Content = content
	if err := s.repo.Update(ctx, article); err != nil {
		zap.L().Error("failed to update article", zap.Error(err))
		return nil, err
	}
	return article, nil
}

func (s *Service) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}
	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		zap.L().Error("failed to publish article", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete article", zap.Error(err))
		return err
	}
	return nil
}
