package newsletterrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/pg"
)

const articleColumns = `id, title, content, is_published, published_at, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) scanArticles(rows pgx.Rows) ([]domain.NewsletterArticle, error) {
	defer rows.Close()

	var articles []domain.NewsletterArticle
	for rows.Next() {
		var a domain.NewsletterArticle
		err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.IsPublished, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan article row", zap.Error(err))
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (r *Repository) Create(ctx context.Context, article *domain.NewsletterArticle) (*domain.NewsletterArticle, error) {
	query := `
		INSERT INTO newsletter_articles (title, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, article.Title, article.Content).
		Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save article", zap.Error(err))
		return nil, err
	}
	return article, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.NewsletterArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM newsletter_articles WHERE id = $1`
	var a domain.NewsletterArticle
	err := r.db.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Title, &a.Content, &a.IsPublished, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find article", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindPublished(ctx context.Context) ([]domain.NewsletterArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM newsletter_articles
		WHERE is_published = TRUE
		ORDER BY published_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch published articles", zap.Error(err))
		return nil, err
	}
	return r.scanArticles(rows)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.NewsletterArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM newsletter_articles ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch articles", zap.Error(err))
		return nil, err
	}
	return r.scanArticles(rows)
}

func (r *Repository) Update(ctx context.Context, article *domain.NewsletterArticle) error {
	query := `
		UPDATE newsletter_articles
		SET title = $1, content = $2, updated_at = now()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, article.Title, article.Content, article.ID)
	if err != nil {
		zap.L().Error("failed to update article", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	query := `
		UPDATE newsletter_articles
		SET is_published = $1,
		    published_at = CASE WHEN $1 THEN now() ELSE NULL END,
		    updated_at = now()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, published, id)
	if err != nil {
		zap.L().Error("failed to publish article", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM newsletter_articles WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete article", zap.Error(err))
		return err
	}
	return nil
}
