package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
)

type articleRepository struct {
	pool *pgxpool.Pool
}

// NewArticleRepository returns a Postgres-backed implementation of ArticleRepository.
func NewArticleRepository(pool *pgxpool.Pool) repository.ArticleRepository {
	return &articleRepository{pool: pool}
}

func (r *articleRepository) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if article == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO news (title, content, image_path)
	VALUES ($1, $2, $3)
	RETURNING id, published_at
	`
	if err := r.pool.QueryRow(ctx, query,
		article.Title,
		article.Content,
		article.ImagePath,
	).Scan(&article.ID, &article.PublishedAt); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "insert article", err)
	}
	return article, nil
}

func (r *articleRepository) List(ctx context.Context) ([]domain.Article, error) {
	const query = `
	SELECT id, title, content, image_path, published_at
	FROM news
	ORDER BY published_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "list articles", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.ImagePath,
			&article.PublishedAt,
		); err != nil {
			return nil, domain.WrapError(domain.ErrCodeStorage, "scan article", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "iterate articles", err)
	}
	return articles, nil
}
