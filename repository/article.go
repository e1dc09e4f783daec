package repository

import (
	"context"

	"github.com/causeway/backend/domain"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
}
