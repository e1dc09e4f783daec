package news

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
)

type UseCase struct {
	articles repository.ArticleRepository
	logger   *zap.Logger
}

func New(articles repository.ArticleRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		articles: articles,
		logger:   logger,
	}
}

func (uc *UseCase) Publish(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if article == nil {
		return nil, domain.ErrInvalidPayload
	}

	article.Title = strings.TrimSpace(article.Title)
	if article.Title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "article title is required")
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "article content is required")
	}

	return uc.articles.Create(ctx, article)
}

func (uc *UseCase) List(ctx context.Context) ([]domain.Article, error) {
	return uc.articles.List(ctx)
}
