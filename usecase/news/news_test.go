package news

import (
	"context"
	"testing"
	"time"

	"github.com/causeway/backend/domain"
)

type fakeArticleRepo struct {
	articles []*domain.Article
}

func (f *fakeArticleRepo) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	article.ID = int64(len(f.articles) + 1)
	article.PublishedAt = time.Now()
	f.articles = append(f.articles, article)
	return article, nil
}

func (f *fakeArticleRepo) List(ctx context.Context) ([]domain.Article, error) {
	var out []domain.Article
	for _, a := range f.articles {
		out = append(out, *a)
	}
	return out, nil
}

func TestPublishValidation(t *testing.T) {
	cases := []struct {
		name    string
		article *domain.Article
	}{
		{"missing title", &domain.Article{Content: "body"}},
		{"blank title", &domain.Article{Title: " ", Content: "body"}},
		{"missing content", &domain.Article{Title: "Annual Report"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeArticleRepo{}
			uc := New(repo, nil)

			_, err := uc.Publish(context.Background(), tc.article)
			if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected INVALID error, got %v", err)
			}
			if len(repo.articles) != 0 {
				t.Fatalf("expected no article published for invalid input")
			}
		})
	}
}

func TestPublishAndList(t *testing.T) {
	repo := &fakeArticleRepo{}
	uc := New(repo, nil)

	published, err := uc.Publish(context.Background(), &domain.Article{
		Title:   " Annual Report ",
		Content: "We did a lot this year.",
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.Title != "Annual Report" {
		t.Fatalf("expected trimmed title, got %q", published.Title)
	}

	articles, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected one article, got %d", len(articles))
	}
}
