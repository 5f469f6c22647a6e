package db

import (
	"context"

	"github.com/tsnews/newsdesk/internal/domain"
)

type CreateArticleParams struct {
	Category string
	Title    string
	Body     string
}

type Articles interface {
	GetArticle(ctx context.Context, id int64) (domain.Article, error)
	CreateArticle(ctx context.Context, p CreateArticleParams) (int64, error)
	UpdateArticle(ctx context.Context, id int64, title, body string) error
	// ListNewsMissingDisplayTitle pages through news articles whose display
	// title is still empty, ordered by id, starting after afterID.
	ListNewsMissingDisplayTitle(ctx context.Context, afterID int64, limit int) ([]domain.Article, error)
	SetDisplayTitle(ctx context.Context, id int64, title string) error
}
