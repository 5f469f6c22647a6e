package service

import (
	"context"

	"github.com/tsnews/newsdesk/internal/domain"
)

type Articles interface {
	// GetArticle loads an article and, for tracked categories, publishes a
	// Viewed notification for the acting user (0 for anonymous).
	GetArticle(ctx context.Context, id int64, viewerID int64) (domain.Article, error)
	CreateArticle(ctx context.Context, category, title, body string, requester domain.Identity) (int64, error)
	// UpdateArticle saves the new title and body and, for tracked
	// categories, publishes an Edited notification.
	UpdateArticle(ctx context.Context, id int64, title, body string, requester domain.Identity) error
}
