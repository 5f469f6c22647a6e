package service

import (
	"context"

	"github.com/tsnews/newsdesk/internal/domain"
)

// PageSize is the fixed page length of the statistics listing.
const PageSize = 50

// Filter narrows the statistics listing. Zero values mean "any"; non-admin
// requesters have UserID overridden with their own id regardless of what
// they ask for.
type Filter struct {
	UserID    int64
	ArticleID int64
	Action    domain.ActionKind
	SortBy    string
	SortDesc  bool
}

type Page struct {
	Entries  []domain.ActivityEntry
	Page     int
	PageSize int
	Total    int64
}

type Activity interface {
	// RecordView appends a view entry for tracked articles; other
	// categories are ignored. viewerID 0 records an anonymous view.
	RecordView(ctx context.Context, article domain.Article, viewerID int64) error
	// RecordEdit appends an edit entry for tracked articles.
	RecordEdit(ctx context.Context, article domain.Article, editorID int64) error
	// Query returns one page of entries the requester is allowed to see.
	Query(ctx context.Context, f Filter, requester domain.Identity, page int) (Page, error)
	// DeleteAll clears the log. Requires the all-records permission.
	DeleteAll(ctx context.Context, requester domain.Identity) (int64, error)
	// DeleteOne removes a single entry, allowed for holders of the
	// all-records permission or for the entry's owner.
	DeleteOne(ctx context.Context, id int64, requester domain.Identity) error
	// UpdateComment replaces the entry's comment, same access rule as
	// DeleteOne; every other field stays untouched.
	UpdateComment(ctx context.Context, id int64, comment string, requester domain.Identity) error
}
