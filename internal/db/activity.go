package db

import (
	"context"

	"github.com/tsnews/newsdesk/internal/domain"
)

// CreateEntryParams describes one view or edit to append. A nil UserID
// records an anonymous action.
type CreateEntryParams struct {
	UserID    *int64
	ArticleID int64
	Action    domain.ActionKind
	Created   int64
}

// EntryFilter narrows and orders a listing query. Zero values mean "any".
// SortBy must already be restricted to a displayed column by the caller.
type EntryFilter struct {
	UserID    int64
	ArticleID int64
	Action    domain.ActionKind
	SortBy    string
	SortDesc  bool
	Limit     int
	Offset    int
}

type Activity interface {
	InsertEntry(ctx context.Context, p CreateEntryParams) (int64, error)
	GetEntry(ctx context.Context, id int64) (domain.ActivityEntry, error)
	ListEntries(ctx context.Context, f EntryFilter) ([]domain.ActivityEntry, error)
	CountEntries(ctx context.Context, f EntryFilter) (int64, error)
	UpdateEntryComment(ctx context.Context, id int64, comment string) error
	DeleteEntry(ctx context.Context, id int64) error
	// DeleteAllEntries removes every entry in bounded chunks and returns the
	// number deleted.
	DeleteAllEntries(ctx context.Context) (int64, error)
}
