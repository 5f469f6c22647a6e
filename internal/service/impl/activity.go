package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/domain"
	"github.com/tsnews/newsdesk/internal/metrics"
	"github.com/tsnews/newsdesk/internal/service"
	"github.com/tsnews/newsdesk/internal/validate"
)

func (s *AppService) RecordView(ctx context.Context, article domain.Article, viewerID int64) error {
	return s.record(ctx, article, viewerID, domain.ActionView)
}

func (s *AppService) RecordEdit(ctx context.Context, article domain.Article, editorID int64) error {
	return s.record(ctx, article, editorID, domain.ActionEdit)
}

func (s *AppService) record(ctx context.Context, article domain.Article, userID int64, action domain.ActionKind) error {
	if !article.Tracked() {
		return nil
	}

	p := db.CreateEntryParams{
		ArticleID: article.ID,
		Action:    action,
		Created:   s.now(),
	}
	if userID != 0 {
		p.UserID = &userID
	}

	if _, err := s.DB.InsertEntry(ctx, p); err != nil {
		return fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}
	metrics.ActivityRecorded(action)
	return nil
}

func (s *AppService) Query(ctx context.Context, f service.Filter, requester domain.Identity, page int) (service.Page, error) {
	if requester.Anonymous() {
		return service.Page{}, service.ErrForbidden
	}
	if !requester.HasPermission(domain.PermStatsAll) {
		// Whatever uid the filter carried, a regular user only ever sees
		// their own records.
		f.UserID = requester.UserID
	}
	if page < 1 {
		page = 1
	}

	filter := db.EntryFilter{
		UserID:    f.UserID,
		ArticleID: f.ArticleID,
		Action:    f.Action,
		SortBy:    f.SortBy,
		SortDesc:  f.SortDesc,
		Limit:     service.PageSize,
		Offset:    (page - 1) * service.PageSize,
	}

	entries, err := s.DB.ListEntries(ctx, filter)
	if err != nil {
		return service.Page{}, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}
	total, err := s.DB.CountEntries(ctx, filter)
	if err != nil {
		return service.Page{}, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}

	return service.Page{
		Entries:  entries,
		Page:     page,
		PageSize: service.PageSize,
		Total:    total,
	}, nil
}

func (s *AppService) DeleteAll(ctx context.Context, requester domain.Identity) (int64, error) {
	if !requester.HasPermission(domain.PermStatsAll) {
		return 0, service.ErrForbidden
	}

	count, err := s.DB.DeleteAllEntries(ctx)
	if err != nil {
		return count, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}
	return count, nil
}

func (s *AppService) DeleteOne(ctx context.Context, id int64, requester domain.Identity) error {
	if err := s.authorizeEntry(ctx, id, requester); err != nil {
		return err
	}
	if err := s.DB.DeleteEntry(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}
	return nil
}

func (s *AppService) UpdateComment(ctx context.Context, id int64, comment string, requester domain.Identity) error {
	if err := validate.Comment(comment); err != nil {
		return invalidField(err)
	}
	if err := s.authorizeEntry(ctx, id, requester); err != nil {
		return err
	}
	if err := s.DB.UpdateEntryComment(ctx, id, comment); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}
	return nil
}

// authorizeEntry re-checks permissions on every call; nothing is cached
// across a request and unknown identities deny.
func (s *AppService) authorizeEntry(ctx context.Context, id int64, requester domain.Identity) error {
	if requester.HasPermission(domain.PermStatsAll) {
		return nil
	}
	if !requester.HasPermission(domain.PermStatsOwn) {
		return service.ErrForbidden
	}

	entry, err := s.DB.GetEntry(ctx, id)
	if err != nil {
		// Not-found surfaces as forbidden to avoid confirming whether other
		// users' entries exist.
		return service.ErrForbidden
	}
	if !entry.OwnedBy(requester.UserID) {
		return service.ErrForbidden
	}
	return nil
}

func invalidField(err error) error {
	if fe, ok := err.(validate.FieldError); ok {
		return &service.ValidationError{Fields: validate.FieldErrors{fe}}
	}
	return &service.ValidationError{}
}
