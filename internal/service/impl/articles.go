package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/domain"
	"github.com/tsnews/newsdesk/internal/events"
	"github.com/tsnews/newsdesk/internal/service"
)

func (s *AppService) GetArticle(ctx context.Context, id int64, viewerID int64) (domain.Article, error) {
	article, err := s.DB.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return domain.Article{}, err
		}
		return domain.Article{}, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}

	if article.Tracked() {
		err = s.Bus.Publish(ctx, events.Viewed, events.NodePayload{
			Article: article,
			ActorID: viewerID,
		})
		if err != nil {
			// The reader still gets the page; the missed entry is logged
			// for operators.
			log.Error().Err(err).Int64("article", article.ID).Msg("failed to record view")
		}
	}

	return article, nil
}

func (s *AppService) CreateArticle(ctx context.Context, category, title, body string, requester domain.Identity) (int64, error) {
	if !requester.HasPermission(domain.PermStatsAll) {
		return 0, service.ErrForbidden
	}

	id, err := s.DB.CreateArticle(ctx, db.CreateArticleParams{
		Category: category,
		Title:    title,
		Body:     body,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}
	return id, nil
}

func (s *AppService) UpdateArticle(ctx context.Context, id int64, title, body string, requester domain.Identity) error {
	if requester.Anonymous() {
		return service.ErrForbidden
	}

	article, err := s.DB.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}

	if err = s.DB.UpdateArticle(ctx, id, title, body); err != nil {
		return fmt.Errorf("%w: %s", service.ErrUnavailable, err)
	}

	if article.Tracked() {
		err = s.Bus.Publish(ctx, events.Edited, events.NodePayload{
			Article: article,
			ActorID: requester.UserID,
		})
		if err != nil {
			log.Error().Err(err).Int64("article", article.ID).Msg("failed to record edit")
		}
	}

	return nil
}
