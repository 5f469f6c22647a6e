package impl

import (
	"errors"
	"testing"

	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/domain"
	"github.com/tsnews/newsdesk/internal/mocks"
	"github.com/tsnews/newsdesk/internal/service"
	"go.uber.org/mock/gomock"
)

func TestGetArticle(t *testing.T) {
	t.Run("news view lands in the activity log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDB(ctrl)
		s := newTestService(d, mocks.NewMockMailer(ctrl))

		stored := newsArticle(10)
		d.EXPECT().GetArticle(ctx, int64(10)).Return(stored, nil)
		// The view flows through the notification bus into the recorder.
		d.EXPECT().InsertEntry(ctx, gomock.Any()).Return(int64(1), nil)

		a, err := s.GetArticle(ctx, 10, 4)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if a.ID != 10 || a.Title != "headline" {
			t.Errorf("unexpected article: %+v", a)
		}
	})

	t.Run("untracked category skips the log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDB(ctrl)
		s := newTestService(d, mocks.NewMockMailer(ctrl))

		d.EXPECT().GetArticle(ctx, int64(11)).Return(domain.Article{ID: 11, Category: "opinion"}, nil)

		if _, err := s.GetArticle(ctx, 11, 4); err != nil {
			t.Fatal("unexpected error:", err)
		}
	})

	t.Run("failed recording still serves the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDB(ctrl)
		s := newTestService(d, mocks.NewMockMailer(ctrl))

		d.EXPECT().GetArticle(ctx, int64(10)).Return(newsArticle(10), nil)
		d.EXPECT().InsertEntry(ctx, gomock.Any()).Return(int64(0), errors.New("disk full"))

		if _, err := s.GetArticle(ctx, 10, 4); err != nil {
			t.Fatal("the article should be served regardless:", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDB(ctrl)
		s := newTestService(d, mocks.NewMockMailer(ctrl))

		d.EXPECT().GetArticle(ctx, int64(404)).Return(domain.Article{}, db.ErrNotFound)

		if _, err := s.GetArticle(ctx, 404, 0); !errors.Is(err, db.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCreateArticle(t *testing.T) {
	t.Run("member forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newTestService(mocks.NewMockDB(ctrl), mocks.NewMockMailer(ctrl))

		_, err := s.CreateArticle(ctx, domain.CategoryNews, "headline", "body", member)
		if !errors.Is(err, service.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDB(ctrl)
		s := newTestService(d, mocks.NewMockMailer(ctrl))

		d.EXPECT().CreateArticle(ctx, db.CreateArticleParams{
			Category: domain.CategoryNews,
			Title:    "headline",
			Body:     "body",
		}).Return(int64(21), nil)

		id, err := s.CreateArticle(ctx, domain.CategoryNews, "headline", "body", admin)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if id != 21 {
			t.Errorf("expected id 21, got %d", id)
		}
	})
}

func TestUpdateArticle(t *testing.T) {
	t.Run("anonymous forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newTestService(mocks.NewMockDB(ctrl), mocks.NewMockMailer(ctrl))

		err := s.UpdateArticle(ctx, 10, "headline", "body", domain.Identity{})
		if !errors.Is(err, service.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("edit lands in the activity log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDB(ctrl)
		s := newTestService(d, mocks.NewMockMailer(ctrl))

		d.EXPECT().GetArticle(ctx, int64(10)).Return(newsArticle(10), nil)
		d.EXPECT().UpdateArticle(ctx, int64(10), "new headline", "new body").Return(nil)
		d.EXPECT().InsertEntry(ctx, gomock.Any()).DoAndReturn(
			func(_ any, p db.CreateEntryParams) (int64, error) {
				if p.Action != domain.ActionEdit {
					t.Errorf("expected an edit action, got %s", p.Action)
				}
				if p.UserID == nil || *p.UserID != member.UserID {
					t.Errorf("expected the editor's uid, got %v", p.UserID)
				}
				return 1, nil
			})

		if err := s.UpdateArticle(ctx, 10, "new headline", "new body", member); err != nil {
			t.Fatal("unexpected error:", err)
		}
	})

	t.Run("missing article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := mocks.NewMockDB(ctrl)
		s := newTestService(d, mocks.NewMockMailer(ctrl))

		d.EXPECT().GetArticle(ctx, int64(404)).Return(domain.Article{}, db.ErrNotFound)

		if err := s.UpdateArticle(ctx, 404, "t", "b", member); !errors.Is(err, db.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
