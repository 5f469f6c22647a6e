package impl

import (
	"context"
	"time"

	"github.com/tsnews/newsdesk/internal/config"
	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/events"
	"github.com/tsnews/newsdesk/internal/mailer"
	"github.com/tsnews/newsdesk/internal/service"
	"github.com/tsnews/newsdesk/internal/validate"
)

const BcryptCost = 12

type AppService struct {
	Config config.Configuration
	DB     db.DB
	Mailer mailer.Mailer
	Bus    *events.Bus
	Limits validate.Limits
	// now is swappable for deterministic timestamps in tests.
	now func() int64
}

// New builds the service and registers it on the notification bus. The bus
// must be non-nil; content operations publish to it on every tracked view
// and edit.
func New(cfg config.Configuration, d db.DB, m mailer.Mailer, bus *events.Bus) service.Service {
	limits := validate.DefaultLimits()
	if cfg.UsernameMax > 0 {
		limits.UsernameMax = cfg.UsernameMax
	}
	if cfg.CountryMax > 0 {
		limits.CountryMax = cfg.CountryMax
	}
	if cfg.AboutMax > 0 {
		limits.AboutMax = cfg.AboutMax
	}

	s := &AppService{
		Config: cfg,
		DB:     d,
		Mailer: m,
		Bus:    bus,
		Limits: limits,
		now:    func() int64 { return time.Now().Unix() },
	}
	s.subscribe()
	return s
}

// subscribe wires the activity log to the content notifications. This is the
// only place subscribers are registered.
func (s *AppService) subscribe() {
	s.Bus.Subscribe(events.Viewed, func(ctx context.Context, p events.NodePayload) error {
		return s.RecordView(ctx, p.Article, p.ActorID)
	})
	s.Bus.Subscribe(events.Edited, func(ctx context.Context, p events.NodePayload) error {
		return s.RecordEdit(ctx, p.Article, p.ActorID)
	})
}

func (s *AppService) bcryptCost() int {
	if s.Config.BcryptCost > 0 {
		return s.Config.BcryptCost
	}
	return BcryptCost
}
