// Package events carries "article viewed" and "article edited" notifications
// from the content handlers to the activity log. The variant set is fixed and
// subscribers are registered explicitly at startup; there is no discovery.
package events

import (
	"context"
	"errors"
	"sync"

	"github.com/tsnews/newsdesk/internal/domain"
)

type Event int

const (
	Viewed Event = iota
	Edited
)

// NodePayload identifies the article acted on and who acted. ActorID is 0
// for anonymous viewers.
type NodePayload struct {
	Article domain.Article
	ActorID int64
}

type Handler func(ctx context.Context, p NodePayload) error

// Bus is a synchronous in-process dispatcher. Handlers run on the publishing
// goroutine, in registration order, so a recorded view is durable before the
// response is written.
type Bus struct {
	mu   sync.RWMutex
	subs map[Event][]Handler
}

func NewBus() *Bus {
	return &Bus{subs: map[Event][]Handler{}}
}

func (b *Bus) Subscribe(e Event, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[e] = append(b.subs[e], h)
}

// Publish delivers the payload to every subscriber and joins their errors.
// All subscribers run even when an earlier one fails.
func (b *Bus) Publish(ctx context.Context, e Event, p NodePayload) error {
	b.mu.RLock()
	handlers := b.subs[e]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
