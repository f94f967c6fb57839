package service

import (
	"context"
	"sync"
	"time"

	"story-time/internal/domain"
	"story-time/internal/logger"
	"story-time/internal/util"

	"go.uber.org/zap"
)

// closer is a view-scoped value that releases its listeners and timers.
type closer interface {
	close()
}

type sessionEntry[T closer] struct {
	mu       sync.Mutex
	value    T
	lastSeen time.Time
	closed   bool
}

// sessionRegistry holds the live sessions of one kind. Each session is
// serialized by its own mutex so every event runs to completion before the
// next one starts.
type sessionRegistry[T closer] struct {
	kind string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]*sessionEntry[T]
}

func newSessionRegistry[T closer](kind string, ttl time.Duration) *sessionRegistry[T] {
	return &sessionRegistry[T]{
		kind:    kind,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*sessionEntry[T]),
	}
}

// add registers v under a new id built by build.
func (r *sessionRegistry[T]) add(build func(id string) (T, error)) (string, error) {
	id := util.NewULID()
	v, err := build(id)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	r.entries[id] = &sessionEntry[T]{value: v, lastSeen: r.now()}
	r.mu.Unlock()
	return id, nil
}

// with runs fn on the session under its lock and refreshes its idle timer.
func (r *sessionRegistry[T]) with(id string, fn func(T) error) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	r.mu.Unlock()
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.NewSessionNotFoundError(id)
	}
	e.lastSeen = r.now()
	return fn(e.value)
}

// remove closes and forgets the session.
func (r *sessionRegistry[T]) remove(id string) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}
	e.shutdown()
	return nil
}

func (e *sessionEntry[T]) shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.closed {
		e.closed = true
		e.value.close()
	}
}

func (r *sessionRegistry[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// sweep closes every session idle for longer than the TTL and returns how
// many were closed.
func (r *sessionRegistry[T]) sweep() int {
	cutoff := r.now().Add(-r.ttl)

	var expired []*sessionEntry[T]
	r.mu.Lock()
	for id, e := range r.entries {
		e.mu.Lock()
		idle := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if idle {
			expired = append(expired, e)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, e := range expired {
		e.shutdown()
	}
	return len(expired)
}

// closeAll closes every session. It is used on shutdown.
func (r *sessionRegistry[T]) closeAll() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*sessionEntry[T])
	r.mu.Unlock()

	for _, e := range entries {
		e.shutdown()
	}
}

// run sweeps expired sessions every interval until ctx is done, then closes
// whatever is left.
func (r *sessionRegistry[T]) run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case <-ticker.C:
			if n := r.sweep(); n > 0 {
				logger.Get().Info("Expired idle sessions",
					zap.String("kind", r.kind),
					zap.Int("count", n),
				)
			}
		}
	}
}
