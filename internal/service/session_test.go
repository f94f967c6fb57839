package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"story-time/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	closed int
}

func (f *fakeSession) close() { f.closed++ }

func TestSessionRegistry_AddWithRemove(t *testing.T) {
	r := newSessionRegistry[*fakeSession]("test", time.Minute)
	fs := &fakeSession{}

	id, err := r.add(func(string) (*fakeSession, error) { return fs, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, r.len())

	called := false
	require.NoError(t, r.with(id, func(s *fakeSession) error {
		called = s == fs
		return nil
	}))
	assert.True(t, called)

	require.NoError(t, r.remove(id))
	assert.Equal(t, 1, fs.closed)
	assert.Equal(t, 0, r.len())

	var derr *domain.DomainError
	require.ErrorAs(t, r.with(id, func(*fakeSession) error { return nil }), &derr)
	assert.Equal(t, domain.CodeSessionNotFound, derr.Code)
	assert.Error(t, r.remove(id))
}

func TestSessionRegistry_BuildFailure(t *testing.T) {
	r := newSessionRegistry[*fakeSession]("test", time.Minute)
	buildErr := errors.New("boom")

	_, err := r.add(func(string) (*fakeSession, error) { return nil, buildErr })
	assert.ErrorIs(t, err, buildErr)
	assert.Equal(t, 0, r.len())
}

func TestSessionRegistry_SweepExpiresIdle(t *testing.T) {
	r := newSessionRegistry[*fakeSession]("test", time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	idle, active := &fakeSession{}, &fakeSession{}
	_, err := r.add(func(string) (*fakeSession, error) { return idle, nil })
	require.NoError(t, err)
	activeID, err := r.add(func(string) (*fakeSession, error) { return active, nil })
	require.NoError(t, err)

	now = now.Add(45 * time.Second)
	require.NoError(t, r.with(activeID, func(*fakeSession) error { return nil }))

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, r.sweep())
	assert.Equal(t, 1, idle.closed)
	assert.Equal(t, 0, active.closed)
	assert.Equal(t, 1, r.len())
}

func TestSessionRegistry_RunClosesAllOnShutdown(t *testing.T) {
	r := newSessionRegistry[*fakeSession]("test", time.Hour)
	fs := &fakeSession{}
	_, err := r.add(func(string) (*fakeSession, error) { return fs, nil })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.run(ctx, 10*time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
	assert.Equal(t, 1, fs.closed)
	assert.Equal(t, 0, r.len())
}

func TestSessionRegistry_SerializesAccess(t *testing.T) {
	r := newSessionRegistry[*fakeSession]("test", time.Minute)
	id, err := r.add(func(string) (*fakeSession, error) { return &fakeSession{}, nil })
	require.NoError(t, err)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.with(id, func(*fakeSession) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
}
