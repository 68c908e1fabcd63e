package fetch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunsFn(t *testing.T) {
	loader := NewLoader()

	ran := false
	err := loader.Load(context.Background(), "accounts", func(ctx context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestSecondLoadCancelsFirst(t *testing.T) {
	loader := NewLoader()

	firstStarted := make(chan struct{})
	firstDone := make(chan error, 1)
	var committed []string
	var mu sync.Mutex

	go func() {
		firstDone <- loader.Load(context.Background(), "accounts", func(ctx context.Context) error {
			close(firstStarted)
			// simula un fetch lento que termina después de ser superseded
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	<-firstStarted

	err := loader.Load(context.Background(), "accounts", func(ctx context.Context) error {
		mu.Lock()
		committed = append(committed, "second")
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	select {
	case firstErr := <-firstDone:
		assert.ErrorIs(t, firstErr, ErrSuperseded, "stale load must report superseded, not commit")
		assert.True(t, Superseded(firstErr))
	case <-time.After(2 * time.Second):
		t.Fatal("first load never returned")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"second"}, committed, "only the newest load commits state")
}

func TestSupersededEvenIfFnSucceeds(t *testing.T) {
	loader := NewLoader()

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		firstDone <- loader.Load(context.Background(), "stats", func(ctx context.Context) error {
			close(firstStarted)
			<-release
			// ignora la cancelación y "termina bien" igual
			return nil
		})
	}()

	<-firstStarted
	require.NoError(t, loader.Load(context.Background(), "stats", func(ctx context.Context) error {
		return nil
	}))
	close(release)

	assert.ErrorIs(t, <-firstDone, ErrSuperseded)
}

func TestIndependentKeysDoNotInterfere(t *testing.T) {
	loader := NewLoader()

	blocked := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- loader.Load(context.Background(), "a", func(ctx context.Context) error {
			close(started)
			<-blocked
			return ctx.Err()
		})
	}()
	<-started

	require.NoError(t, loader.Load(context.Background(), "b", func(ctx context.Context) error {
		return nil
	}))

	close(blocked)
	assert.NoError(t, <-done, "load on another key must not cancel this one")
}

func TestSupersededSwallowsContextCanceled(t *testing.T) {
	assert.True(t, Superseded(context.Canceled))
	assert.False(t, Superseded(context.DeadlineExceeded))
	assert.False(t, Superseded(nil))
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	calls := 0

	for i := 0; i < 5; i++ {
		d.Do(func() {
			mu.Lock()
			calls++
			mu.Unlock()
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "rapid triggers collapse into one trailing call")
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	fired := make(chan struct{}, 1)
	d.Do(func() { fired <- struct{}{} })
	d.Stop()

	select {
	case <-fired:
		t.Fatal("stopped debouncer must not fire")
	case <-time.After(80 * time.Millisecond):
	}
}
