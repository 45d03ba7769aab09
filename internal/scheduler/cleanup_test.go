package scheduler

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCleaner struct {
	mu         sync.Mutex
	authorRuns int
	catRuns    int
	authorErr  error
	notify     chan struct{}
}

func (f *fakeCleaner) DeleteOrphanAuthors() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authorRuns++
	return 1, f.authorErr
}

func (f *fakeCleaner) DeleteOrphanCategories() (int64, error) {
	f.mu.Lock()
	f.catRuns++
	f.mu.Unlock()
	if f.notify != nil {
		f.notify <- struct{}{}
	}
	return 0, nil
}

func (f *fakeCleaner) runs() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authorRuns, f.catRuns
}

func TestCleanupScheduler_StartStop(t *testing.T) {
	cleaner := &fakeCleaner{}
	s := NewCleanupScheduler(cleaner, "0 3 * * *")

	require.NoError(t, s.Start(context.Background()))
	// Starting twice is a no-op
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	s.Stop()
}

func TestCleanupScheduler_StopReleasesMonitor(t *testing.T) {
	cleaner := &fakeCleaner{}
	s := NewCleanupScheduler(cleaner, "0 3 * * *")

	baseline := runtime.NumGoroutine()
	require.NoError(t, s.Start(context.Background()))
	s.Stop()

	// A direct Stop must also end the goroutine watching the start context
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCleanupScheduler_InvalidSchedule(t *testing.T) {
	s := NewCleanupScheduler(&fakeCleaner{}, "not a schedule")
	assert.Error(t, s.Start(context.Background()))
}

func TestCleanupScheduler_RunNow(t *testing.T) {
	cleaner := &fakeCleaner{notify: make(chan struct{}, 1)}
	s := NewCleanupScheduler(cleaner, "0 3 * * *")

	s.RunNow()

	select {
	case <-cleaner.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup did not run")
	}

	authors, categories := cleaner.runs()
	assert.Equal(t, 1, authors)
	assert.Equal(t, 1, categories)
}

func TestCleanupScheduler_RunNowStopsOnError(t *testing.T) {
	cleaner := &fakeCleaner{authorErr: errors.New("db locked")}
	s := NewCleanupScheduler(cleaner, "0 3 * * *")

	s.RunNow()
	time.Sleep(100 * time.Millisecond)

	authors, categories := cleaner.runs()
	assert.Equal(t, 1, authors)
	assert.Equal(t, 0, categories)
}

func TestCleanupScheduler_ContextCancelStops(t *testing.T) {
	cleaner := &fakeCleaner{}
	s := NewCleanupScheduler(cleaner, "0 3 * * *")

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	cancel()

	assert.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return !s.isRunning
	}, 2*time.Second, 10*time.Millisecond)
}
