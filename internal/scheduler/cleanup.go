// Package scheduler runs the periodic orphan-reference cleanup. Book
// updates create authors and categories implicitly and never remove
// them, so records can be left behind once the last referencing book is
// deleted or re-pointed.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

// OrphanCleaner deletes author and category records no book references.
type OrphanCleaner interface {
	DeleteOrphanAuthors() (int64, error)
	DeleteOrphanCategories() (int64, error)
}

// CleanupScheduler manages the periodic cleanup job.
type CleanupScheduler struct {
	cleaner  OrphanCleaner
	schedule string

	cron       *cron.Cron
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewCleanupScheduler creates a scheduler for the given cron schedule.
func NewCleanupScheduler(cleaner OrphanCleaner, schedule string) *CleanupScheduler {
	return &CleanupScheduler{
		cleaner:  cleaner,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *CleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.runCleanup); err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Orphan cleanup scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job.
func (s *CleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	// Release the monitor goroutine waiting on the start context
	if s.cancelFunc != nil {
		s.cancelFunc()
	}

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Orphan cleanup scheduler: stopped")
}

// RunNow triggers an immediate cleanup.
func (s *CleanupScheduler) RunNow() {
	go s.runCleanup()
}

func (s *CleanupScheduler) runCleanup() {
	authors, err := s.cleaner.DeleteOrphanAuthors()
	if err != nil {
		log.Printf("Orphan cleanup: failed to delete orphan authors: %v", err)
		return
	}

	categories, err := s.cleaner.DeleteOrphanCategories()
	if err != nil {
		log.Printf("Orphan cleanup: failed to delete orphan categories: %v", err)
		return
	}

	if authors > 0 || categories > 0 {
		log.Printf("Orphan cleanup: removed %d authors, %d categories", authors, categories)
	}
}
