package scheduler

import (
	"fmt"
	"sync"
	"time"

	"backoffice/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages one-shot cron jobs firing at absolute instants.
type Scheduler struct {
	cron *cron.Cron
	log  logger.Logger
	mu   sync.Mutex
}

// NewScheduler creates and starts a cron scheduler.
func NewScheduler(log logger.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	c.Start()
	log.Info("Cron scheduler started.")
	return &Scheduler{
		cron: c,
		log:  log,
	}
}

// onceAt is a cron schedule with a single activation at an absolute instant.
// A field spec cannot express this: specs re-match every year, which would
// fire targets more than a year away at the first calendar match.
type onceAt struct {
	at time.Time
}

// Next returns the target instant while it is still ahead of t, and the zero
// time afterwards so the entry never activates again.
func (s onceAt) Next(t time.Time) time.Time {
	if t.Before(s.at) {
		return s.at
	}
	return time.Time{}
}

// AddAt schedules cmd to run once at time t. The caller removes the entry
// after the run.
func (s *Scheduler) AddAt(t time.Time, cmd func()) cron.EntryID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.cron.Schedule(onceAt{at: t}, cron.FuncJob(cmd))
	s.log.Debug(fmt.Sprintf("Added cron job %d firing at %v", id, t))
	return id
}

// RemoveJob removes a job from the scheduler by its EntryID.
func (s *Scheduler) RemoveJob(id cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Remove(id)
}

// Stop stops the cron scheduler and waits for running jobs to complete. The
// mutex is not held while waiting so that finishing jobs can still remove
// their own entries.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.mu.Unlock()

	if c != nil {
		ctx := c.Stop()
		<-ctx.Done()
		s.log.Info("Cron scheduler stopped.")
	}
}

// GetEntries returns the list of scheduled entries. Useful for debugging.
func (s *Scheduler) GetEntries() []cron.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entries()
}
