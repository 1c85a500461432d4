package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"backoffice/internal/domain/constant"
	"backoffice/internal/infrastructure/scheduler"
	appErrors "backoffice/internal/pkg/errors"
	"backoffice/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type activeTask struct {
	entryID  cron.EntryID
	hasEntry bool
	started  bool
}

// cronGateway backs the SchedulerGateway with an in-process cron runner.
// Outstanding tasks are tracked in a mutex-guarded map keyed by handle:
// populated on Schedule, removed on fire or on explicit Cancel. Restart
// durability comes from the reminder store plus the startup recovery pass,
// not from the runner itself.
type cronGateway struct {
	scheduler *scheduler.Scheduler
	log       logger.Logger

	mu     sync.Mutex
	tasks  map[constant.TaskName]TaskFunc
	active map[string]*activeTask
}

// NewCronGateway creates a SchedulerGateway backed by the cron scheduler.
func NewCronGateway(sched *scheduler.Scheduler, log logger.Logger) SchedulerGateway {
	return &cronGateway{
		scheduler: sched,
		log:       log,
		tasks:     make(map[constant.TaskName]TaskFunc),
		active:    make(map[string]*activeTask),
	}
}

// RegisterTask binds a task name to its executor.
func (g *cronGateway) RegisterTask(name constant.TaskName, fn TaskFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks[name] = fn
}

// Schedule accepts a task to run no earlier than notBefore. A notBefore in
// the past or present is executed immediately on its own goroutine.
func (g *cronGateway) Schedule(ctx context.Context, name constant.TaskName, notBefore time.Time, reminderID uint) (string, error) {
	g.mu.Lock()
	fn, ok := g.tasks[name]
	g.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("%w: task %s not registered", appErrors.ErrScheduling, name)
	}

	handle := uuid.NewString()

	now := time.Now()
	if !notBefore.After(now) {
		g.mu.Lock()
		g.active[handle] = &activeTask{}
		g.mu.Unlock()
		go g.run(handle, name, fn, reminderID)
		g.log.Info(fmt.Sprintf("Task %s for reminder %d is past due, running immediately (handle %s)", name, reminderID, handle))
		return handle, nil
	}

	entryID := g.scheduler.AddAt(notBefore, func() {
		g.run(handle, name, fn, reminderID)
	})

	g.mu.Lock()
	g.active[handle] = &activeTask{entryID: entryID, hasEntry: true}
	g.mu.Unlock()

	g.log.Info(fmt.Sprintf("Scheduled task %s for reminder %d at %v (handle %s)", name, reminderID, notBefore, handle))
	return handle, nil
}

// run executes a task once and retires its handle. A handle already removed
// by Cancel means the task must not run.
func (g *cronGateway) run(handle string, name constant.TaskName, fn TaskFunc, reminderID uint) {
	g.mu.Lock()
	task, ok := g.active[handle]
	if !ok {
		g.mu.Unlock()
		return
	}
	task.started = true
	g.mu.Unlock()

	if err := fn(context.Background(), reminderID); err != nil {
		g.log.Error(fmt.Sprintf("Task %s failed for reminder %d", name, reminderID), err)
	}

	g.mu.Lock()
	delete(g.active, handle)
	g.mu.Unlock()
	if task.hasEntry {
		g.scheduler.RemoveJob(task.entryID)
	}
}

// Cancel removes a pending task by handle. Tasks that already started or
// completed, and unknown handles, yield false without error.
func (g *cronGateway) Cancel(ctx context.Context, handle string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	task, ok := g.active[handle]
	if !ok || task.started {
		return false
	}
	if task.hasEntry {
		g.scheduler.RemoveJob(task.entryID)
	}
	delete(g.active, handle)
	g.log.Debug(fmt.Sprintf("Cancelled scheduled task (handle %s)", handle))
	return true
}

// Stop shuts down the cron backend, waiting for running tasks.
func (g *cronGateway) Stop() {
	g.scheduler.Stop()
}
