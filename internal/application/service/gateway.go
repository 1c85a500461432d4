package service

import (
	"context"
	"time"

	"backoffice/internal/domain/constant"
)

// TaskFunc is a deferred unit of work. The payload is the reminder ID the
// lifecycle service passed at schedule time.
type TaskFunc func(ctx context.Context, reminderID uint) error

// SchedulerGateway abstracts "execute this task no earlier than a timestamp".
// Implementations guarantee the task never runs before notBefore, but make no
// promise about how promptly it runs afterwards. A notBefore in the past means
// no constraint: the task runs as soon as possible.
type SchedulerGateway interface {
	// RegisterTask binds a task name to its executor. Must be called before
	// the first Schedule for that name.
	RegisterTask(name constant.TaskName, fn TaskFunc)
	// Schedule accepts a task and returns an opaque handle usable for
	// cancellation. Safe for concurrent use.
	Schedule(ctx context.Context, name constant.TaskName, notBefore time.Time, reminderID uint) (string, error)
	// Cancel requests best-effort cancellation by handle. It returns true only
	// when the task had not yet started; false for unknown handles, started or
	// completed tasks, and repeated cancels. It never blocks on the task.
	Cancel(ctx context.Context, handle string) bool
	// Stop shuts down the backend and waits for running tasks.
	Stop()
}
