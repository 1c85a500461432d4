package scheduler

import (
	"io"
	"testing"
	"time"

	"backoffice/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s := NewScheduler(logger.NewWithWriter(io.Discard))
	t.Cleanup(s.Stop)
	return s
}

func findEntry(entries []cron.Entry, id cron.EntryID) (cron.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return cron.Entry{}, false
}

func TestAddAtFarFutureNeverActivatesEarly(t *testing.T) {
	s := newTestScheduler(t)

	// A target more than a year out must not fire at an earlier calendar
	// match of the same second/minute/day fields.
	at := time.Now().AddDate(1, 2, 0)
	id := s.AddAt(at, func() {})

	entry, ok := findEntry(s.GetEntries(), id)
	require.True(t, ok, "entry %d not registered", id)

	next := entry.Schedule.Next(time.Now())
	require.False(t, next.Before(at), "next activation %v is before the target %v", next, at)
	assert.True(t, next.Equal(at), "next activation %v must be the target instant %v", next, at)
}

func TestAddAtActivatesExactlyOnce(t *testing.T) {
	s := newTestScheduler(t)

	at := time.Now().Add(time.Hour)
	id := s.AddAt(at, func() {})

	entry, ok := findEntry(s.GetEntries(), id)
	require.True(t, ok)

	assert.True(t, entry.Schedule.Next(at).IsZero(), "no activation once the target has passed")
	assert.True(t, entry.Schedule.Next(at.Add(time.Minute)).IsZero())
}

func TestRemoveJob(t *testing.T) {
	s := newTestScheduler(t)

	id := s.AddAt(time.Now().Add(time.Hour), func() {})
	s.RemoveJob(id)

	_, ok := findEntry(s.GetEntries(), id)
	assert.False(t, ok, "removed entry must not remain scheduled")
}
