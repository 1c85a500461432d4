package service

import (
	"context"

	"backoffice/internal/application/dto"
)

// ReminderService orchestrates the lifecycle of a single news reminder:
// creation, scheduling, handle persistence, deferred delivery, cancellation.
type ReminderService interface {
	// RequestReminder records a reminder for (news, requester) and schedules
	// its notification one day before the news date. It returns the ID of the
	// created reminder.
	RequestReminder(ctx context.Context, req dto.RequestReminderRequest) (uint, error)
	// CancelReminder withdraws the reminder for (news, requester). Cancelling
	// when no reminder exists is not an error.
	CancelReminder(ctx context.Context, req dto.CancelReminderRequest) error
	// HandleReminderNotification is the deferred unit of work invoked by the
	// scheduler gateway at fire time. A reminder deleted in the meantime is a
	// clean no-op.
	HandleReminderNotification(ctx context.Context, reminderID uint) error
	// InitializeSchedules reloads pending reminders from the store and
	// re-schedules them on startup.
	InitializeSchedules(ctx context.Context) error
}
