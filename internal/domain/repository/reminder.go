package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// Create inserts a new reminder with a null scheduler handle and returns
	// the generated ID.
	Create(ctx context.Context, reminder *entity.Reminder) (uint, error)
	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Reminder, error)
	// FindByNewsAndRequester retrieves a reminder for the (news, requester)
	// pair. If duplicates exist, the oldest row is returned.
	FindByNewsAndRequester(ctx context.Context, newsID, requesterID uint) (*entity.Reminder, error)
	// FindAll retrieves all reminders (used for rescheduling on startup).
	FindAll(ctx context.Context) ([]*entity.Reminder, error)
	// AttachHandle sets the scheduler handle on a reminder. Last write wins.
	AttachHandle(ctx context.Context, id uint, handle string) error
	// Delete deletes a reminder by its ID. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, id uint) error
}
