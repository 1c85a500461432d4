package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// NewsRepository defines the interface for news data operations.
type NewsRepository interface {
	// Create inserts a news item and returns the generated ID.
	Create(ctx context.Context, news *entity.News) (uint, error)
	// FindByID retrieves a news item by its ID.
	FindByID(ctx context.Context, id uint) (*entity.News, error)
	// FindAll retrieves news items ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*entity.News, error)
	// SetReminderCount persists a new value of the reminder counter.
	SetReminderCount(ctx context.Context, id uint, count int) error
}
