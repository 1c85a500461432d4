package database

import (
	"context"
	"fmt"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// Create inserts a new reminder and returns the generated ID.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) (uint, error) {
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return 0, fmt.Errorf("failed to create reminder for news %d: %w", reminder.NewsID, err)
	}
	return reminder.ID, nil
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, id uint) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find reminder %d: %w", id, err)
	}
	return &reminder, nil
}

// FindByNewsAndRequester retrieves the oldest reminder for the pair.
// Duplicates are possible; callers cannot rely on which one they get beyond
// the oldest-first ordering.
func (r *reminderRepository) FindByNewsAndRequester(ctx context.Context, newsID, requesterID uint) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := r.db.WithContext(ctx).
		Where("news_id = ? AND requester_id = ?", newsID, requesterID).
		Order("id asc").
		First(&reminder).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reminder for news %d and user %d: %w", newsID, requesterID, err)
	}
	return &reminder, nil
}

// FindAll retrieves all reminders (used for rescheduling on startup).
func (r *reminderRepository) FindAll(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find all reminders: %w", err)
	}
	return reminders, nil
}

// AttachHandle sets the scheduler handle on a reminder. A second call with a
// different handle overwrites the first (last-write-wins).
func (r *reminderRepository) AttachHandle(ctx context.Context, id uint, handle string) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Reminder{}).
		Where("id = ?", id).
		Update("scheduler_handle", handle).Error
	if err != nil {
		return fmt.Errorf("failed to attach handle to reminder %d: %w", id, err)
	}
	return nil
}

// Delete deletes a reminder by its ID. Missing rows are not an error.
func (r *reminderRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Reminder{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete reminder %d: %w", id, err)
	}
	return nil
}
