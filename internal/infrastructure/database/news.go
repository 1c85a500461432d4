package database

import (
	"context"
	"fmt"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of NewsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

// Create inserts a news item and returns the generated ID.
func (r *newsRepository) Create(ctx context.Context, news *entity.News) (uint, error) {
	if err := r.db.WithContext(ctx).Create(news).Error; err != nil {
		return 0, fmt.Errorf("failed to create news %q: %w", news.Name, err)
	}
	return news.ID, nil
}

// FindByID retrieves a news item by its ID.
func (r *newsRepository) FindByID(ctx context.Context, id uint) (*entity.News, error) {
	var news entity.News
	if err := r.db.WithContext(ctx).First(&news, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find news %d: %w", id, err)
	}
	return &news, nil
}

// FindAll retrieves news items, newest first.
func (r *newsRepository) FindAll(ctx context.Context) ([]*entity.News, error) {
	var news []*entity.News
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&news).Error; err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return news, nil
}

// SetReminderCount persists a new reminder counter value. The counter lives in
// its own column; it is intentionally not the likes column.
func (r *newsRepository) SetReminderCount(ctx context.Context, id uint, count int) error {
	err := r.db.WithContext(ctx).
		Model(&entity.News{}).
		Where("id = ?", id).
		Update("reminder", count).Error
	if err != nil {
		return fmt.Errorf("failed to update reminder count for news %d: %w", id, err)
	}
	return nil
}
