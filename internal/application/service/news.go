package service

import (
	"context"

	"backoffice/internal/application/dto"
)

// NewsService defines the interface for news-related business logic.
type NewsService interface {
	// CreateNews creates a news item and returns its ID.
	CreateNews(ctx context.Context, req dto.CreateNewsRequest) (uint, error)
	// GetNews retrieves a single news item.
	GetNews(ctx context.Context, newsID uint) (dto.NewsResponse, error)
	// ListNews retrieves all news items, newest first.
	ListNews(ctx context.Context) ([]dto.NewsResponse, error)
}
