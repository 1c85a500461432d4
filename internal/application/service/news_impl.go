package service

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/application/dto"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	appErrors "backoffice/internal/pkg/errors"
	"backoffice/internal/pkg/logger"

	"gorm.io/gorm"
)

type newsService struct {
	newsRepo repository.NewsRepository
	log      logger.Logger
}

// NewNewsService creates a new instance of NewsService implementation.
func NewNewsService(newsRepo repository.NewsRepository, log logger.Logger) NewsService {
	return &newsService{
		newsRepo: newsRepo,
		log:      log,
	}
}

func (s *newsService) CreateNews(ctx context.Context, req dto.CreateNewsRequest) (uint, error) {
	news := &entity.News{
		Name:        req.Name,
		Date:        req.Date,
		Description: req.Description,
	}
	newsID, err := s.newsRepo.Create(ctx, news)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create news %q", req.Name), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created news %d (%q)", newsID, req.Name))
	return newsID, nil
}

func (s *newsService) GetNews(ctx context.Context, newsID uint) (dto.NewsResponse, error) {
	news, err := s.newsRepo.FindByID(ctx, newsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NewsResponse{}, appErrors.ErrNewsNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to get news %d", newsID), err)
		return dto.NewsResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToNewsResponse(news), nil
}

func (s *newsService) ListNews(ctx context.Context) ([]dto.NewsResponse, error) {
	news, err := s.newsRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list news", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToNewsResponseList(news), nil
}
