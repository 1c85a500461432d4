package dto

import (
	"time"

	"backoffice/internal/domain/entity"
)

// NewsResponse is the DTO for sending news information to the client.
type NewsResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Likes       int       `json:"likes"`
	Reminder    int       `json:"reminder"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToNewsResponse converts an entity.News to a NewsResponse DTO.
func ToNewsResponse(n *entity.News) NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Name:        n.Name,
		Date:        n.Date,
		Description: n.Description,
		Likes:       n.Likes,
		Reminder:    n.Reminder,
		CreatedAt:   n.CreatedAt,
	}
}

// ToNewsResponseList converts a slice of entity.News to NewsResponse DTOs.
func ToNewsResponseList(news []*entity.News) []NewsResponse {
	list := make([]NewsResponse, len(news))
	for i, n := range news {
		list[i] = ToNewsResponse(n)
	}
	return list
}

// CreateNewsRequest is the DTO for creating a news item.
type CreateNewsRequest struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}
