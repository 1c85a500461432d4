package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// UserRepository defines the read-model interface for user lookups.
type UserRepository interface {
	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// Create inserts a user row. Used by fixtures and the identity sync path.
	Create(ctx context.Context, user *entity.User) error
}
