package repository

import (
	"context"

	"holistic-health-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileRepository is the profile store. Profiles are created once and
// never updated or deleted. FindByID returns (nil, nil) when no profile
// exists for the id.
type UserProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.UserProfile) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.UserProfile, error)
}
