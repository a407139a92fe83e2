package repository

import (
	"context"

	"holistic-health-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimetableRepository is the timetable half of the plan store, keyed by user.
// Upsert follows the same replace-preserving-identity rule as the meal-plan
// repository.
type TimetableRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Timetable, error)
	Upsert(ctx context.Context, db *gorm.DB, userID uuid.UUID, content *entity.TimetableContent) (*entity.Timetable, error)
}
