package repository

import (
	"context"

	"holistic-health-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlanRepository is the meal-plan half of the plan store, keyed by user.
//
// Upsert is the defining operation: if a plan already exists for the user its
// content fields are replaced while the id and original creation timestamp
// are preserved; otherwise a new row is created. There is always exactly one
// live meal plan per user, never an accumulating history.
type MealPlanRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.MealPlan, error)
	Upsert(ctx context.Context, db *gorm.DB, userID uuid.UUID, content *entity.MealPlanContent) (*entity.MealPlan, error)
}
