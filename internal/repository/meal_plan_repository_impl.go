package repository

import (
	"context"
	"errors"
	"time"

	"holistic-health-backend/internal/domain/entity"
	domainRepo "holistic-health-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mealPlanRepository struct{}

func NewMealPlanRepository() domainRepo.MealPlanRepository {
	return &mealPlanRepository{}
}

func (r *mealPlanRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.MealPlan, error) {
	var plan entity.MealPlan
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) Upsert(ctx context.Context, db *gorm.DB, userID uuid.UUID, content *entity.MealPlanContent) (*entity.MealPlan, error) {
	plan := &entity.MealPlan{
		UserID:       userID,
		Breakfast:    content.Breakfast,
		Lunch:        content.Lunch,
		Dinner:       content.Dinner,
		Snacks:       content.Snacks,
		FoodsToAvoid: content.FoodsToAvoid,
		WaterIntake:  content.WaterIntake,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := r.FindByUserID(ctx, tx, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			// Replace content in place, keep identity and original timestamp.
			plan.ID = existing.ID
			plan.CreatedAt = existing.CreatedAt
		} else {
			plan.ID = uuid.New()
			plan.CreatedAt = time.Now()
		}
		return tx.Save(plan).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}
