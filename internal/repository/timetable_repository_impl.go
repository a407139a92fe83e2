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

type timetableRepository struct{}

func NewTimetableRepository() domainRepo.TimetableRepository {
	return &timetableRepository{}
}

func (r *timetableRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Timetable, error) {
	var timetable entity.Timetable
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&timetable).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &timetable, nil
}

func (r *timetableRepository) Upsert(ctx context.Context, db *gorm.DB, userID uuid.UUID, content *entity.TimetableContent) (*entity.Timetable, error) {
	timetable := &entity.Timetable{
		UserID:             userID,
		SleepSchedule:      content.SleepSchedule,
		WorkSchedule:       content.WorkSchedule,
		MealTimings:        content.MealTimings,
		WaterSchedule:      content.WaterSchedule,
		ExerciseSchedule:   content.ExerciseSchedule,
		MeditationSchedule: content.MeditationSchedule,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := r.FindByUserID(ctx, tx, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			timetable.ID = existing.ID
			timetable.CreatedAt = existing.CreatedAt
		} else {
			timetable.ID = uuid.New()
			timetable.CreatedAt = time.Now()
		}
		return tx.Save(timetable).Error
	})
	if err != nil {
		return nil, err
	}
	return timetable, nil
}
