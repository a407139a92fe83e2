package converter

import (
	"holistic-health-backend/internal/delivery/dto"
	"holistic-health-backend/internal/domain/entity"
)

// MealPlanToResponse converts a MealPlan entity to its response DTO
func MealPlanToResponse(plan *entity.MealPlan) *dto.MealPlanResponse {
	if plan == nil {
		return nil
	}

	return &dto.MealPlanResponse{
		ID:           plan.ID,
		UserID:       plan.UserID,
		Breakfast:    plan.Breakfast,
		Lunch:        plan.Lunch,
		Dinner:       plan.Dinner,
		Snacks:       plan.Snacks,
		FoodsToAvoid: plan.FoodsToAvoid,
		WaterIntake:  plan.WaterIntake,
		CreatedAt:    plan.CreatedAt,
	}
}

// TimetableToResponse converts a Timetable entity to its response DTO
func TimetableToResponse(timetable *entity.Timetable) *dto.TimetableResponse {
	if timetable == nil {
		return nil
	}

	return &dto.TimetableResponse{
		ID:                 timetable.ID,
		UserID:             timetable.UserID,
		SleepSchedule:      timetable.SleepSchedule,
		WorkSchedule:       timetable.WorkSchedule,
		MealTimings:        timetable.MealTimings,
		WaterSchedule:      timetable.WaterSchedule,
		ExerciseSchedule:   timetable.ExerciseSchedule,
		MeditationSchedule: timetable.MeditationSchedule,
		CreatedAt:          timetable.CreatedAt,
	}
}
