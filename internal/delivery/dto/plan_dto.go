package dto

import (
	"time"

	"holistic-health-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// GeneratePlanRequest triggers a (re)generation cycle for one user.
type GeneratePlanRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// MealPlanResponse is the stored meal plan rendered for the API.
type MealPlanResponse struct {
	ID           uuid.UUID                  `json:"id"`
	UserID       uuid.UUID                  `json:"user_id"`
	Breakfast    entity.MealIngredients     `json:"breakfast"`
	Lunch        entity.MealIngredients     `json:"lunch"`
	Dinner       entity.MealIngredients     `json:"dinner"`
	Snacks       *entity.MealIngredients    `json:"snacks,omitempty"`
	FoodsToAvoid []string                   `json:"foods_to_avoid"`
	WaterIntake  entity.WaterIntakeSchedule `json:"water_intake"`
	CreatedAt    time.Time                  `json:"created_at"`
}

// TimetableResponse is the stored timetable rendered for the API.
type TimetableResponse struct {
	ID                 uuid.UUID            `json:"id"`
	UserID             uuid.UUID            `json:"user_id"`
	SleepSchedule      entity.SleepSchedule `json:"sleep_schedule"`
	WorkSchedule       entity.WorkSchedule  `json:"work_schedule"`
	MealTimings        entity.MealTimings   `json:"meal_timings"`
	WaterSchedule      []entity.TimeBlock   `json:"water_schedule"`
	ExerciseSchedule   []entity.TimeBlock   `json:"exercise_schedule,omitempty"`
	MeditationSchedule []entity.TimeBlock   `json:"meditation_schedule,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
}

// PlanResponse is the pair produced by one generation cycle. The two
// documents always come from the same cycle; the API never returns one
// without the other here.
type PlanResponse struct {
	MealPlan  *MealPlanResponse  `json:"meal_plan"`
	Timetable *TimetableResponse `json:"timetable"`
}
