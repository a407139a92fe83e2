package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealPlan is the stored daily meal plan for one user. At most one row exists
// per user: regeneration replaces the content fields in place while keeping
// the original id and creation timestamp.
type MealPlan struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID           `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Breakfast    MealIngredients     `gorm:"serializer:json;not null" json:"breakfast"`
	Lunch        MealIngredients     `gorm:"serializer:json;not null" json:"lunch"`
	Dinner       MealIngredients     `gorm:"serializer:json;not null" json:"dinner"`
	Snacks       *MealIngredients    `gorm:"serializer:json" json:"snacks,omitempty"`
	FoodsToAvoid StringList          `gorm:"serializer:json" json:"foods_to_avoid"`
	WaterIntake  WaterIntakeSchedule `gorm:"serializer:json;not null" json:"water_intake"`
	CreatedAt    time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

// MealIngredient is a single ingredient with a free-text quantity. Units are
// whatever the generator produced; no normalization happens here.
type MealIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// MealIngredients is the ordered ingredient list for one meal.
type MealIngredients struct {
	Items []MealIngredient `json:"items"`
}

// WaterIntakeEntry is one scheduled drink: a clock time and an amount.
type WaterIntakeEntry struct {
	Time   string `json:"time"`
	Amount string `json:"amount"`
}

// WaterIntakeSchedule is the daily hydration target plus its schedule.
type WaterIntakeSchedule struct {
	TotalLiters float64            `json:"totalLiters"`
	Schedule    []WaterIntakeEntry `json:"schedule"`
}

// MealPlanContent carries the generated content fields of a MealPlan,
// without identity or timestamp. It is both the generator's output and the
// plan store's upsert input.
type MealPlanContent struct {
	Breakfast    MealIngredients     `json:"breakfast"`
	Lunch        MealIngredients     `json:"lunch"`
	Dinner       MealIngredients     `json:"dinner"`
	Snacks       *MealIngredients    `json:"snacks"`
	FoodsToAvoid []string            `json:"foodsToAvoid"`
	WaterIntake  WaterIntakeSchedule `json:"waterIntake"`
}
