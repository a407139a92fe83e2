package dto

import (
	"github.com/google/uuid"
)

// CreateProfileRequest is the onboarding payload. Required fields mirror the
// profile invariants; spiritual fields and custom preferences are optional.
type CreateProfileRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Age        int    `json:"age" validate:"required,gte=1,lte=120"`
	Gender     string `json:"gender" validate:"required,oneof=male female other"`
	Height     int    `json:"height" validate:"required,gt=0"`
	Weight     int    `json:"weight" validate:"required,gt=0"`
	Region     string `json:"region" validate:"required,max=255"`
	Occupation string `json:"occupation" validate:"required,max=255"`

	MedicalConditions     []string `json:"medical_conditions" validate:"omitempty,dive,min=1"`
	Allergies             []string `json:"allergies" validate:"omitempty,dive,min=1"`
	PhysicalActivityLevel string   `json:"physical_activity_level" validate:"required,oneof=sedentary light moderate active very_active"`

	BirthPlace string `json:"birth_place" validate:"omitempty,max=255"`
	BirthDate  string `json:"birth_date" validate:"omitempty,max=20"`
	BirthTime  string `json:"birth_time" validate:"omitempty,max=20"`
	DoshaType  string `json:"dosha_type" validate:"omitempty,oneof=vata pitta kapha vata-pitta pitta-kapha vata-kapha tridoshic"`

	FoodPreference         string `json:"food_preference" validate:"required,oneof=vegan vegetarian non-vegetarian pescatarian"`
	WeeklyBudget           int    `json:"weekly_budget" validate:"required,gt=0"`
	WorkingHoursPreference string `json:"working_hours_preference" validate:"required,oneof=morning afternoon evening night flexible"`

	PhysicalGoals  []string `json:"physical_goals" validate:"omitempty,dive,oneof=speed flexibility strength"`
	MentalGoals    bool     `json:"mental_goals"`
	SpiritualGoals bool     `json:"spiritual_goals"`
	GoalSpeed      string   `json:"goal_speed" validate:"required,oneof=slow moderate fast"`

	CustomPreferences string `json:"custom_preferences" validate:"omitempty,max=2000"`
}

// ProfileResponse is the stored profile with its assigned identity.
type ProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Height     int       `json:"height"`
	Weight     int       `json:"weight"`
	Region     string    `json:"region"`
	Occupation string    `json:"occupation"`

	MedicalConditions     []string `json:"medical_conditions"`
	Allergies             []string `json:"allergies"`
	PhysicalActivityLevel string   `json:"physical_activity_level"`

	BirthPlace string `json:"birth_place,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	BirthTime  string `json:"birth_time,omitempty"`
	DoshaType  string `json:"dosha_type,omitempty"`

	FoodPreference         string `json:"food_preference"`
	WeeklyBudget           int    `json:"weekly_budget"`
	WorkingHoursPreference string `json:"working_hours_preference"`

	PhysicalGoals  []string `json:"physical_goals"`
	MentalGoals    bool     `json:"mental_goals"`
	SpiritualGoals bool     `json:"spiritual_goals"`
	GoalSpeed      string   `json:"goal_speed"`

	CustomPreferences string `json:"custom_preferences,omitempty"`
}
