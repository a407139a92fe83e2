package entity

import (
	"github.com/google/uuid"
)

// UserProfile holds the holistic-health intake record collected during
// onboarding. Profiles are immutable after creation; there is no update flow.
type UserProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Personal information
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Age        int    `gorm:"not null" json:"age"`
	Gender     string `gorm:"type:varchar(10);not null" json:"gender"`
	Height     int    `gorm:"not null" json:"height"` // cm
	Weight     int    `gorm:"not null" json:"weight"` // kg
	Region     string `gorm:"type:varchar(255);not null" json:"region"`
	Occupation string `gorm:"type:varchar(255);not null" json:"occupation"`

	// Health information
	MedicalConditions     StringList `gorm:"serializer:json" json:"medical_conditions"`
	Allergies             StringList `gorm:"serializer:json" json:"allergies"`
	PhysicalActivityLevel string     `gorm:"type:varchar(20);not null" json:"physical_activity_level"`

	// Spiritual/Ayurvedic information (all optional)
	BirthPlace string `gorm:"type:varchar(255)" json:"birth_place,omitempty"`
	BirthDate  string `gorm:"type:varchar(20)" json:"birth_date,omitempty"`
	BirthTime  string `gorm:"type:varchar(20)" json:"birth_time,omitempty"`
	DoshaType  string `gorm:"type:varchar(20)" json:"dosha_type,omitempty"`

	// Preferences
	FoodPreference         string `gorm:"type:varchar(20);not null" json:"food_preference"`
	WeeklyBudget           int    `gorm:"not null" json:"weekly_budget"` // local currency
	WorkingHoursPreference string `gorm:"type:varchar(20);not null" json:"working_hours_preference"`

	// Goals
	PhysicalGoals  StringList `gorm:"serializer:json" json:"physical_goals"`
	MentalGoals    bool       `gorm:"not null;default:false" json:"mental_goals"`
	SpiritualGoals bool       `gorm:"not null;default:false" json:"spiritual_goals"`
	GoalSpeed      string     `gorm:"type:varchar(20);not null" json:"goal_speed"`

	CustomPreferences string `gorm:"type:text" json:"custom_preferences,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// StringList is a set of strings stored as a JSON column.
type StringList []string

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Physical activity levels
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Food preferences
const (
	FoodVegan         = "vegan"
	FoodVegetarian    = "vegetarian"
	FoodNonVegetarian = "non-vegetarian"
	FoodPescatarian   = "pescatarian"
)

// Working hours preferences
const (
	WorkingHoursMorning   = "morning"
	WorkingHoursAfternoon = "afternoon"
	WorkingHoursEvening   = "evening"
	WorkingHoursNight     = "night"
	WorkingHoursFlexible  = "flexible"
)

// Physical goals
const (
	PhysicalGoalSpeed       = "speed"
	PhysicalGoalFlexibility = "flexibility"
	PhysicalGoalStrength    = "strength"
)

// Goal speeds
const (
	GoalSpeedSlow     = "slow"
	GoalSpeedModerate = "moderate"
	GoalSpeedFast     = "fast"
)

// Dosha types
const (
	DoshaVata       = "vata"
	DoshaPitta      = "pitta"
	DoshaKapha      = "kapha"
	DoshaVataPitta  = "vata-pitta"
	DoshaPittaKapha = "pitta-kapha"
	DoshaVataKapha  = "vata-kapha"
	DoshaTridoshic  = "tridoshic"
)
