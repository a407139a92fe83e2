package entity

import (
	"time"

	"github.com/google/uuid"
)

// Timetable is the stored daily schedule for one user. Same one-per-user
// replace-in-place lifecycle as MealPlan.
type Timetable struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID     `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	SleepSchedule      SleepSchedule `gorm:"serializer:json;not null" json:"sleep_schedule"`
	WorkSchedule       WorkSchedule  `gorm:"serializer:json;not null" json:"work_schedule"`
	MealTimings        MealTimings   `gorm:"serializer:json;not null" json:"meal_timings"`
	WaterSchedule      []TimeBlock   `gorm:"serializer:json;not null" json:"water_schedule"`
	ExerciseSchedule   []TimeBlock   `gorm:"serializer:json" json:"exercise_schedule,omitempty"`
	MeditationSchedule []TimeBlock   `gorm:"serializer:json" json:"meditation_schedule,omitempty"`
	CreatedAt          time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (Timetable) TableName() string {
	return "timetables"
}

// SleepSchedule is the recommended sleep window.
type SleepSchedule struct {
	SleepTime  string  `json:"sleepTime"`
	WakeTime   string  `json:"wakeTime"`
	TotalHours float64 `json:"totalHours"`
}

// WorkBlock is one labelled block of working time.
type WorkBlock struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type"`
}

// WorkSchedule is the ordered set of work blocks for the day.
type WorkSchedule struct {
	Blocks     []WorkBlock `json:"blocks"`
	TotalHours float64     `json:"totalHours"`
}

// MealTimings holds the recommended clock times for each meal. Snack times
// are optional.
type MealTimings struct {
	Breakfast string   `json:"breakfast"`
	Lunch     string   `json:"lunch"`
	Dinner    string   `json:"dinner"`
	Snacks    []string `json:"snacks,omitempty"`
}

// TimeBlock is a (time, duration/amount, activity) triple reused across the
// water, exercise and meditation schedules.
type TimeBlock struct {
	Time     string `json:"time"`
	Duration string `json:"duration"`
	Activity string `json:"activity"`
}

// TimetableContent carries the generated content fields of a Timetable.
// ExerciseSchedule and MeditationSchedule may be nil: the generator omits
// them when the profile has no physical or spiritual goals.
type TimetableContent struct {
	SleepSchedule      SleepSchedule `json:"sleepSchedule"`
	WorkSchedule       WorkSchedule  `json:"workSchedule"`
	MealTimings        MealTimings   `json:"mealTimings"`
	WaterSchedule      []TimeBlock   `json:"waterSchedule"`
	ExerciseSchedule   []TimeBlock   `json:"exerciseSchedule"`
	MeditationSchedule []TimeBlock   `json:"meditationSchedule"`
}
