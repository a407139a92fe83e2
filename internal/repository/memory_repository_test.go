package repository

import (
	"context"
	"testing"

	"holistic-health-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *entity.UserProfile {
	return &entity.UserProfile{
		Name:                   "Asha",
		Age:                    31,
		Gender:                 entity.GenderFemale,
		Height:                 165,
		Weight:                 58,
		Region:                 "Kerala",
		Occupation:             "Software Engineer",
		Allergies:              entity.StringList{"peanuts"},
		PhysicalActivityLevel:  entity.ActivityModerate,
		FoodPreference:         entity.FoodVegetarian,
		WeeklyBudget:           2000,
		WorkingHoursPreference: entity.WorkingHoursMorning,
		PhysicalGoals:          entity.StringList{entity.PhysicalGoalStrength},
		GoalSpeed:              entity.GoalSpeedModerate,
	}
}

func sampleMealPlanContent() *entity.MealPlanContent {
	return &entity.MealPlanContent{
		Breakfast:    entity.MealIngredients{Items: []entity.MealIngredient{{Name: "Oats", Quantity: "50g"}}},
		Lunch:        entity.MealIngredients{Items: []entity.MealIngredient{{Name: "Rice", Quantity: "150g"}}},
		Dinner:       entity.MealIngredients{Items: []entity.MealIngredient{{Name: "Lentil soup", Quantity: "300ml"}}},
		FoodsToAvoid: []string{"peanuts"},
		WaterIntake: entity.WaterIntakeSchedule{
			TotalLiters: 2.5,
			Schedule:    []entity.WaterIntakeEntry{{Time: "7:00 AM", Amount: "500ml"}},
		},
	}
}

func sampleTimetableContent() *entity.TimetableContent {
	return &entity.TimetableContent{
		SleepSchedule: entity.SleepSchedule{SleepTime: "10:00 PM", WakeTime: "6:00 AM", TotalHours: 8},
		WorkSchedule: entity.WorkSchedule{
			Blocks:     []entity.WorkBlock{{StartTime: "9:00 AM", EndTime: "5:00 PM", Type: "focused work"}},
			TotalHours: 8,
		},
		MealTimings:   entity.MealTimings{Breakfast: "7:30 AM", Lunch: "12:30 PM", Dinner: "7:00 PM"},
		WaterSchedule: []entity.TimeBlock{{Time: "6:30 AM", Duration: "500ml", Activity: "Morning hydration"}},
	}
}

func TestMemoryUserProfileRepository_CreateAssignsID(t *testing.T) {
	repo := NewMemoryUserProfileRepository()
	profile := sampleProfile()

	err := repo.Create(context.Background(), nil, profile)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, profile.ID)

	found, err := repo.FindByID(context.Background(), nil, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, profile.Name, found.Name)
	assert.Equal(t, profile.Allergies, found.Allergies)
}

func TestMemoryUserProfileRepository_FindMissingReturnsNil(t *testing.T) {
	repo := NewMemoryUserProfileRepository()

	found, err := repo.FindByID(context.Background(), nil, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryUserProfileRepository_EachCreateIsDistinct(t *testing.T) {
	repo := NewMemoryUserProfileRepository()

	first := sampleProfile()
	second := sampleProfile()
	require.NoError(t, repo.Create(context.Background(), nil, first))
	require.NoError(t, repo.Create(context.Background(), nil, second))

	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryMealPlanRepository_UpsertPreservesIdentity(t *testing.T) {
	repo := NewMemoryMealPlanRepository()
	userID := uuid.New()

	first, err := repo.Upsert(context.Background(), nil, userID, sampleMealPlanContent())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, userID, first.UserID)
	assert.False(t, first.CreatedAt.IsZero())

	replacement := sampleMealPlanContent()
	replacement.Breakfast = entity.MealIngredients{Items: []entity.MealIngredient{{Name: "Idli", Quantity: "3 pieces"}}}

	second, err := repo.Upsert(context.Background(), nil, userID, replacement)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "Idli", second.Breakfast.Items[0].Name)

	found, err := repo.FindByUserID(context.Background(), nil, userID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Idli", found.Breakfast.Items[0].Name)
}

func TestMemoryMealPlanRepository_FindMissingReturnsNil(t *testing.T) {
	repo := NewMemoryMealPlanRepository()

	found, err := repo.FindByUserID(context.Background(), nil, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryTimetableRepository_UpsertPreservesIdentity(t *testing.T) {
	repo := NewMemoryTimetableRepository()
	userID := uuid.New()

	first, err := repo.Upsert(context.Background(), nil, userID, sampleTimetableContent())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	replacement := sampleTimetableContent()
	replacement.SleepSchedule.SleepTime = "11:00 PM"

	second, err := repo.Upsert(context.Background(), nil, userID, replacement)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "11:00 PM", second.SleepSchedule.SleepTime)
}

func TestMemoryMealPlanRepository_PlansAreIsolatedPerUser(t *testing.T) {
	repo := NewMemoryMealPlanRepository()
	alice := uuid.New()
	bob := uuid.New()

	_, err := repo.Upsert(context.Background(), nil, alice, sampleMealPlanContent())
	require.NoError(t, err)

	found, err := repo.FindByUserID(context.Background(), nil, bob)
	require.NoError(t, err)
	assert.Nil(t, found)
}
