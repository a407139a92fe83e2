package service

import (
	"context"
	"errors"
	"testing"

	"holistic-health-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletionClient struct {
	response     string
	err          error
	systemPrompt string
	userPrompt   string
}

func (s *stubCompletionClient) CreateStructuredCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.systemPrompt = systemPrompt
	s.userPrompt = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testProfile() *entity.UserProfile {
	return &entity.UserProfile{
		Name:                   "Ravi",
		Age:                    42,
		Gender:                 entity.GenderMale,
		Height:                 178,
		Weight:                 82,
		Region:                 "Tamil Nadu",
		Occupation:             "Teacher",
		MedicalConditions:      entity.StringList{"hypertension"},
		Allergies:              entity.StringList{"shellfish"},
		PhysicalActivityLevel:  entity.ActivityLight,
		DoshaType:              entity.DoshaPitta,
		FoodPreference:         entity.FoodNonVegetarian,
		WeeklyBudget:           1500,
		WorkingHoursPreference: entity.WorkingHoursMorning,
		PhysicalGoals:          entity.StringList{entity.PhysicalGoalFlexibility},
		MentalGoals:            true,
		GoalSpeed:              entity.GoalSpeedSlow,
	}
}

const validMealPlanJSON = `{
	"breakfast": {"items": [{"name": "Dosa", "quantity": "2 pieces"}]},
	"lunch": {"items": [{"name": "Sambar rice", "quantity": "200g"}]},
	"dinner": {"items": [{"name": "Chapati", "quantity": "3 pieces"}]},
	"snacks": {"items": [{"name": "Roasted chickpeas", "quantity": "30g"}]},
	"foodsToAvoid": ["shellfish", "excess salt"],
	"waterIntake": {
		"totalLiters": 3,
		"schedule": [{"time": "7:00 AM", "amount": "500ml"}]
	}
}`

const validTimetableJSON = `{
	"sleepSchedule": {"sleepTime": "10:00 PM", "wakeTime": "5:30 AM", "totalHours": 7.5},
	"workSchedule": {
		"blocks": [{"startTime": "8:00 AM", "endTime": "12:00 PM", "type": "focused work"}],
		"totalHours": 4
	},
	"mealTimings": {"breakfast": "7:00 AM", "lunch": "12:30 PM", "dinner": "7:00 PM", "snacks": ["4:00 PM"]},
	"waterSchedule": [{"time": "6:00 AM", "duration": "500ml", "activity": "Morning hydration"}],
	"exerciseSchedule": [{"time": "6:30 AM", "duration": "30 min", "activity": "Stretching"}]
}`

func newTestGenerator(client completionClient) *openAIPlanGenerator {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &openAIPlanGenerator{client: client, log: log}
}

func TestGenerateMealPlan_ParsesValidResponse(t *testing.T) {
	stub := &stubCompletionClient{response: validMealPlanJSON}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateMealPlan(context.Background(), testProfile())
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, "Dosa", content.Breakfast.Items[0].Name)
	require.NotNil(t, content.Snacks)
	assert.Equal(t, "Roasted chickpeas", content.Snacks.Items[0].Name)
	assert.Equal(t, 3.0, content.WaterIntake.TotalLiters)
	assert.Contains(t, content.FoodsToAvoid, "shellfish")
}

func TestGenerateMealPlan_PromptCarriesProfileDetails(t *testing.T) {
	stub := &stubCompletionClient{response: validMealPlanJSON}
	gen := newTestGenerator(stub)

	_, err := gen.GenerateMealPlan(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, mealPlanSystemPrompt, stub.systemPrompt)
	assert.Contains(t, stub.userPrompt, "Ravi")
	assert.Contains(t, stub.userPrompt, "shellfish")
	assert.Contains(t, stub.userPrompt, "hypertension")
	assert.Contains(t, stub.userPrompt, "Tamil Nadu")
	assert.Contains(t, stub.userPrompt, "pitta")
	assert.Contains(t, stub.userPrompt, "1500")
}

func TestGenerateMealPlan_PromptMarksEmptyListsAsNone(t *testing.T) {
	stub := &stubCompletionClient{response: validMealPlanJSON}
	gen := newTestGenerator(stub)

	profile := testProfile()
	profile.MedicalConditions = nil
	profile.Allergies = nil

	_, err := gen.GenerateMealPlan(context.Background(), profile)
	require.NoError(t, err)
	assert.Contains(t, stub.userPrompt, "Medical Conditions: None")
	assert.Contains(t, stub.userPrompt, "Allergies: None")
}

func TestGenerateMealPlan_ClientErrorPropagates(t *testing.T) {
	stub := &stubCompletionClient{err: errors.New("upstream down")}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateMealPlan(context.Background(), testProfile())
	assert.Nil(t, content)
	assert.Error(t, err)
}

func TestGenerateMealPlan_MalformedJSONFails(t *testing.T) {
	stub := &stubCompletionClient{response: "here is your meal plan: {"}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateMealPlan(context.Background(), testProfile())
	assert.Nil(t, content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestGenerateMealPlan_MissingMealFails(t *testing.T) {
	stub := &stubCompletionClient{response: `{
		"breakfast": {"items": []},
		"lunch": {"items": [{"name": "Rice", "quantity": "150g"}]},
		"dinner": {"items": [{"name": "Soup", "quantity": "300ml"}]},
		"foodsToAvoid": [],
		"waterIntake": {"totalLiters": 2, "schedule": [{"time": "8:00 AM", "amount": "250ml"}]}
	}`}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateMealPlan(context.Background(), testProfile())
	assert.Nil(t, content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestGenerateMealPlan_MissingFoodsToAvoidFails(t *testing.T) {
	stub := &stubCompletionClient{response: `{
		"breakfast": {"items": [{"name": "Dosa", "quantity": "2 pieces"}]},
		"lunch": {"items": [{"name": "Rice", "quantity": "150g"}]},
		"dinner": {"items": [{"name": "Soup", "quantity": "300ml"}]},
		"waterIntake": {"totalLiters": 2, "schedule": [{"time": "8:00 AM", "amount": "250ml"}]}
	}`}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateMealPlan(context.Background(), testProfile())
	assert.Nil(t, content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestGenerateMealPlan_EmptyFoodsToAvoidIsAllowed(t *testing.T) {
	stub := &stubCompletionClient{response: `{
		"breakfast": {"items": [{"name": "Dosa", "quantity": "2 pieces"}]},
		"lunch": {"items": [{"name": "Rice", "quantity": "150g"}]},
		"dinner": {"items": [{"name": "Soup", "quantity": "300ml"}]},
		"foodsToAvoid": [],
		"waterIntake": {"totalLiters": 2, "schedule": [{"time": "8:00 AM", "amount": "250ml"}]}
	}`}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateMealPlan(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Empty(t, content.FoodsToAvoid)
}

func TestGenerateTimetable_ParsesValidResponse(t *testing.T) {
	stub := &stubCompletionClient{response: validTimetableJSON}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateTimetable(context.Background(), testProfile())
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, "10:00 PM", content.SleepSchedule.SleepTime)
	assert.Equal(t, 7.5, content.SleepSchedule.TotalHours)
	assert.Len(t, content.ExerciseSchedule, 1)
	assert.Nil(t, content.MeditationSchedule)
}

func TestGenerateTimetable_SystemPromptAndPreference(t *testing.T) {
	stub := &stubCompletionClient{response: validTimetableJSON}
	gen := newTestGenerator(stub)

	_, err := gen.GenerateTimetable(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, timetableSystemPrompt, stub.systemPrompt)
	assert.Contains(t, stub.userPrompt, "Working Hours Preference: morning")
}

func TestGenerateTimetable_SleepHoursOutOfRangeFails(t *testing.T) {
	stub := &stubCompletionClient{response: `{
		"sleepSchedule": {"sleepTime": "10:00 PM", "wakeTime": "6:00 AM", "totalHours": 30},
		"workSchedule": {"blocks": [], "totalHours": 0},
		"mealTimings": {"breakfast": "7:00 AM", "lunch": "12:30 PM", "dinner": "7:00 PM"},
		"waterSchedule": [{"time": "6:00 AM", "duration": "500ml", "activity": "Hydration"}]
	}`}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateTimetable(context.Background(), testProfile())
	assert.Nil(t, content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestGenerateTimetable_MissingMealTimingsFails(t *testing.T) {
	stub := &stubCompletionClient{response: `{
		"sleepSchedule": {"sleepTime": "10:00 PM", "wakeTime": "6:00 AM", "totalHours": 8},
		"workSchedule": {"blocks": [], "totalHours": 0},
		"mealTimings": {"breakfast": "", "lunch": "12:30 PM", "dinner": "7:00 PM"},
		"waterSchedule": [{"time": "6:00 AM", "duration": "500ml", "activity": "Hydration"}]
	}`}
	gen := newTestGenerator(stub)

	content, err := gen.GenerateTimetable(context.Background(), testProfile())
	assert.Nil(t, content)
	assert.Error(t, err)
}

func TestBuildMealPlanPrompt_OmitsCustomPreferencesWhenEmpty(t *testing.T) {
	profile := testProfile()
	profile.CustomPreferences = ""
	assert.NotContains(t, buildMealPlanPrompt(profile), "Custom Preferences")

	profile.CustomPreferences = "no onion, no garlic"
	assert.Contains(t, buildMealPlanPrompt(profile), "no onion, no garlic")
}

func TestBuildTimetablePrompt_DefaultsDoshaToBalanced(t *testing.T) {
	profile := testProfile()
	profile.DoshaType = ""
	assert.Contains(t, buildTimetablePrompt(profile), "Dosha Type: Balanced")
}
