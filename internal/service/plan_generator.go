package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"holistic-health-backend/config"
	"holistic-health-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const mealPlanSystemPrompt = "You are an expert holistic health nutritionist combining Ayurvedic wisdom with modern nutrition science. Always respond with valid JSON."

const timetableSystemPrompt = "You are an expert in holistic wellness scheduling, combining Ayurvedic principles with modern chronobiology. Always respond with valid JSON."

// PlanGenerator turns a stored profile into structured plan documents. The
// two operations are independent: neither input depends on the other's
// output, so callers may run them concurrently.
type PlanGenerator interface {
	GenerateMealPlan(ctx context.Context, profile *entity.UserProfile) (*entity.MealPlanContent, error)
	GenerateTimetable(ctx context.Context, profile *entity.UserProfile) (*entity.TimetableContent, error)
}

type openAIPlanGenerator struct {
	client completionClient
	log    *logrus.Logger
}

func NewPlanGenerator(cfg config.OpenAIConfig, log *logrus.Logger) PlanGenerator {
	return &openAIPlanGenerator{
		client: newOpenAIClient(cfg),
		log:    log,
	}
}

func (g *openAIPlanGenerator) GenerateMealPlan(ctx context.Context, profile *entity.UserProfile) (*entity.MealPlanContent, error) {
	raw, err := g.client.CreateStructuredCompletion(ctx, mealPlanSystemPrompt, buildMealPlanPrompt(profile))
	if err != nil {
		g.log.Warnf("Meal plan generation call failed: %+v", err)
		return nil, err
	}

	var content entity.MealPlanContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan response: %w", err)
	}
	if err := validateMealPlanContent(&content); err != nil {
		return nil, fmt.Errorf("meal plan response is incomplete: %w", err)
	}

	return &content, nil
}

func (g *openAIPlanGenerator) GenerateTimetable(ctx context.Context, profile *entity.UserProfile) (*entity.TimetableContent, error) {
	raw, err := g.client.CreateStructuredCompletion(ctx, timetableSystemPrompt, buildTimetablePrompt(profile))
	if err != nil {
		g.log.Warnf("Timetable generation call failed: %+v", err)
		return nil, err
	}

	var content entity.TimetableContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("failed to parse timetable response: %w", err)
	}
	if err := validateTimetableContent(&content); err != nil {
		return nil, fmt.Errorf("timetable response is incomplete: %w", err)
	}

	return &content, nil
}

// validateMealPlanContent enforces the required shape. Snacks are optional;
// everything else must be present and well-formed.
func validateMealPlanContent(content *entity.MealPlanContent) error {
	if len(content.Breakfast.Items) == 0 {
		return fmt.Errorf("breakfast is empty")
	}
	if len(content.Lunch.Items) == 0 {
		return fmt.Errorf("lunch is empty")
	}
	if len(content.Dinner.Items) == 0 {
		return fmt.Errorf("dinner is empty")
	}
	// foodsToAvoid must be present; an empty list is fine, omission is not.
	if content.FoodsToAvoid == nil {
		return fmt.Errorf("foods to avoid is missing")
	}
	if content.WaterIntake.TotalLiters < 0 {
		return fmt.Errorf("water intake total is negative")
	}
	if len(content.WaterIntake.Schedule) == 0 {
		return fmt.Errorf("water intake schedule is empty")
	}
	return nil
}

// validateTimetableContent enforces the required shape. Exercise and
// meditation schedules are optional; the generator omits them when the
// profile has no physical or spiritual goals.
func validateTimetableContent(content *entity.TimetableContent) error {
	if content.SleepSchedule.SleepTime == "" || content.SleepSchedule.WakeTime == "" {
		return fmt.Errorf("sleep schedule is missing")
	}
	if content.SleepSchedule.TotalHours < 0 || content.SleepSchedule.TotalHours > 24 {
		return fmt.Errorf("sleep total hours out of range: %v", content.SleepSchedule.TotalHours)
	}
	if content.WorkSchedule.Blocks == nil {
		return fmt.Errorf("work schedule is missing")
	}
	if content.MealTimings.Breakfast == "" || content.MealTimings.Lunch == "" || content.MealTimings.Dinner == "" {
		return fmt.Errorf("meal timings are missing")
	}
	if len(content.WaterSchedule) == 0 {
		return fmt.Errorf("water schedule is empty")
	}
	return nil
}

func buildMealPlanPrompt(p *entity.UserProfile) string {
	var sb strings.Builder

	sb.WriteString("You are a holistic health and nutrition expert with deep knowledge of Ayurveda, modern nutrition science, and regional cuisines.\n\n")
	sb.WriteString("Generate a personalized daily meal plan based on this user profile:\n\n")

	sb.WriteString("Personal Details:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "- Age: %d, Gender: %s\n", p.Age, p.Gender)
	fmt.Fprintf(&sb, "- Height: %dcm, Weight: %dkg\n", p.Height, p.Weight)
	fmt.Fprintf(&sb, "- Region: %s\n", p.Region)
	fmt.Fprintf(&sb, "- Occupation: %s\n\n", p.Occupation)

	sb.WriteString("Health Information:\n")
	fmt.Fprintf(&sb, "- Medical Conditions: %s\n", joinOrNone(p.MedicalConditions))
	fmt.Fprintf(&sb, "- Allergies: %s\n", joinOrNone(p.Allergies))
	fmt.Fprintf(&sb, "- Physical Activity Level: %s\n\n", p.PhysicalActivityLevel)

	sb.WriteString("Spiritual/Ayurvedic Profile:\n")
	fmt.Fprintf(&sb, "- Dosha Type: %s\n", orNotSpecified(p.DoshaType))
	fmt.Fprintf(&sb, "- Birth Place: %s\n", orNotSpecified(p.BirthPlace))
	fmt.Fprintf(&sb, "- Birth Date/Time: %s %s\n\n", orNotSpecified(p.BirthDate), p.BirthTime)

	sb.WriteString("Preferences:\n")
	fmt.Fprintf(&sb, "- Food Preference: %s\n", p.FoodPreference)
	fmt.Fprintf(&sb, "- Weekly Budget: %d (local currency)\n", p.WeeklyBudget)
	if p.CustomPreferences != "" {
		fmt.Fprintf(&sb, "- Custom Preferences: %s\n", p.CustomPreferences)
	}
	sb.WriteString("\n")

	sb.WriteString("Goals:\n")
	fmt.Fprintf(&sb, "- Physical Goals: %s\n", joinOrNone(p.PhysicalGoals))
	fmt.Fprintf(&sb, "- Mental Wellness: %s\n", yesNo(p.MentalGoals))
	fmt.Fprintf(&sb, "- Spiritual Growth: %s\n", yesNo(p.SpiritualGoals))
	fmt.Fprintf(&sb, "- Goal Speed: %s\n\n", p.GoalSpeed)

	sb.WriteString(`Requirements:
1. Provide ONLY ingredient names with quantities (no recipes or cooking instructions)
2. Consider the user's region for locally available ingredients
3. Respect all allergies and medical conditions strictly
4. Balance the meal plan according to Ayurvedic dosha principles if dosha is specified
5. Stay within budget constraints
6. Support the user's physical, mental, and spiritual goals
7. Provide appropriate calories for their activity level and goals
8. List foods to avoid based on allergies, medical conditions, and Ayurvedic principles
9. Calculate optimal daily water intake and create a schedule

Respond with JSON in this exact format:
{
  "breakfast": {
    "items": [{ "name": "ingredient name", "quantity": "amount with unit" }]
  },
  "lunch": {
    "items": [{ "name": "ingredient name", "quantity": "amount with unit" }]
  },
  "dinner": {
    "items": [{ "name": "ingredient name", "quantity": "amount with unit" }]
  },
  "snacks": {
    "items": [{ "name": "ingredient name", "quantity": "amount with unit" }]
  },
  "foodsToAvoid": ["food1", "food2"],
  "waterIntake": {
    "totalLiters": 2.5,
    "schedule": [
      { "time": "7:00 AM", "amount": "500ml" },
      { "time": "10:00 AM", "amount": "500ml" }
    ]
  }
}`)

	return sb.String()
}

func buildTimetablePrompt(p *entity.UserProfile) string {
	var sb strings.Builder

	sb.WriteString("You are an expert in holistic wellness, circadian rhythms, Ayurveda, and work-life optimization.\n\n")
	sb.WriteString("Generate a personalized daily timetable based on this user profile:\n\n")

	sb.WriteString("Personal Details:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "- Age: %d, Gender: %s\n", p.Age, p.Gender)
	fmt.Fprintf(&sb, "- Occupation: %s\n", p.Occupation)
	fmt.Fprintf(&sb, "- Region: %s\n\n", p.Region)

	sb.WriteString("Health & Activity:\n")
	fmt.Fprintf(&sb, "- Physical Activity Level: %s\n", p.PhysicalActivityLevel)
	fmt.Fprintf(&sb, "- Medical Conditions: %s\n\n", joinOrNone(p.MedicalConditions))

	sb.WriteString("Spiritual/Ayurvedic Profile:\n")
	dosha := p.DoshaType
	if dosha == "" {
		dosha = "Balanced"
	}
	fmt.Fprintf(&sb, "- Dosha Type: %s\n", dosha)
	fmt.Fprintf(&sb, "- Birth Time: %s\n\n", orNotSpecified(p.BirthTime))

	sb.WriteString("Preferences:\n")
	fmt.Fprintf(&sb, "- Working Hours Preference: %s\n\n", p.WorkingHoursPreference)

	sb.WriteString("Goals:\n")
	fmt.Fprintf(&sb, "- Physical Goals: %s\n", joinOrNone(p.PhysicalGoals))
	fmt.Fprintf(&sb, "- Mental Wellness: %s\n", yesNo(p.MentalGoals))
	fmt.Fprintf(&sb, "- Spiritual Growth: %s\n", yesNo(p.SpiritualGoals))
	fmt.Fprintf(&sb, "- Goal Speed: %s\n\n", p.GoalSpeed)

	sb.WriteString(`Requirements:
1. Optimal sleep schedule (7-9 hours based on age and activity level)
2. Work schedule aligned with their preference and natural energy rhythms
3. Meal timings for optimal digestion (consider Ayurvedic principles)
4. Water intake schedule throughout the day
5. Include exercise timing if they have physical goals
6. Include meditation/spiritual practice timing if they have spiritual goals
7. Consider dosha type for optimal activity timings
8. Ensure work-life balance and stress management

Respond with JSON in this exact format:
{
  "sleepSchedule": {
    "sleepTime": "10:00 PM",
    "wakeTime": "6:00 AM",
    "totalHours": 8
  },
  "workSchedule": {
    "blocks": [
      { "startTime": "9:00 AM", "endTime": "1:00 PM", "type": "focused work" },
      { "startTime": "2:00 PM", "endTime": "6:00 PM", "type": "collaborative work" }
    ],
    "totalHours": 8
  },
  "mealTimings": {
    "breakfast": "7:30 AM",
    "lunch": "12:30 PM",
    "dinner": "7:00 PM",
    "snacks": ["10:30 AM", "4:00 PM"]
  },
  "waterSchedule": [
    { "time": "6:30 AM", "duration": "500ml", "activity": "Morning hydration" },
    { "time": "10:00 AM", "duration": "300ml", "activity": "Mid-morning" }
  ],
  "exerciseSchedule": [
    { "time": "6:30 AM", "duration": "30 min", "activity": "Morning yoga/exercise" }
  ],
  "meditationSchedule": [
    { "time": "6:00 AM", "duration": "15 min", "activity": "Morning meditation" }
  ]
}`)

	return sb.String()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}

func orNotSpecified(value string) string {
	if value == "" {
		return "Not specified"
	}
	return value
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
