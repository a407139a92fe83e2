package repository

import (
	"context"
	"sync"
	"time"

	"holistic-health-backend/internal/domain/entity"
	domainRepo "holistic-health-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository implementations backed by process-lifetime maps.
// They satisfy the same interfaces as the gorm implementations (the *gorm.DB
// argument is ignored) and carry no durability guarantee across restarts.
// Selected with STORAGE_DRIVER=memory; also used throughout the test suite.

type memoryUserProfileRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]entity.UserProfile
}

func NewMemoryUserProfileRepository() domainRepo.UserProfileRepository {
	return &memoryUserProfileRepository{
		profiles: make(map[uuid.UUID]entity.UserProfile),
	}
}

func (r *memoryUserProfileRepository) Create(ctx context.Context, _ *gorm.DB, profile *entity.UserProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *memoryUserProfileRepository) FindByID(ctx context.Context, _ *gorm.DB, id uuid.UUID) (*entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

type memoryMealPlanRepository struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]entity.MealPlan // keyed by user id
}

func NewMemoryMealPlanRepository() domainRepo.MealPlanRepository {
	return &memoryMealPlanRepository{
		plans: make(map[uuid.UUID]entity.MealPlan),
	}
}

func (r *memoryMealPlanRepository) FindByUserID(ctx context.Context, _ *gorm.DB, userID uuid.UUID) (*entity.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[userID]
	if !ok {
		return nil, nil
	}
	return &plan, nil
}

func (r *memoryMealPlanRepository) Upsert(ctx context.Context, _ *gorm.DB, userID uuid.UUID, content *entity.MealPlanContent) (*entity.MealPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan := entity.MealPlan{
		UserID:       userID,
		Breakfast:    content.Breakfast,
		Lunch:        content.Lunch,
		Dinner:       content.Dinner,
		Snacks:       content.Snacks,
		FoodsToAvoid: content.FoodsToAvoid,
		WaterIntake:  content.WaterIntake,
	}

	if existing, ok := r.plans[userID]; ok {
		plan.ID = existing.ID
		plan.CreatedAt = existing.CreatedAt
	} else {
		plan.ID = uuid.New()
		plan.CreatedAt = time.Now()
	}

	r.plans[userID] = plan
	return &plan, nil
}

type memoryTimetableRepository struct {
	mu         sync.RWMutex
	timetables map[uuid.UUID]entity.Timetable // keyed by user id
}

func NewMemoryTimetableRepository() domainRepo.TimetableRepository {
	return &memoryTimetableRepository{
		timetables: make(map[uuid.UUID]entity.Timetable),
	}
}

func (r *memoryTimetableRepository) FindByUserID(ctx context.Context, _ *gorm.DB, userID uuid.UUID) (*entity.Timetable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	timetable, ok := r.timetables[userID]
	if !ok {
		return nil, nil
	}
	return &timetable, nil
}

func (r *memoryTimetableRepository) Upsert(ctx context.Context, _ *gorm.DB, userID uuid.UUID, content *entity.TimetableContent) (*entity.Timetable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timetable := entity.Timetable{
		UserID:             userID,
		SleepSchedule:      content.SleepSchedule,
		WorkSchedule:       content.WorkSchedule,
		MealTimings:        content.MealTimings,
		WaterSchedule:      content.WaterSchedule,
		ExerciseSchedule:   content.ExerciseSchedule,
		MeditationSchedule: content.MeditationSchedule,
	}

	if existing, ok := r.timetables[userID]; ok {
		timetable.ID = existing.ID
		timetable.CreatedAt = existing.CreatedAt
	} else {
		timetable.ID = uuid.New()
		timetable.CreatedAt = time.Now()
	}

	r.timetables[userID] = timetable
	return &timetable, nil
}
