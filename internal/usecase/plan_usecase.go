package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"holistic-health-backend/internal/converter"
	"holistic-health-backend/internal/delivery/dto"
	"holistic-health-backend/internal/domain/entity"
	"holistic-health-backend/internal/domain/repository"
	"holistic-health-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrMealPlanNotFound  = errors.New("meal plan not found")
	ErrTimetableNotFound = errors.New("timetable not found")

	// ErrPlanGeneration covers every generation failure mode uniformly:
	// provider error, timeout, or a response that does not parse into the
	// required shape. Nothing is persisted when it is returned.
	ErrPlanGeneration = errors.New("plan generation failed")
)

const (
	// Interval for cleaning up stale per-user mutexes
	userMutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	userMutexStaleThreshold = 10 * time.Minute
)

type PlanUsecase interface {
	GeneratePlan(ctx context.Context, userID uuid.UUID) (*dto.PlanResponse, error)
	GetMealPlan(ctx context.Context, userID uuid.UUID) (*dto.MealPlanResponse, error)
	GetTimetable(ctx context.Context, userID uuid.UUID) (*dto.TimetableResponse, error)

	// Stop shuts down the background mutex cleanup. Safe to call multiple times.
	Stop()
}

// planUsecase orchestrates the generation flow: resolve profile, fan out the
// two generator calls, join with all-or-nothing semantics, upsert both
// documents keyed by user.
//
// Overlapping regenerations for the same user are serialized with a per-user
// mutex so the stored (MealPlan, Timetable) pair always comes from a single
// cycle. Requests for different users never contend.
type planUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	profileRepo   repository.UserProfileRepository
	mealPlanRepo  repository.MealPlanRepository
	timetableRepo repository.TimetableRepository
	generator     service.PlanGenerator
	cache         service.PlanCache // optional; nil disables caching

	// Per-user mutex for regeneration serialization
	userMu sync.Map // map[uuid.UUID]*mutexWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

func NewPlanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.UserProfileRepository,
	mealPlanRepo repository.MealPlanRepository,
	timetableRepo repository.TimetableRepository,
	generator service.PlanGenerator,
	cache service.PlanCache,
) PlanUsecase {
	u := &planUsecase{
		db:            db,
		log:           log,
		profileRepo:   profileRepo,
		mealPlanRepo:  mealPlanRepo,
		timetableRepo: timetableRepo,
		generator:     generator,
		cache:         cache,
		stopChan:      make(chan struct{}),
	}

	u.wg.Add(1)
	go u.cleanupMutexMapLoop()

	return u
}

func (u *planUsecase) Stop() {
	if u.stopped.CompareAndSwap(false, true) {
		close(u.stopChan)
		u.wg.Wait()
	}
}

// GeneratePlan runs one full generation cycle for the user.
//
// The profile lookup happens before anything else: an unknown user fails
// with ErrProfileNotFound and never reaches the generative capability. On
// any generation failure the operation aborts with ErrPlanGeneration and
// neither store is touched: a partial pair is never persisted.
func (u *planUsecase) GeneratePlan(ctx context.Context, userID uuid.UUID) (*dto.PlanResponse, error) {
	profile, err := u.profileRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	// Serialize regenerations per user so the stored pair is never a mix of
	// two overlapping cycles.
	mt := u.acquireUserMutex(userID)
	defer mt.mu.Unlock()

	// Fan out both generator calls with the same resolved profile. The
	// first failure cancels the sibling call and fails the whole cycle.
	var (
		mealPlanContent  *entity.MealPlanContent
		timetableContent *entity.TimetableContent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		content, err := u.generator.GenerateMealPlan(gctx, profile)
		if err != nil {
			return fmt.Errorf("meal plan: %w", err)
		}
		mealPlanContent = content
		return nil
	})
	g.Go(func() error {
		content, err := u.generator.GenerateTimetable(gctx, profile)
		if err != nil {
			return fmt.Errorf("timetable: %w", err)
		}
		timetableContent = content
		return nil
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Plan generation failed for user %s: %+v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrPlanGeneration, err)
	}

	// Joint success: persist both documents. The two upserts are
	// independent writes; there is no cross-store transaction.
	mealPlan, err := u.mealPlanRepo.Upsert(ctx, u.db, userID, mealPlanContent)
	if err != nil {
		u.log.Warnf("Failed to upsert meal plan: %+v", err)
		return nil, err
	}

	timetable, err := u.timetableRepo.Upsert(ctx, u.db, userID, timetableContent)
	if err != nil {
		u.log.Warnf("Failed to upsert timetable: %+v", err)
		return nil, err
	}

	if u.cache != nil {
		u.cache.SetMealPlan(ctx, mealPlan)
		u.cache.SetTimetable(ctx, timetable)
	}

	return &dto.PlanResponse{
		MealPlan:  converter.MealPlanToResponse(mealPlan),
		Timetable: converter.TimetableToResponse(timetable),
	}, nil
}

func (u *planUsecase) GetMealPlan(ctx context.Context, userID uuid.UUID) (*dto.MealPlanResponse, error) {
	if u.cache != nil {
		if plan, ok := u.cache.GetMealPlan(ctx, userID); ok {
			return converter.MealPlanToResponse(plan), nil
		}
	}

	plan, err := u.mealPlanRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find meal plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrMealPlanNotFound
	}

	if u.cache != nil {
		u.cache.SetMealPlan(ctx, plan)
	}

	return converter.MealPlanToResponse(plan), nil
}

func (u *planUsecase) GetTimetable(ctx context.Context, userID uuid.UUID) (*dto.TimetableResponse, error) {
	if u.cache != nil {
		if timetable, ok := u.cache.GetTimetable(ctx, userID); ok {
			return converter.TimetableToResponse(timetable), nil
		}
	}

	timetable, err := u.timetableRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find timetable: %+v", err)
		return nil, err
	}
	if timetable == nil {
		return nil, ErrTimetableNotFound
	}

	if u.cache != nil {
		u.cache.SetTimetable(ctx, timetable)
	}

	return converter.TimetableToResponse(timetable), nil
}

// getUserMutex returns the mutex for a specific user id
func (u *planUsecase) getUserMutex(userID uuid.UUID) *mutexWithTimestamp {
	mt, _ := u.userMu.LoadOrStore(userID, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// acquireUserMutex locks the live mutex for the user and returns it locked.
// The cleanup loop can retire a mutex while a waiter is still blocked on it,
// so after acquiring we re-check that the map still holds this mutex; if a
// fresh one has been registered in the meantime, release and start over.
// Two cycles for the same user therefore never hold different mutexes.
func (u *planUsecase) acquireUserMutex(userID uuid.UUID) *mutexWithTimestamp {
	for {
		mt := u.getUserMutex(userID)
		mt.mu.Lock()
		if current, _ := u.userMu.LoadOrStore(userID, mt); current == mt {
			mt.lastUsed.Store(time.Now().Unix())
			return mt
		}
		mt.mu.Unlock()
	}
}

// cleanupMutexMapLoop runs in background to clean stale mutexes
func (u *planUsecase) cleanupMutexMapLoop() {
	defer u.wg.Done()

	ticker := time.NewTicker(userMutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-u.stopChan:
			return
		case <-ticker.C:
			u.cleanupStaleMutexes()
		}
	}
}

// cleanupStaleMutexes removes unused mutexes using TryLock for safety.
// The lastUsed check happens inside the lock so a concurrent regeneration
// cannot lose its mutex mid-flight.
func (u *planUsecase) cleanupStaleMutexes() {
	cutoffTime := time.Now().Add(-userMutexStaleThreshold).Unix()
	var cleaned int

	u.userMu.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				u.userMu.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		u.log.Debugf("Cleaned up %d stale user mutexes", cleaned)
	}
}
