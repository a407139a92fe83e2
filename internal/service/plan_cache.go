package service

import (
	"context"
	"encoding/json"
	"time"

	"holistic-health-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	mealPlanKeyPrefix  = "plan:meal:"
	timetableKeyPrefix = "plan:timetable:"

	planCacheTTL = 24 * time.Hour
)

// PlanCache is a read-through cache for the current plan documents, keyed by
// user. Entries are refreshed whenever a regeneration lands. A miss or a
// Redis failure is never fatal: callers fall back to the store.
type PlanCache interface {
	GetMealPlan(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, bool)
	SetMealPlan(ctx context.Context, plan *entity.MealPlan)
	GetTimetable(ctx context.Context, userID uuid.UUID) (*entity.Timetable, bool)
	SetTimetable(ctx context.Context, timetable *entity.Timetable)
}

type planCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewPlanCache(redisClient *redis.Client, log *logrus.Logger) PlanCache {
	return &planCache{
		redisClient: redisClient,
		log:         log,
	}
}

func (c *planCache) GetMealPlan(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, bool) {
	var plan entity.MealPlan
	if !c.get(ctx, mealPlanKeyPrefix+userID.String(), &plan) {
		return nil, false
	}
	return &plan, true
}

func (c *planCache) SetMealPlan(ctx context.Context, plan *entity.MealPlan) {
	c.set(ctx, mealPlanKeyPrefix+plan.UserID.String(), plan)
}

func (c *planCache) GetTimetable(ctx context.Context, userID uuid.UUID) (*entity.Timetable, bool) {
	var timetable entity.Timetable
	if !c.get(ctx, timetableKeyPrefix+userID.String(), &timetable) {
		return nil, false
	}
	return &timetable, true
}

func (c *planCache) SetTimetable(ctx context.Context, timetable *entity.Timetable) {
	c.set(ctx, timetableKeyPrefix+timetable.UserID.String(), timetable)
}

func (c *planCache) get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warnf("Failed to decode cache key %s: %+v", key, err)
		return false
	}
	return true
}

func (c *planCache) set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode cache key %s: %+v", key, err)
		return
	}
	if err := c.redisClient.Set(ctx, key, raw, planCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}
