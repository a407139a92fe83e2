package usecase

import (
	"context"
	"testing"

	"holistic-health-backend/internal/delivery/dto"
	"holistic-health-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileUsecase() UserProfileUsecase {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewUserProfileUsecase(nil, log, repository.NewMemoryUserProfileRepository())
}

func createProfileRequest() *dto.CreateProfileRequest {
	return &dto.CreateProfileRequest{
		Name:                   "Arjun",
		Age:                    35,
		Gender:                 "male",
		Height:                 175,
		Weight:                 70,
		Region:                 "Punjab",
		Occupation:             "Farmer",
		MedicalConditions:      []string{"diabetes"},
		PhysicalActivityLevel:  "very_active",
		FoodPreference:         "vegetarian",
		WeeklyBudget:           1200,
		WorkingHoursPreference: "morning",
		PhysicalGoals:          []string{"strength"},
		GoalSpeed:              "moderate",
	}
}

func TestCreateProfile_AssignsIDAndRoundTrips(t *testing.T) {
	uc := newProfileUsecase()

	created, err := uc.CreateProfile(context.Background(), createProfileRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Arjun", created.Name)
	assert.Equal(t, []string{"diabetes"}, created.MedicalConditions)

	found, err := uc.GetProfile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.PhysicalGoals, found.PhysicalGoals)
}

func TestCreateProfile_EachSubmissionIsDistinct(t *testing.T) {
	uc := newProfileUsecase()

	first, err := uc.CreateProfile(context.Background(), createProfileRequest())
	require.NoError(t, err)
	second, err := uc.CreateProfile(context.Background(), createProfileRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetProfile_Missing(t *testing.T) {
	uc := newProfileUsecase()

	found, err := uc.GetProfile(context.Background(), uuid.New())
	assert.Nil(t, found)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
