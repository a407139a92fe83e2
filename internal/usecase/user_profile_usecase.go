package usecase

import (
	"context"
	"errors"

	"holistic-health-backend/internal/converter"
	"holistic-health-backend/internal/delivery/dto"
	"holistic-health-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type UserProfileUsecase interface {
	CreateProfile(ctx context.Context, request *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
}

type userProfileUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	profileRepo repository.UserProfileRepository
}

func NewUserProfileUsecase(db *gorm.DB, log *logrus.Logger, profileRepo repository.UserProfileRepository) UserProfileUsecase {
	return &userProfileUsecase{
		db:          db,
		log:         log,
		profileRepo: profileRepo,
	}
}

// CreateProfile stores a new profile and returns it with its assigned id.
// Every submission creates a distinct profile; there is no dedupe by name.
func (u *userProfileUsecase) CreateProfile(ctx context.Context, request *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	profile := converter.ProfileFromCreateRequest(request)

	if err := u.profileRepo.Create(ctx, u.db, profile); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	return converter.ProfileToResponse(profile), nil
}

func (u *userProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.ProfileToResponse(profile), nil
}
