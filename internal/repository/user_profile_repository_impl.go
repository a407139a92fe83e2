package repository

import (
	"context"
	"errors"

	"holistic-health-backend/internal/domain/entity"
	domainRepo "holistic-health-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userProfileRepository struct{}

func NewUserProfileRepository() domainRepo.UserProfileRepository {
	return &userProfileRepository{}
}

func (r *userProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.UserProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return db.WithContext(ctx).Create(profile).Error
}

func (r *userProfileRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
