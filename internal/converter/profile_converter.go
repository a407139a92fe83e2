package converter

import (
	"holistic-health-backend/internal/delivery/dto"
	"holistic-health-backend/internal/domain/entity"
)

// ProfileToResponse converts a UserProfile entity to its response DTO
func ProfileToResponse(profile *entity.UserProfile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfileResponse{
		ID:                     profile.ID,
		Name:                   profile.Name,
		Age:                    profile.Age,
		Gender:                 profile.Gender,
		Height:                 profile.Height,
		Weight:                 profile.Weight,
		Region:                 profile.Region,
		Occupation:             profile.Occupation,
		MedicalConditions:      profile.MedicalConditions,
		Allergies:              profile.Allergies,
		PhysicalActivityLevel:  profile.PhysicalActivityLevel,
		BirthPlace:             profile.BirthPlace,
		BirthDate:              profile.BirthDate,
		BirthTime:              profile.BirthTime,
		DoshaType:              profile.DoshaType,
		FoodPreference:         profile.FoodPreference,
		WeeklyBudget:           profile.WeeklyBudget,
		WorkingHoursPreference: profile.WorkingHoursPreference,
		PhysicalGoals:          profile.PhysicalGoals,
		MentalGoals:            profile.MentalGoals,
		SpiritualGoals:         profile.SpiritualGoals,
		GoalSpeed:              profile.GoalSpeed,
		CustomPreferences:      profile.CustomPreferences,
	}
}

// ProfileFromCreateRequest builds a UserProfile entity from the onboarding
// request. The identity is assigned by the profile store on create.
func ProfileFromCreateRequest(req *dto.CreateProfileRequest) *entity.UserProfile {
	return &entity.UserProfile{
		Name:                   req.Name,
		Age:                    req.Age,
		Gender:                 req.Gender,
		Height:                 req.Height,
		Weight:                 req.Weight,
		Region:                 req.Region,
		Occupation:             req.Occupation,
		MedicalConditions:      req.MedicalConditions,
		Allergies:              req.Allergies,
		PhysicalActivityLevel:  req.PhysicalActivityLevel,
		BirthPlace:             req.BirthPlace,
		BirthDate:              req.BirthDate,
		BirthTime:              req.BirthTime,
		DoshaType:              req.DoshaType,
		FoodPreference:         req.FoodPreference,
		WeeklyBudget:           req.WeeklyBudget,
		WorkingHoursPreference: req.WorkingHoursPreference,
		PhysicalGoals:          req.PhysicalGoals,
		MentalGoals:            req.MentalGoals,
		SpiritualGoals:         req.SpiritualGoals,
		GoalSpeed:              req.GoalSpeed,
		CustomPreferences:      req.CustomPreferences,
	}
}
