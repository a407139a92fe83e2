package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"holistic-health-backend/internal/delivery/dto"
	"holistic-health-backend/internal/usecase"
	"holistic-health-backend/pkg/response"
	"holistic-health-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PlanHandler struct {
	planUsecase usecase.PlanUsecase
	validator   *validator.CustomValidator
}

func NewPlanHandler(planUsecase usecase.PlanUsecase, validator *validator.CustomValidator) *PlanHandler {
	return &PlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

// GeneratePlan runs a full generation cycle for the requested user and
// returns the freshly stored pair. Repeating the call regenerates both
// documents in place.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req dto.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	plan, err := h.planUsecase.GeneratePlan(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfileNotFound):
			response.NotFound(w, "Profile not found")
		case errors.Is(err, usecase.ErrPlanGeneration):
			response.BadGateway(w, "Plan generation failed")
		default:
			response.InternalServerError(w, "Failed to generate plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Plan generated successfully", plan)
}

func (h *PlanHandler) GetMealPlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	plan, err := h.planUsecase.GetMealPlan(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrMealPlanNotFound {
			response.NotFound(w, "Meal plan not found")
			return
		}
		response.InternalServerError(w, "Failed to get meal plan")
		return
	}

	response.Success(w, http.StatusOK, "Meal plan retrieved successfully", plan)
}

func (h *PlanHandler) GetTimetable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	timetable, err := h.planUsecase.GetTimetable(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrTimetableNotFound {
			response.NotFound(w, "Timetable not found")
			return
		}
		response.InternalServerError(w, "Failed to get timetable")
		return
	}

	response.Success(w, http.StatusOK, "Timetable retrieved successfully", timetable)
}
