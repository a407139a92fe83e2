package http

import (
	"net/http"

	"holistic-health-backend/internal/delivery/http/handler"
	"holistic-health-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	profileHandler *handler.ProfileHandler
	planHandler    *handler.PlanHandler
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	planHandler *handler.PlanHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		profileHandler: profileHandler,
		planHandler:    planHandler,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Profile routes
	profiles := api.PathPrefix("/profiles").Subrouter()
	profiles.HandleFunc("", r.profileHandler.CreateProfile).Methods(http.MethodPost)
	profiles.HandleFunc("/{userId}", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profiles.HandleFunc("/{userId}/meal-plan", r.planHandler.GetMealPlan).Methods(http.MethodGet)
	profiles.HandleFunc("/{userId}/timetable", r.planHandler.GetTimetable).Methods(http.MethodGet)

	// Plan generation
	plans := api.PathPrefix("/plans").Subrouter()
	plans.HandleFunc("/generate", r.planHandler.GeneratePlan).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
