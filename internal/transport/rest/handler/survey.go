package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"deepdive/internal/model"
	"deepdive/internal/service"
	"deepdive/internal/transport/rest/middleware"
)

// SurveyHandler handles survey endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// Create handles POST /api/v1/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetAdminUsername(r.Context())
	if admin == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var survey model.Survey
	if err := json.NewDecoder(r.Body).Decode(&survey); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	survey.AdminUsername = admin

	if err := service.ValidateSurvey(&survey); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.surveySvc.Create(r.Context(), &survey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"survey_id": id})
}

// List handles GET /api/v1/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetAdminUsername(r.Context())
	surveys, err := h.surveySvc.List(r.Context(), admin)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"surveys": surveys})
}

// Get handles GET /api/v1/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	survey, err := h.surveySvc.Get(r.Context(), surveyID)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

// Delete handles DELETE /api/v1/surveys/{surveyId}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetAdminUsername(r.Context())
	surveyID := mux.Vars(r)["surveyId"]

	if err := h.surveySvc.Delete(r.Context(), admin, surveyID); err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Survey deleted successfully"})
}
