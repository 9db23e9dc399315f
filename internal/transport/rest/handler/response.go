package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"deepdive/internal/model"
	"deepdive/internal/service"
)

// ResponseHandler handles survey response endpoints
type ResponseHandler struct {
	responseSvc  *service.ResponseService
	interviewSvc *service.InterviewService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService, interviewSvc *service.InterviewService) *ResponseHandler {
	return &ResponseHandler{
		responseSvc:  responseSvc,
		interviewSvc: interviewSvc,
	}
}

// Submit handles POST /api/v1/surveys/{surveyId}/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var response model.Response
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.responseSvc.Submit(r.Context(), surveyID, &response)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSurveyNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidResponse):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"response_id": id})
}

// List handles GET /api/v1/surveys/{surveyId}/responses
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	responses, err := h.responseSvc.List(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}

// Get handles GET /api/v1/surveys/{surveyId}/responses/{responseId}.
// The persisted interview, when one exists, rides along with the static
// answers.
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	surveyID, responseID := vars["surveyId"], vars["responseId"]

	response, err := h.responseSvc.Get(r.Context(), surveyID, responseID)
	if err != nil {
		if errors.Is(err, service.ErrResponseNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := map[string]interface{}{
		"metadata": response.Metadata,
		"answers":  response.Answers,
	}
	if record, err := h.interviewSvc.GetChatLog(r.Context(), surveyID, responseID); err == nil {
		out["chat_log"] = record.Messages
	}
	writeJSON(w, http.StatusOK, out)
}
