package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"deepdive/internal/service"
)

// ChatHandler handles the interview chat-turn endpoint
type ChatHandler struct {
	interviewSvc *service.InterviewService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(interviewSvc *service.InterviewService) *ChatHandler {
	return &ChatHandler{interviewSvc: interviewSvc}
}

type chatRequest struct {
	Content string `json:"content"`

	// MessageIndex, when set, rewrites the conversation at that index
	// instead of appending; everything after it is discarded.
	MessageIndex *int `json:"message_index,omitempty"`
}

// SendMessage handles POST /api/v1/surveys/{surveyId}/responses/{responseId}/chat
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	surveyID, responseID := vars["surveyId"], vars["responseId"]

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing content")
		return
	}

	turn, err := h.interviewSvc.SendMessage(r.Context(), surveyID, responseID, req.Content, req.MessageIndex)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSurveyNotFound), errors.Is(err, service.ErrResponseNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			// Gateway failures land here: surfaced as 5xx, never
			// swallowed or retried.
			writeError(w, http.StatusInternalServerError, "An error was encountered while generating a reply: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, turn)
}
