package service

import (
	"context"
	"errors"
	"fmt"

	"deepdive/internal/chatlog"
	"deepdive/internal/gateway"
	"deepdive/internal/model"
	"deepdive/internal/repository"
)

// maxChatContextLen bounds the survey chat context; longer contexts are
// summarised through the gateway before being stored.
const maxChatContextLen = 1500

var ErrSurveyNotFound = errors.New("survey not found")

// SurveyService handles survey creation and retrieval
type SurveyService struct {
	surveys repository.SurveyRepo
	gw      gateway.Gateway
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveys repository.SurveyRepo, gw gateway.Gateway) *SurveyService {
	return &SurveyService{
		surveys: surveys,
		gw:      gw,
	}
}

// ValidateSurvey checks a survey object against the expected format.
func ValidateSurvey(survey *model.Survey) error {
	if survey.Title == "" {
		return errors.New("missing or empty 'title' field")
	}
	if survey.Subtitle == "" {
		return errors.New("missing or empty 'subtitle' field")
	}
	if survey.ChatContext == "" {
		return errors.New("missing or empty 'chat_context' field")
	}
	if len(survey.Questions) == 0 {
		return errors.New("missing or empty 'questions' field")
	}
	for _, q := range survey.Questions {
		if q.QuestionID <= 0 {
			return fmt.Errorf("invalid question_id %d", q.QuestionID)
		}
		if !q.Type.Valid() {
			return fmt.Errorf("invalid question type %q", q.Type)
		}
		if q.Question == "" {
			return fmt.Errorf("missing question text for question %d", q.QuestionID)
		}
		if q.Options == nil {
			return fmt.Errorf("missing options list for question %d", q.QuestionID)
		}
	}
	return nil
}

// Create validates and stores a survey, summarising an oversized chat
// context first. Gateway failures during summarisation surface to the
// caller.
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (string, error) {
	if err := ValidateSurvey(survey); err != nil {
		return "", err
	}

	summarised, err := s.summarise(ctx, survey.ChatContext)
	if err != nil {
		return "", err
	}
	survey.ChatContext = summarised

	return s.surveys.Create(ctx, survey)
}

// Get returns a survey by id
func (s *SurveyService) Get(ctx context.Context, id string) (*model.Survey, error) {
	survey, err := s.surveys.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

// List returns all surveys owned by an admin
func (s *SurveyService) List(ctx context.Context, adminUsername string) ([]*model.Survey, error) {
	return s.surveys.GetByAdmin(ctx, adminUsername)
}

// Delete removes a survey owned by the given admin
func (s *SurveyService) Delete(ctx context.Context, adminUsername, id string) error {
	survey, err := s.surveys.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if survey == nil || survey.AdminUsername != adminUsername {
		return ErrSurveyNotFound
	}
	return s.surveys.Delete(ctx, id)
}

func (s *SurveyService) summarise(ctx context.Context, chatContext string) (string, error) {
	if len(chatContext) <= maxChatContextLen {
		return chatContext, nil
	}

	out, err := s.gw.Run(ctx, []model.Message{
		{Role: model.RoleSystem, Content: "You are an assistant who summarises text."},
		{Role: model.RoleUser, Content: fmt.Sprintf(`The following text will supply contextual knowledge needed for a survey.
Summarise it in less than 5 sentences, paying attention to what the survey is about and/or the product:
%s`, chatContext)},
	}, gateway.RandomSeed(), true)
	if err != nil {
		return "", err
	}
	if len(out) > maxChatContextLen {
		out = out[:maxChatContextLen]
	}
	return out, nil
}

// ChatContextFor renders the grounding text a fresh interview is seeded
// with: survey context followed by the respondent's formatted answers.
func ChatContextFor(survey *model.Survey, response *model.Response) string {
	return survey.ChatContext + "\n" + chatlog.FormatResponses(response)
}
