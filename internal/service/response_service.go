package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"deepdive/internal/model"
	"deepdive/internal/repository"
)

var (
	ErrResponseNotFound = errors.New("response not found")
	ErrInvalidResponse  = errors.New("invalid response")
)

// ResponseService handles submission and retrieval of survey responses
type ResponseService struct {
	surveys   repository.SurveyRepo
	responses repository.ResponseRepo
}

// NewResponseService creates a new response service
func NewResponseService(surveys repository.SurveyRepo, responses repository.ResponseRepo) *ResponseService {
	return &ResponseService{
		surveys:   surveys,
		responses: responses,
	}
}

// ValidateResponse checks a submitted response against its survey: the
// answer set must mirror the survey's questions exactly.
func ValidateResponse(response *model.Response, survey *model.Survey) error {
	if len(response.Answers) != len(survey.Questions) {
		return errors.New("number of questions in response does not match survey")
	}

	for _, ans := range response.Answers {
		var match *model.Question
		for i := range survey.Questions {
			if survey.Questions[i].QuestionID == ans.QuestionID {
				match = &survey.Questions[i]
				break
			}
		}
		if match == nil {
			return fmt.Errorf("question with ID %d not found in survey", ans.QuestionID)
		}
		if ans.Type != match.Type {
			return fmt.Errorf("question type mismatch for question with ID %d", ans.QuestionID)
		}
		if ans.Question != match.Question {
			return fmt.Errorf("question text mismatch for question with ID %d", ans.QuestionID)
		}
		if len(ans.Answer) == 0 {
			return fmt.Errorf("empty answer for question with ID %d", ans.QuestionID)
		}
		if ans.Type == model.QuestionTypeMultipleChoice {
			if len(ans.Options) != len(match.Options) {
				return fmt.Errorf("number of options mismatch for question with ID %d", ans.QuestionID)
			}
			for _, opt := range ans.Options {
				found := false
				for _, o := range match.Options {
					if o == opt {
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("option %q not found in question with ID %d's options", opt, ans.QuestionID)
				}
			}
		}
	}
	return nil
}

// Submit validates a response against its survey, assigns it an id, and
// stores it. Returns the new response id.
func (s *ResponseService) Submit(ctx context.Context, surveyID string, response *model.Response) (string, error) {
	survey, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		return "", err
	}
	if survey == nil {
		return "", ErrSurveyNotFound
	}

	if err := ValidateResponse(response, survey); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidResponse, err)
	}

	response.Metadata.SurveyID = surveyID
	response.Metadata.ResponseID = uuid.New().String()
	if err := s.responses.Create(ctx, response); err != nil {
		return "", err
	}
	return response.Metadata.ResponseID, nil
}

// Get returns a single response
func (s *ResponseService) Get(ctx context.Context, surveyID, responseID string) (*model.Response, error) {
	response, err := s.responses.GetByID(ctx, surveyID, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, ErrResponseNotFound
	}
	return response, nil
}

// List returns all responses for a survey
func (s *ResponseService) List(ctx context.Context, surveyID string) ([]*model.Response, error) {
	return s.responses.GetBySurvey(ctx, surveyID)
}
