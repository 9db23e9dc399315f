package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepdive/internal/model"
)

func TestValidateResponse(t *testing.T) {
	survey := testSurvey()

	valid := func() *model.Response { return testResponse("s1") }

	t.Run("valid response passes", func(t *testing.T) {
		assert.NoError(t, ValidateResponse(valid(), survey))
	})

	t.Run("answer count mismatch", func(t *testing.T) {
		resp := valid()
		resp.Answers = append(resp.Answers, model.Answer{QuestionID: 2})
		assert.Error(t, ValidateResponse(resp, survey))
	})

	t.Run("unknown question id", func(t *testing.T) {
		resp := valid()
		resp.Answers[0].QuestionID = 99
		assert.Error(t, ValidateResponse(resp, survey))
	})

	t.Run("type mismatch", func(t *testing.T) {
		resp := valid()
		resp.Answers[0].Type = model.QuestionTypeFreeResponse
		assert.Error(t, ValidateResponse(resp, survey))
	})

	t.Run("question text mismatch", func(t *testing.T) {
		resp := valid()
		resp.Answers[0].Question = "Do you like fries?"
		assert.Error(t, ValidateResponse(resp, survey))
	})

	t.Run("empty answer", func(t *testing.T) {
		resp := valid()
		resp.Answers[0].Answer = nil
		assert.Error(t, ValidateResponse(resp, survey))
	})

	t.Run("multiple choice option not in survey", func(t *testing.T) {
		resp := valid()
		resp.Answers[0].Options = []string{"Yes", "Maybe"}
		assert.Error(t, ValidateResponse(resp, survey))
	})

	t.Run("multiple choice option count mismatch", func(t *testing.T) {
		resp := valid()
		resp.Answers[0].Options = []string{"Yes"}
		assert.Error(t, ValidateResponse(resp, survey))
	})
}

func TestResponseServiceSubmit(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (*ResponseService, string) {
		t.Helper()
		surveys := newFakeSurveyRepo()
		surveyID, err := surveys.Create(ctx, testSurvey())
		require.NoError(t, err)
		return NewResponseService(surveys, newFakeResponseRepo()), surveyID
	}

	t.Run("assigns a response id and stores", func(t *testing.T) {
		svc, surveyID := newFixture(t)

		resp := testResponse("")
		resp.Metadata = model.ResponseMetadata{}
		id, err := svc.Submit(ctx, surveyID, resp)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, surveyID, resp.Metadata.SurveyID)

		got, err := svc.Get(ctx, surveyID, id)
		require.NoError(t, err)
		assert.Equal(t, resp.Answers, got.Answers)
	})

	t.Run("unknown survey", func(t *testing.T) {
		svc, _ := newFixture(t)
		_, err := svc.Submit(ctx, "missing", testResponse(""))
		assert.ErrorIs(t, err, ErrSurveyNotFound)
	})

	t.Run("invalid response wraps the sentinel", func(t *testing.T) {
		svc, surveyID := newFixture(t)
		resp := testResponse("")
		resp.Answers[0].Answer = nil
		_, err := svc.Submit(ctx, surveyID, resp)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("unknown response id", func(t *testing.T) {
		svc, surveyID := newFixture(t)
		_, err := svc.Get(ctx, surveyID, "missing")
		assert.ErrorIs(t, err, ErrResponseNotFound)
	})
}
