package chatlog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deepdive/internal/model"
)

func TestFormatMultipleChoices(t *testing.T) {
	t.Run("empty list renders nothing", func(t *testing.T) {
		assert.Equal(t, "", FormatMultipleChoices(nil, "Option", ", ", true))
		assert.Equal(t, "", FormatMultipleChoices([]string{}, "Option", ", ", true))
	})

	t.Run("blank values are dropped", func(t *testing.T) {
		assert.Equal(t, "", FormatMultipleChoices([]string{""}, "Option", ", ", true))
		assert.Equal(t, "", FormatMultipleChoices([]string{"", "  "}, "Option", ", ", true))
		assert.Equal(t, "Option:\na", FormatMultipleChoices([]string{"", "a", ""}, "Option", ", ", true))
	})

	t.Run("single value keeps the singular label", func(t *testing.T) {
		assert.Equal(t, "Option:\na", FormatMultipleChoices([]string{"a"}, "Option", ", ", true))
	})

	t.Run("multiple values pluralize the label", func(t *testing.T) {
		assert.Equal(t, "Options:\na, b", FormatMultipleChoices([]string{"a", "b"}, "Option", ", ", true))
		assert.Equal(t, "Answers:\nx, y, z", FormatMultipleChoices([]string{"x", "y", "z"}, "Answer", ", ", true))
	})

	t.Run("pluralization can be suppressed", func(t *testing.T) {
		assert.Equal(t, "Option:\na, b", FormatMultipleChoices([]string{"a", "b"}, "Option", ", ", false))
	})

	t.Run("separator is caller-chosen", func(t *testing.T) {
		assert.Equal(t, "Options:\na | b", FormatMultipleChoices([]string{"a", "b"}, "Option", " | ", true))
	})
}

func TestFormatResponses(t *testing.T) {
	t.Run("free response", func(t *testing.T) {
		resp := &model.Response{
			Answers: []model.Answer{
				{
					QuestionID: 1,
					Type:       model.QuestionTypeFreeResponse,
					Question:   "question?",
					Options:    []string{""},
					Answer:     []string{"string1 blah blah blah."},
				},
			},
		}
		assert.Equal(t, "1. question?\n\nAnswer:\nstring1 blah blah blah.", FormatResponses(resp))
	})

	t.Run("multiple choice", func(t *testing.T) {
		resp := &model.Response{
			Answers: []model.Answer{
				{
					QuestionID: 1,
					Type:       model.QuestionTypeMultipleChoice,
					Question:   "Do you like burgers?",
					Options:    []string{"Yes", "No"},
					Answer:     []string{"Yes"},
				},
			},
		}
		assert.Equal(t,
			"1. Do you like burgers?\nOptions:\nYes, No\nAnswer:\nYes",
			FormatResponses(resp))
	})

	t.Run("multiple answers join and pluralize", func(t *testing.T) {
		resp := &model.Response{
			Answers: []model.Answer{
				{
					QuestionID: 2,
					Type:       model.QuestionTypeMultipleResponse,
					Question:   "Which aspects stood out?",
					Options:    []string{"Flavour", "Crispiness", "Price"},
					Answer:     []string{"Flavour", "Price"},
				},
			},
		}
		assert.Equal(t,
			"2. Which aspects stood out?\nOptions:\nFlavour, Crispiness, Price\nAnswers:\nFlavour, Price",
			FormatResponses(resp))
	})

	t.Run("answers are numbered by question id and newline-joined", func(t *testing.T) {
		resp := &model.Response{
			Answers: []model.Answer{
				{QuestionID: 1, Question: "first?", Answer: []string{"a"}},
				{QuestionID: 2, Question: "second?", Answer: []string{"b"}},
			},
		}
		assert.Equal(t,
			"1. first?\n\nAnswer:\na\n2. second?\n\nAnswer:\nb",
			FormatResponses(resp))
	})
}
