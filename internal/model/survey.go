package model

import "time"

// QuestionType enumerates the static question kinds a survey may contain.
type QuestionType string

const (
	QuestionTypeMultipleChoice   QuestionType = "multiple_choice"
	QuestionTypeMultipleResponse QuestionType = "multiple_response"
	QuestionTypeFreeResponse     QuestionType = "free_response"
)

// Valid reports whether the question type is one of the supported kinds.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeMultipleResponse, QuestionTypeFreeResponse:
		return true
	}
	return false
}

// Question is a static question template in a survey.
type Question struct {
	QuestionID int          `json:"question_id" bson:"questionId"`
	Type       QuestionType `json:"type" bson:"type"`
	Question   string       `json:"question" bson:"question"`
	Options    []string     `json:"options" bson:"options"`
}

// Survey is a persistent template created by an admin. ChatContext is
// free text describing the product/company under survey; it seeds the
// follow-up interview together with the respondent's answers.
type Survey struct {
	ID            string     `json:"survey_id" bson:"_id,omitempty"`
	AdminUsername string     `json:"admin_username" bson:"adminUsername"`
	Title         string     `json:"title" bson:"title"`
	Subtitle      string     `json:"subtitle" bson:"subtitle"`
	ChatContext   string     `json:"chat_context" bson:"chatContext"`
	Questions     []Question `json:"questions" bson:"questions"`
	CreatedAt     time.Time  `json:"created_at" bson:"createdAt"`
}
