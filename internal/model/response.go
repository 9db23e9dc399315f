package model

import "time"

// Answer is one respondent answer to a static survey question. Options
// and Answer are lists so multiple-response questions fit the same
// shape; free-response answers carry a single element.
type Answer struct {
	QuestionID int          `json:"question_id" bson:"questionId"`
	Type       QuestionType `json:"type" bson:"type"`
	Question   string       `json:"question" bson:"question"`
	Options    []string     `json:"options" bson:"options"`
	Answer     []string     `json:"answer" bson:"answer"`
}

// ResponseMetadata identifies which survey a response belongs to.
type ResponseMetadata struct {
	SurveyID    string    `json:"survey_id" bson:"surveyId"`
	ResponseID  string    `json:"response_id" bson:"responseId"`
	SubmittedAt time.Time `json:"submitted_at" bson:"submittedAt"`
}

// Response is one respondent's full set of static answers. It is the
// grounding context the follow-up interview is bootstrapped from.
type Response struct {
	ID       string           `json:"-" bson:"_id,omitempty"`
	Metadata ResponseMetadata `json:"metadata" bson:"metadata"`
	Answers  []Answer         `json:"answers" bson:"answers"`
}
