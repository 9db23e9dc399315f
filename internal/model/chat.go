package model

import "time"

// ChatRecord is the persisted form of one interview-in-progress: an
// opaque messages blob keyed by survey and response. The conversation
// object itself is rebuilt from this on every turn.
type ChatRecord struct {
	SurveyID   string    `json:"survey_id" bson:"surveyId"`
	ResponseID string    `json:"response_id" bson:"responseId"`
	Messages   []Message `json:"messages" bson:"messages"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updatedAt"`
}

// ChatTurn is the outcome of one interview turn, returned to the client
// and broadcast to live observers.
type ChatTurn struct {
	Content  string    `json:"content"`
	IsLast   bool      `json:"is_last"`
	Messages []Message `json:"updated_message_list"`
}
