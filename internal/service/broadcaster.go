package service

import "deepdive/internal/model"

// Broadcaster pushes live interview turns to connected observers.
type Broadcaster interface {
	BroadcastTurn(surveyID, responseID string, turn *model.ChatTurn)
}
