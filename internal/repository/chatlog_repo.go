package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"deepdive/internal/model"
)

// ChatLogRepo persists the interview message blob per survey response
type ChatLogRepo interface {
	Get(ctx context.Context, surveyID, responseID string) (*model.ChatRecord, error)
	Upsert(ctx context.Context, record *model.ChatRecord) error
}

type chatLogRepo struct {
	collection *mongo.Collection
}

// NewChatLogRepo creates a new chat log repository
func NewChatLogRepo(db *mongo.Database) ChatLogRepo {
	return &chatLogRepo{
		collection: db.Collection("chatlogs"),
	}
}

func (r *chatLogRepo) Get(ctx context.Context, surveyID, responseID string) (*model.ChatRecord, error) {
	var record model.ChatRecord
	err := r.collection.FindOne(ctx, bson.M{
		"surveyId":   surveyID,
		"responseId": responseID,
	}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *chatLogRepo) Upsert(ctx context.Context, record *model.ChatRecord) error {
	record.UpdatedAt = time.Now()
	filter := bson.M{
		"surveyId":   record.SurveyID,
		"responseId": record.ResponseID,
	}
	update := bson.M{"$set": bson.M{
		"messages":  record.Messages,
		"updatedAt": record.UpdatedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
