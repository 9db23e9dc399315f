package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"deepdive/internal/model"
)

// ChatLogCache keeps the live message list of an interview between
// turns so a turn does not need a MongoDB round trip. Misses are not
// errors; callers fall through to the repository.
type ChatLogCache interface {
	Get(ctx context.Context, surveyID, responseID string) (*model.ChatRecord, error)
	Set(ctx context.Context, record *model.ChatRecord) error
	Delete(ctx context.Context, surveyID, responseID string) error
}

type chatLogCache struct {
	client *redis.Client
}

// NewChatLogCache creates a new chat log cache
func NewChatLogCache(client *redis.Client) ChatLogCache {
	return &chatLogCache{
		client: client,
	}
}

func key(surveyID, responseID string) string {
	return "chatlog:" + surveyID + ":" + responseID
}

func (c *chatLogCache) Get(ctx context.Context, surveyID, responseID string) (*model.ChatRecord, error) {
	data, err := c.client.Get(ctx, key(surveyID, responseID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record model.ChatRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *chatLogCache) Set(ctx context.Context, record *model.ChatRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(record.SurveyID, record.ResponseID), data, 30*time.Minute).Err()
}

func (c *chatLogCache) Delete(ctx context.Context, surveyID, responseID string) error {
	return c.client.Del(ctx, key(surveyID, responseID)).Err()
}
