package gateway

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"deepdive/internal/config"
	"deepdive/internal/model"
)

// OpenAIGateway runs conversations against the OpenAI chat completions
// API and screens output through the moderations endpoint.
type OpenAIGateway struct {
	client openai.Client
	model  string
}

// NewOpenAIGateway creates a gateway from AI config.
func NewOpenAIGateway(cfg *config.AIConfig) *OpenAIGateway {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIGateway{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

// Run sends the conversation and returns the model's reply.
func (g *OpenAIGateway) Run(ctx context.Context, messages []model.Message, seed int64, withModeration bool) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("gateway: empty message list")
	}

	out, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(g.model),
		Messages:    toCompletionParams(messages),
		Seed:        openai.Int(seed),
		Temperature: openai.Float(0.4),
		TopP:        openai.Float(0.4),
	})
	if err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("gateway: empty completion")
	}
	text := out.Choices[0].Message.Content

	if withModeration {
		harmful, err := g.isHarmful(ctx, text)
		if err != nil {
			return "", err
		}
		if harmful {
			return ModerationNotice, nil
		}
	}
	return text, nil
}

func (g *OpenAIGateway) isHarmful(ctx context.Context, text string) (bool, error) {
	res, err := g.client.Moderations.New(ctx, openai.ModerationNewParams{
		Input: openai.ModerationNewParamsInputUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		return false, err
	}
	if len(res.Results) == 0 {
		return false, nil
	}
	return res.Results[0].Flagged, nil
}

func toCompletionParams(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case model.RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		case model.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}
