package eval

import (
	"context"

	"deepdive/internal/chatlog"
	"deepdive/internal/gateway"
)

// Case is one evaluation scenario: a formatted survey-response block
// and the reference openings a good interviewer would produce for it.
type Case struct {
	Name       string   `json:"name"`
	Responses  string   `json:"responses"`
	References []string `json:"references"`
	Seed       int64    `json:"seed"`
}

// Result pairs a case with the model's opening question and its
// similarity score against the references.
type Result struct {
	Name    string  `json:"name"`
	Opening string  `json:"opening"`
	Score   float64 `json:"score"`
}

// RunCase bootstraps an interview for the case's survey responses and
// scores the model's opening question against the reference openings.
func RunCase(ctx context.Context, c Case, gw gateway.Gateway, sim *SimilarityClient) (*Result, error) {
	log, err := chatlog.Construct(ctx, c.Responses, gw, c.Seed)
	if err != nil {
		return nil, err
	}
	opening := log.Messages()[1].Content

	score, err := sim.Score(ctx, opening, c.References)
	if err != nil {
		return nil, err
	}

	return &Result{
		Name:    c.Name,
		Opening: opening,
		Score:   score,
	}, nil
}
