// Package eval is the offline evaluation harness: it scores model
// replies against reference sentences through an external
// semantic-similarity API. The interview core never imports it.
package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SimilarityClient calls a semantic-similarity scoring API
type SimilarityClient struct {
	baseURL string
	client  *http.Client
}

// NewSimilarityClient creates a new similarity client
func NewSimilarityClient(baseURL string, timeoutMS int) *SimilarityClient {
	return &SimilarityClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
	}
}

// Score returns the best similarity between a candidate sentence and a
// set of reference sentences, in [0, 1].
func (c *SimilarityClient) Score(ctx context.Context, candidate string, references []string) (float64, error) {
	reqBody := map[string]interface{}{
		"inputs": map[string]interface{}{
			"source_sentence": candidate,
			"sentences":       references,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("similarity API returned %d: %s", resp.StatusCode, body)
	}

	var scores []float64
	if err := json.Unmarshal(body, &scores); err != nil {
		return 0, err
	}
	if len(scores) == 0 {
		return 0, fmt.Errorf("similarity API returned no scores")
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	return best, nil
}
