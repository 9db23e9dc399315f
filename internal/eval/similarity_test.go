package eval

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityClientScore(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the best score", func(t *testing.T) {
		var gotBody map[string]map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode([]float64{0.42, 0.91, 0.13})
		}))
		defer srv.Close()

		client := NewSimilarityClient(srv.URL, 1000)
		score, err := client.Score(ctx, "how do you like it?", []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, 0.91, score)
		assert.Equal(t, "how do you like it?", gotBody["inputs"]["source_sentence"])
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model loading", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := NewSimilarityClient(srv.URL, 1000)
		_, err := client.Score(ctx, "x", []string{"a"})
		assert.Error(t, err)
	})

	t.Run("empty score list is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]float64{})
		}))
		defer srv.Close()

		client := NewSimilarityClient(srv.URL, 1000)
		_, err := client.Score(ctx, "x", []string{"a"})
		assert.Error(t, err)
	})
}
