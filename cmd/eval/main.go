package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"deepdive/internal/config"
	"deepdive/internal/eval"
	"deepdive/internal/gateway"
)

func main() {
	casesPath := flag.String("cases", "eval_cases.json", "path to a JSON file of evaluation cases")
	flag.Parse()

	aiConfig := config.DefaultAIConfig()
	if !aiConfig.IsEnabled() {
		log.Fatal("OPENAI_API_KEY must be set to run the evaluation harness")
	}
	if aiConfig.SimilarityURL == "" {
		log.Fatal("SIMILARITY_API_URL must be set to score openings")
	}

	data, err := os.ReadFile(*casesPath)
	if err != nil {
		log.Fatalf("Failed to read cases file: %v", err)
	}

	var cases []eval.Case
	if err := json.Unmarshal(data, &cases); err != nil {
		log.Fatalf("Failed to parse cases file: %v", err)
	}

	gw := gateway.NewOpenAIGateway(aiConfig)
	sim := eval.NewSimilarityClient(aiConfig.SimilarityURL, aiConfig.TimeoutMS)

	ctx := context.Background()
	var total float64
	for _, c := range cases {
		res, err := eval.RunCase(ctx, c, gw, sim)
		if err != nil {
			log.Fatalf("Case %q failed: %v", c.Name, err)
		}
		total += res.Score
		fmt.Printf("%-30s score=%.3f\n  opening: %s\n", res.Name, res.Score, res.Opening)
	}
	if len(cases) > 0 {
		fmt.Printf("mean score: %.3f over %d cases\n", total/float64(len(cases)), len(cases))
	}
}
