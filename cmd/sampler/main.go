// Command sampler runs sample texts through a running wordsmith server in
// every mode and reports suggestions and latency.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	cmd := &cli.Command{
		Name:  "sampler",
		Usage: "Run sample texts through a wordsmith server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Value:   "http://localhost:8090",
				Usage:   "API base URL",
				Sources: cli.EnvVars("WORDSMITH_URL"),
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Model ID to use (default: the server's default)",
			},
			&cli.StringFlag{
				Name:  "modes",
				Value: "fix,rephrase,flirt",
				Usage: "Comma-separated modes to sample",
			},
			&cli.IntFlag{
				Name:  "runs",
				Value: 1,
				Usage: "Number of runs per sample",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 2,
				Usage: "Requests in flight at once",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 90 * time.Second,
				Usage: "Per-request timeout",
			},
			&cli.BoolFlag{
				Name:  "quality",
				Usage: "Print input and suggestions for each sample instead of the timing table",
			},
			&cli.StringFlag{
				Name:  "json",
				Usage: "Write results to JSON file (e.g. results.json)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	modes, err := parseModes(cmd.String("modes"))
	if err != nil {
		return err
	}
	samples := filterSamples(Samples, modes)
	if len(samples) == 0 {
		return fmt.Errorf("no samples for modes %q", cmd.String("modes"))
	}

	runs := int(cmd.Int("runs"))
	if runs < 1 {
		runs = 1
	}
	concurrency := int(cmd.Int("concurrency"))
	if concurrency < 1 {
		concurrency = 1
	}

	client := newAPIClient(cmd.String("url"), cmd.Duration("timeout"))

	modelID := cmd.String("model")
	if modelID == "" {
		modelID, err = client.discoverModel(ctx)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Sampling %d texts against %s using model: %s (%d runs, concurrency %d)\n",
		len(samples), client.baseURL, modelID, runs, concurrency)

	results := sampleAll(ctx, client, modelID, samples, runs, concurrency)

	if cmd.Bool("quality") {
		printQuality(os.Stdout, samples, results)
	} else {
		fmt.Println()
		printTable(os.Stdout, results)
	}
	printSummary(os.Stdout, results)

	if path := cmd.String("json"); path != "" {
		if err := writeJSON(path, results, client.baseURL, modelID); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		fmt.Printf("\nResults written to %s\n", path)
	}

	var failures int
	for _, r := range results {
		if r.Error != "" {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d requests failed", failures, len(results))
	}
	return nil
}

// sampleAll runs every sample runs times with at most concurrency requests
// in flight. Results keep sample order, then run order.
func sampleAll(ctx context.Context, client *apiClient, modelID string, samples []Sample, runs, concurrency int) []result {
	results := make([]result, len(samples)*runs)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, s := range samples {
		for run := 1; run <= runs; run++ {
			idx := i*runs + run - 1
			g.Go(func() error {
				r := client.suggest(gctx, modelID, s, run)
				mu.Lock()
				results[idx] = r
				mu.Unlock()
				return nil
			})
		}
	}
	g.Wait()

	return results
}
