package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sellerpulse/pulse/internal/report"
	"github.com/sellerpulse/pulse/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Score multiple profile URLs from a file in parallel",
	Long: `Batch scores many marketplace profiles concurrently:
- Read profile URLs from the input file (one per line, # comments allowed)
- Score them in parallel with a bounded worker pool and per-host rate limit
- Write one JSON report per seller to the output directory

Example:
  pulse batch urls.txt
  pulse batch urls.txt --concurrency 4 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: CPU count)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./pulse-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	client, _, cfg := newClient()
	if concurrency <= 0 {
		concurrency = cfg.Concurrency.Workers
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n\n", outputDir)

	processor := worker.NewBatchProcessor(client, concurrency,
		cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.URL, result.Error)
			continue
		}
		if result.Record == nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: no seller in response\n", result.URL)
			continue
		}
		successCount++

		out, err := report.JSON(result.Record)
		if err != nil {
			failureCount++
			successCount--
			fmt.Fprintf(os.Stderr, "FAIL %s: render: %v\n", result.URL, err)
			continue
		}

		path := filepath.Join(outputDir, reportFilename(result.Record.Seller.Key(), result.URL))
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			failureCount++
			successCount--
			fmt.Fprintf(os.Stderr, "FAIL %s: write: %v\n", result.URL, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "OK   %s (%d/100)\n", result.Record.Seller.Name, result.Record.Seller.PulseScore)
	}

	fmt.Fprintf(os.Stderr, "\nTotal: %d  Success: %d  Failures: %d\n",
		len(results), successCount, failureCount)

	if failureCount > 0 && successCount == 0 {
		return fmt.Errorf("all %d profiles failed", failureCount)
	}
	return nil
}

// reportFilename derives a safe output name from the seller identity,
// falling back to a hash of the URL for unidentified records
func reportFilename(key, url string) string {
	if key == ":" || key == "" {
		sum := sha256.Sum256([]byte(url))
		return "profile-" + hex.EncodeToString(sum[:8]) + ".json"
	}

	out := make([]rune, 0, len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '-')
		}
	}
	return string(out) + ".json"
}
