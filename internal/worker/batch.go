package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sellerpulse/pulse/internal/normalize"
)

// Scorer defines the interface for scoring one profile URL against the
// backend. Implemented by the API gateway client.
type Scorer interface {
	ScoreProfileURL(ctx context.Context, profileURL string) (*normalize.Result, error)
}

// ScoreJob scores a single profile URL
type ScoreJob struct {
	URL    string
	Scorer Scorer
}

// Execute executes the score job
func (j *ScoreJob) Execute(ctx context.Context) Result {
	result, err := j.Scorer.ScoreProfileURL(ctx, j.URL)
	return &ScoreResult{
		URL:    j.URL,
		Record: result,
		Error:  err,
	}
}

// ScoreResult is the outcome for one profile URL
type ScoreResult struct {
	URL    string
	Record *normalize.Result
	Error  error
}

// GetError returns the error from the score result
func (r *ScoreResult) GetError() error {
	return r.Error
}

// BatchProcessor scores many profile URLs concurrently
type BatchProcessor struct {
	scorer      Scorer
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. Rate limiting applies on
// top of pool concurrency so a wide pool cannot hammer the backend.
func NewBatchProcessor(scorer Scorer, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		scorer:      scorer,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
	}
}

// ProcessURLs scores the given profile URLs concurrently
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*ScoreResult {
	if len(urls) == 0 {
		return []*ScoreResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, url := range urls {
		pool.Submit(&ScoreJob{
			URL:    url,
			Scorer: &limitedScorer{scorer: b.scorer, limiter: b.limiter},
		})
	}

	results := pool.Wait()

	scoreResults := make([]*ScoreResult, len(results))
	for i, result := range results {
		scoreResults[i] = result.(*ScoreResult)
	}
	return scoreResults
}

// ProcessFile reads profile URLs from a file and scores them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ScoreResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return b.ProcessURLs(ctx, urls), nil
}

// limitedScorer gates a scorer behind the shared limiter
type limitedScorer struct {
	scorer  Scorer
	limiter *Limiter
}

func (s *limitedScorer) ScoreProfileURL(ctx context.Context, profileURL string) (*normalize.Result, error) {
	if err := s.limiter.Wait(ctx, profileURL); err != nil {
		return nil, err
	}
	return s.scorer.ScoreProfileURL(ctx, profileURL)
}

// ReadURLsFromFile reads URLs from a file, one per line. Blank lines and
// #-comments are skipped; duplicates are dropped.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
