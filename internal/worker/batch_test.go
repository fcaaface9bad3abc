package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
)

// MockScorer implements the Scorer interface
type MockScorer struct {
	ShouldError bool
}

func (m *MockScorer) ScoreProfileURL(ctx context.Context, profileURL string) (*normalize.Result, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("score error")
	}
	return &normalize.Result{
		Seller: model.SellerRecord{
			Name:       "Test Seller",
			ProfileURL: profileURL,
			PulseScore: 50,
		},
	}, nil
}

func TestBatchProcessor_ProcessURLs(t *testing.T) {
	scorer := &MockScorer{}
	processor := NewBatchProcessor(scorer, 2, 100, 10)

	urls := []string{
		"https://jiji.ng/shop/a",
		"https://jiji.ng/shop/b",
		"https://jumia.com.ng/seller/c",
	}

	results := processor.ProcessURLs(context.Background(), urls)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for _, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.URL, res.Error)
			continue
		}
		if res.Record == nil || res.Record.Seller.ProfileURL != res.URL {
			t.Errorf("result not keyed to its URL: %+v", res)
		}
	}
}

func TestBatchProcessor_ProcessURLs_Errors(t *testing.T) {
	scorer := &MockScorer{ShouldError: true}
	processor := NewBatchProcessor(scorer, 2, 100, 10)

	results := processor.ProcessURLs(context.Background(), []string{"https://jiji.ng/shop/x"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].GetError() == nil {
		t.Error("expected error result")
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockScorer{}, 2, 100, 10)
	results := processor.ProcessURLs(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadURLsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := `
https://jiji.ng/shop/a
# comment
https://jiji.ng/shop/b

https://jiji.ng/shop/a
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	urls, err := ReadURLsFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(urls) != 2 {
		t.Fatalf("expected 2 deduplicated URLs, got %d: %v", len(urls), urls)
	}
}

func TestReadURLsFromFile_Missing(t *testing.T) {
	if _, err := ReadURLsFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
