package cli

import (
	"testing"

	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
)

func TestRenderResult_NilRecord(t *testing.T) {
	// A 200 response that decodes to a scalar or an empty body yields no
	// record; rendering it must not panic in any format
	for _, format := range []string{"text", "md", "json"} {
		if err := renderResult(nil, format); err != nil {
			t.Errorf("renderResult(nil, %q) = %v, want nil", format, err)
		}
	}
}

func TestRenderResults_Empty(t *testing.T) {
	if err := renderResults(nil, "text"); err != nil {
		t.Errorf("renderResults(nil) = %v, want nil", err)
	}
	if err := renderResults([]normalize.Result{}, "json"); err != nil {
		t.Errorf("renderResults(empty, json) = %v, want nil", err)
	}
}

func TestResolveFormat(t *testing.T) {
	if got := resolveFormat(true, "md"); got != "json" {
		t.Errorf("--json must win, got %q", got)
	}
	if got := resolveFormat(false, "md"); got != "md" {
		t.Errorf("configured format should apply, got %q", got)
	}
	if got := resolveFormat(false, ""); got != "text" {
		t.Errorf("default format should be text, got %q", got)
	}
}

func TestReportFilename(t *testing.T) {
	rec := model.SellerRecord{ID: "s1", Platform: "jiji"}
	if got := reportFilename(rec.Key(), "https://jiji.ng/shop/x"); got != "jiji-s1.json" {
		t.Errorf("filename = %q, want jiji-s1.json", got)
	}

	// Unidentified records fall back to a URL hash, never an empty name
	got := reportFilename(":", "https://jiji.ng/shop/x")
	if got == ".json" || got == ":.json" {
		t.Errorf("fallback filename unusable: %q", got)
	}
}
