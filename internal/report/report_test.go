package report

import (
	"strings"
	"testing"

	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
)

func sampleResult() *normalize.Result {
	return &normalize.Result{
		Seller: model.SellerRecord{
			ID:                 "s1",
			Name:               "X Shop",
			Platform:           "jiji",
			ProfileURL:         "https://jiji.ng/shop/x",
			PulseScore:         72,
			ConfidenceLevel:    model.ConfidenceMedium,
			VerificationStatus: model.VerificationBase,
			ListingCount:       12,
		},
		Scoring: &model.ScoringResult{
			PulseScore:      72,
			ConfidenceLevel: model.ConfidenceMedium,
			TrustIndicators: map[string]string{"reviews": "82%"},
			Recommendations: []model.Recommendation{
				{Type: model.RecommendationWarning, Message: "Few recent listings", Action: "list more items"},
				{Type: model.RecommendationPositive, Message: "Strong review history"},
			},
		},
	}
}

func TestText(t *testing.T) {
	out := Text(sampleResult())

	for _, want := range []string{
		"X Shop",
		"72/100",
		"medium confidence",
		"verified",
		"reviews",
		"[!] Few recent listings",
		"[+] Strong review history",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleResult())

	if !strings.HasPrefix(out, "# X Shop") {
		t.Errorf("markdown should start with a title heading:\n%s", out)
	}
	if !strings.Contains(out, "## Recommendations") {
		t.Errorf("markdown missing recommendations section:\n%s", out)
	}
}

func TestRenderNilRecord(t *testing.T) {
	// Empty or scalar 200 responses normalize to no record at all; the
	// renderers must degrade instead of dereferencing
	if out := Text(nil); out == "" {
		t.Error("Text(nil) should render a notice, not nothing")
	}
	if out := Markdown(nil); out == "" {
		t.Error("Markdown(nil) should render a notice, not nothing")
	}
	out, err := JSON(nil)
	if err != nil {
		t.Fatalf("JSON(nil) errored: %v", err)
	}
	if out != "null" {
		t.Errorf("JSON(nil) = %q, want null", out)
	}
}

func TestJSON(t *testing.T) {
	out, err := JSON(sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"pulse_score": 72`) {
		t.Errorf("json report missing score:\n%s", out)
	}
}
