// Package report renders normalized seller records for one-shot CLI
// commands. The interactive TUI has its own views; this package covers
// text, Markdown, and JSON output.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
)

// JSON renders the record as indented JSON. A nil record renders as null.
func JSON(result *normalize.Result) (string, error) {
	if result == nil {
		return "null", nil
	}
	payload := struct {
		Seller  model.SellerRecord   `json:"seller"`
		Scoring *model.ScoringResult `json:"scoring,omitempty"`
	}{result.Seller, result.Scoring}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}

// Text renders a terminal-friendly report
func Text(result *normalize.Result) string {
	if result == nil {
		return "No seller data.\n"
	}
	s := result.Seller
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", s.Name)
	if s.Platform != "" || s.Location != "" {
		fmt.Fprintf(&sb, "%s\n", strings.TrimSpace(s.Platform+"  "+s.Location))
	}
	if s.ProfileURL != "" {
		fmt.Fprintf(&sb, "%s\n", s.ProfileURL)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Pulse Score:   %d/100 (%s confidence)\n", s.PulseScore, s.ConfidenceLevel)
	fmt.Fprintf(&sb, "Verification:  %s\n", s.VerificationStatus)
	if s.TotalReviews > 0 {
		fmt.Fprintf(&sb, "Rating:        %.1f across %d reviews\n", s.AvgRating, s.TotalReviews)
	}
	if s.AccountAgeMon > 0 {
		fmt.Fprintf(&sb, "Account age:   %d months\n", s.AccountAgeMon)
	}
	fmt.Fprintf(&sb, "Activity:      %d listings, %d endorsements, %d flags\n",
		s.ListingCount, s.EndorsementCount, s.FlagCount)
	if s.IsClaimed {
		sb.WriteString("Claimed:       yes\n")
	}

	if result.Scoring != nil {
		writeScoring(&sb, result.Scoring, "")
	}

	return sb.String()
}

// Markdown renders a Markdown report
func Markdown(result *normalize.Result) string {
	if result == nil {
		return "No seller data.\n"
	}
	s := result.Seller
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", s.Name)
	fmt.Fprintf(&sb, "- **Pulse Score**: %d/100 (%s confidence)\n", s.PulseScore, s.ConfidenceLevel)
	fmt.Fprintf(&sb, "- **Verification**: %s\n", s.VerificationStatus)
	if s.Platform != "" {
		fmt.Fprintf(&sb, "- **Platform**: %s\n", s.Platform)
	}
	if s.ProfileURL != "" {
		fmt.Fprintf(&sb, "- **Profile**: %s\n", s.ProfileURL)
	}
	fmt.Fprintf(&sb, "- **Activity**: %d listings, %d endorsements, %d flags\n",
		s.ListingCount, s.EndorsementCount, s.FlagCount)

	if result.Scoring != nil {
		writeScoring(&sb, result.Scoring, "#")
	}

	return sb.String()
}

// writeScoring appends the trust breakdown. A "#" prefix switches headings
// to Markdown.
func writeScoring(sb *strings.Builder, scoring *model.ScoringResult, md string) {
	if len(scoring.TrustIndicators) > 0 {
		if md != "" {
			sb.WriteString("\n## Trust Indicators\n\n")
		} else {
			sb.WriteString("\nTrust Indicators\n")
		}
		for _, factor := range sortedKeys(scoring.TrustIndicators) {
			fmt.Fprintf(sb, "  %-24s %s\n", factor, scoring.TrustIndicators[factor])
		}
	}

	if len(scoring.Recommendations) > 0 {
		if md != "" {
			sb.WriteString("\n## Recommendations\n\n")
		} else {
			sb.WriteString("\nRecommendations\n")
		}
		for _, rec := range scoring.Recommendations {
			fmt.Fprintf(sb, "  %s %s\n", marker(rec.Type), rec.Message)
			if rec.Action != "" {
				fmt.Fprintf(sb, "      action: %s\n", rec.Action)
			}
		}
	}
}

func marker(t model.RecommendationType) string {
	switch t {
	case model.RecommendationPositive:
		return "[+]"
	case model.RecommendationNegative:
		return "[-]"
	default:
		return "[!]"
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
