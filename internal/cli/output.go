package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sellerpulse/pulse/internal/normalize"
	"github.com/sellerpulse/pulse/internal/report"
)

// renderResult prints one normalized record in the configured format.
// A nil record means the backend answered with no seller; that renders as
// a notice, not a crash.
func renderResult(result *normalize.Result, format string) error {
	if result == nil {
		fmt.Fprintln(os.Stderr, "No seller found.")
		return nil
	}
	switch format {
	case "json":
		out, err := report.JSON(result)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "md":
		fmt.Println(report.Markdown(result))
	default:
		fmt.Println(report.Text(result))
	}
	return nil
}

// renderResults prints a list of records. Text output is one line per
// seller; JSON output is the full normalized array.
func renderResults(results []normalize.Result, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No sellers found.")
		return nil
	}

	for _, r := range results {
		s := r.Seller
		badge := ""
		switch s.VerificationStatus {
		case "id-verified":
			badge = " [id-verified]"
		case "verified":
			badge = " [verified]"
		}
		fmt.Printf("%3d/100  %-30s %-10s%s\n", s.PulseScore, s.Name, s.Platform, badge)
	}
	return nil
}

// resolveFormat picks the output format from the --json flag and config
func resolveFormat(asJSON bool, configured string) string {
	if asJSON {
		return "json"
	}
	if configured != "" {
		return configured
	}
	return "text"
}
