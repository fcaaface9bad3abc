package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var lookupJSON bool

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <profile-url>",
	Short: "Look up a seller's trust score by marketplace profile URL",
	Long: `Lookup fetches the trust score for an already-known marketplace
profile. If the seller has never been scored, use 'pulse score' to
submit the profile for scoring first.

Example:
  pulse lookup https://jiji.ng/shop/x-electronics
  pulse lookup https://jiji.ng/shop/x-electronics --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score <profile-url>",
	Short: "Submit a marketplace profile for scoring",
	Long: `Score asks the backend to extract the profile, compute a pulse
score, and return the full trust breakdown. Unlike lookup, this always
triggers a fresh scoring run.

Example:
  pulse score https://jiji.ng/shop/x-electronics`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <profile-url>",
	Short: "Extract seller data from a profile without scoring it",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(extractCmd)

	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output JSON instead of text")
	scoreCmd.Flags().BoolVar(&lookupJSON, "json", false, "output JSON instead of text")
	extractCmd.Flags().BoolVar(&lookupJSON, "json", false, "output JSON instead of text")
}

func runLookup(cmd *cobra.Command, args []string) error {
	client, _, cfg := newClient()
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Looking up: %s\n", args[0])
	}

	result, err := client.Lookup(ctx, args[0])
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	return renderResult(result, resolveFormat(lookupJSON, cfg.Output.Format))
}

func runScore(cmd *cobra.Command, args []string) error {
	client, _, cfg := newClient()
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scoring: %s\n", args[0])
	}

	result, err := client.ScoreProfileURL(ctx, args[0])
	if err != nil {
		return fmt.Errorf("score failed: %w", err)
	}
	return renderResult(result, resolveFormat(lookupJSON, cfg.Output.Format))
}

func runExtract(cmd *cobra.Command, args []string) error {
	client, _, cfg := newClient()
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	result, err := client.ExtractProfile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}
	return renderResult(result, resolveFormat(lookupJSON, cfg.Output.Format))
}
