package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagReason     string
	endorseComment string
)

// flagCmd represents the flag command
var flagCmd = &cobra.Command{
	Use:   "flag <seller-id>",
	Short: "File a warning against a seller",
	Long: `Flag records negative feedback about a seller. Requires a signed-in
account; flags feed into the seller's pulse score.

Example:
  pulse flag jiji:12345 --reason "took payment, never shipped"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagReason == "" {
			return fmt.Errorf("--reason is required")
		}

		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if err := client.FlagSeller(ctx, args[0], flagReason); err != nil {
			return fmt.Errorf("flag failed: %w", err)
		}
		fmt.Println("Flag recorded.")
		return nil
	},
}

// endorseCmd represents the endorse command
var endorseCmd = &cobra.Command{
	Use:   "endorse <seller-id>",
	Short: "Endorse a seller you had a good experience with",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if err := client.EndorseSeller(ctx, args[0], endorseComment); err != nil {
			return fmt.Errorf("endorse failed: %w", err)
		}
		fmt.Println("Endorsement recorded.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flagCmd)
	rootCmd.AddCommand(endorseCmd)

	flagCmd.Flags().StringVar(&flagReason, "reason", "", "what went wrong")
	endorseCmd.Flags().StringVar(&endorseComment, "comment", "", "optional comment")
}
