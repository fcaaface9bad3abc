package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sellerpulse/pulse/internal/api"
)

var (
	listJSON     bool
	listPlatform string
	listLimit    int
	listOffset   int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search scored sellers by name",
	Long: `Search finds sellers whose names match the query, across all
platforms or restricted to one.

Example:
  pulse search "x electronics"
  pulse search phones --platform jiji --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, cfg := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		name := args[0]
		for _, arg := range args[1:] {
			name += " " + arg
		}

		results, err := client.Search(ctx, name, listPlatform, listOpts())
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		return renderResults(results, resolveFormat(listJSON, cfg.Output.Format))
	},
}

// sellerCmd represents the seller command
var sellerCmd = &cobra.Command{
	Use:   "seller <id>",
	Short: "Show one seller with the full trust breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, cfg := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		result, err := client.SellerByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("fetch seller: %w", err)
		}
		return renderResult(result, resolveFormat(listJSON, cfg.Output.Format))
	},
}

// topCmd represents the top command
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the highest-scored sellers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, cfg := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		results, err := client.TopSellers(ctx, listOpts())
		if err != nil {
			return fmt.Errorf("fetch top sellers: %w", err)
		}
		return renderResults(results, resolveFormat(listJSON, cfg.Output.Format))
	},
}

// sellersCmd represents the sellers command
var sellersCmd = &cobra.Command{
	Use:   "sellers",
	Short: "List all known sellers, paged",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, cfg := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		results, err := client.AllSellers(ctx, listOpts())
		if err != nil {
			return fmt.Errorf("fetch sellers: %w", err)
		}
		return renderResults(results, resolveFormat(listJSON, cfg.Output.Format))
	},
}

// threatsCmd represents the threats command
var threatsCmd = &cobra.Command{
	Use:   "threats",
	Short: "List the lowest-trust sellers to avoid",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, cfg := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		results, err := client.TopThreats(ctx, listOpts())
		if err != nil {
			return fmt.Errorf("fetch threats: %w", err)
		}
		return renderResults(results, resolveFormat(listJSON, cfg.Output.Format))
	},
}

func listOpts() api.ListOptions {
	return api.ListOptions{Limit: listLimit, Offset: listOffset}
}

func init() {
	for _, cmd := range []*cobra.Command{searchCmd, sellerCmd, topCmd, sellersCmd, threatsCmd} {
		cmd.Flags().BoolVar(&listJSON, "json", false, "output JSON instead of text")
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{searchCmd, topCmd, sellersCmd, threatsCmd} {
		cmd.Flags().IntVar(&listLimit, "limit", 20, "maximum results to return")
		cmd.Flags().IntVar(&listOffset, "offset", 0, "results to skip")
	}
	searchCmd.Flags().StringVar(&listPlatform, "platform", "", "restrict to one marketplace (e.g. jiji)")
}
