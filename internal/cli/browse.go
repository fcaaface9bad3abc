package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sellerpulse/pulse/internal/api"
	"github.com/sellerpulse/pulse/internal/normalize"
	"github.com/sellerpulse/pulse/internal/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive seller browser",
	Long: `Browse starts the full-screen terminal interface: search sellers,
page through rankings, and drill into trust breakdowns. An expired
session drops you on the sign-in view instead of failing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, _ := newClient()
		// The TUI learns about expiry from the error itself
		client.OnSessionExpired(func() {})

		app := ui.NewApp(ui.AppConfig{
			Search: func(ctx context.Context, query string) ([]normalize.Result, error) {
				return client.Search(ctx, query, "", api.ListOptions{Limit: 20})
			},
			ListTop: func(ctx context.Context, limit int) ([]normalize.Result, error) {
				return client.TopSellers(ctx, api.ListOptions{Limit: limit})
			},
			Login: client.Login,
			User:  store.Current().User,
		})

		if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("run browser: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
