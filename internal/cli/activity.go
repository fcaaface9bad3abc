package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// activityCmd represents the activity command
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent scoring and feedback activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		events, err := client.RecentActivity(ctx, listOpts())
		if err != nil {
			return fmt.Errorf("fetch activity: %w", err)
		}
		return printObjects(events)
	},
}

// myFeedbackCmd represents the my-feedback command
var myFeedbackCmd = &cobra.Command{
	Use:   "my-feedback",
	Short: "List flags and endorsements you have filed",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		items, err := client.MyFeedback(ctx, listOpts())
		if err != nil {
			return fmt.Errorf("fetch feedback: %w", err)
		}
		return printObjects(items)
	},
}

// myExtractionsCmd represents the my-extractions command
var myExtractionsCmd = &cobra.Command{
	Use:   "my-extractions",
	Short: "List profile extractions you have requested",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		items, err := client.MyExtractions(ctx, listOpts())
		if err != nil {
			return fmt.Errorf("fetch extractions: %w", err)
		}
		return printObjects(items)
	},
}

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List sellers you recently viewed",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		items, err := client.MyInteractions(ctx, listOpts())
		if err != nil {
			return fmt.Errorf("fetch history: %w", err)
		}
		return printObjects(items)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{activityCmd, myFeedbackCmd, myExtractionsCmd, historyCmd} {
		cmd.Flags().IntVar(&listLimit, "limit", 20, "maximum results to return")
		cmd.Flags().IntVar(&listOffset, "offset", 0, "results to skip")
		rootCmd.AddCommand(cmd)
	}
}

// printObject renders an untyped backend object as indented JSON
func printObject(obj map[string]any) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printObjects renders a list of untyped backend objects
func printObjects(items []map[string]any) error {
	if len(items) == 0 {
		fmt.Println("[]")
		return nil
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
