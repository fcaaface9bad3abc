package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// becomeSellerCmd represents the become-seller command
var becomeSellerCmd = &cobra.Command{
	Use:   "become-seller",
	Short: "Upgrade your account to the seller role",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if err := client.BecomeSeller(ctx); err != nil {
			return fmt.Errorf("upgrade failed: %w", err)
		}
		fmt.Println("You now have the seller role. Claim your profile with 'pulse claim'.")
		return nil
	},
}

// claimCmd represents the claim command
var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Get a code to prove you own a marketplace profile",
	Long: `Claim generates a verification code. Put the code in your
marketplace profile bio, then run 'pulse verify-profile <url>' so the
backend can confirm it and link the profile to your account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		code, err := client.GenerateVerificationCode(ctx)
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}

		fmt.Printf("Verification code: %s\n\n", code)
		fmt.Println("Add this code to your marketplace profile bio, then run:")
		fmt.Println("  pulse verify-profile <profile-url>")
		return nil
	},
}

// verifyProfileCmd represents the verify-profile command
var verifyProfileCmd = &cobra.Command{
	Use:   "verify-profile <profile-url>",
	Short: "Confirm the claim code is visible on your profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, cfg := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		result, err := client.VerifyProfile(ctx, args[0])
		if err != nil {
			return fmt.Errorf("profile verification failed: %w", err)
		}

		fmt.Println("Profile verified and linked to your account.")
		return renderResult(result, resolveFormat(false, cfg.Output.Format))
	},
}

// myProfileCmd represents the my-profile command
var myProfileCmd = &cobra.Command{
	Use:   "my-profile",
	Short: "Show the seller profile linked to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, cfg := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		result, err := client.MyProfile(ctx)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		return renderResult(result, resolveFormat(lookupJSON, cfg.Output.Format))
	},
}

// analyticsCmd represents the analytics command
var analyticsCmd = &cobra.Command{
	Use:   "analytics <seller-id>",
	Short: "Show activity analytics for a seller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		analytics, err := client.SellerAnalytics(ctx, args[0])
		if err != nil {
			return fmt.Errorf("fetch analytics: %w", err)
		}
		return printObject(analytics)
	},
}

func init() {
	rootCmd.AddCommand(becomeSellerCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(verifyProfileCmd)
	rootCmd.AddCommand(myProfileCmd)
	rootCmd.AddCommand(analyticsCmd)

	myProfileCmd.Flags().BoolVar(&lookupJSON, "json", false, "output JSON instead of text")
}
