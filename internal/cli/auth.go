package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
	authName     string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your SellerPulse account",
	Long: `Login authenticates against the backend and stores the session
under ~/.sellerpulse. Subsequent commands send it automatically.

Example:
  pulse login --email you@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := credentials()
		if err != nil {
			return err
		}

		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		user, err := client.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a SellerPulse account",
	Long: `Register creates an account. The backend emails a verification
code; confirm it with 'pulse verify' to start your session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if authName == "" {
			return fmt.Errorf("--name is required")
		}
		email, password, err := credentials()
		if err != nil {
			return err
		}

		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if err := client.Register(ctx, authName, email, password); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Printf("Account created. Check %s for a verification code, then run:\n", email)
		fmt.Printf("  pulse verify --email %s <code>\n", email)
		return nil
	},
}

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <code>",
	Short: "Confirm the emailed verification code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if authEmail == "" {
			return fmt.Errorf("--email is required")
		}

		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		user, err := client.Verify(ctx, authEmail, args[0])
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		if user != nil {
			fmt.Printf("Verified. Signed in as %s\n", user.Email)
		} else {
			fmt.Println("Verified.")
		}
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _ := newClient()
		store.Logout()
		fmt.Println("Signed out.")
		return nil
	},
}

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _ := newClient()
		sess := store.Current()
		if !sess.IsAuthenticated || sess.User == nil {
			fmt.Println("Not signed in.")
			return nil
		}

		fmt.Printf("Name:       %s\n", sess.User.Name)
		fmt.Printf("Email:      %s\n", sess.User.Email)
		fmt.Printf("Role:       %s\n", sess.User.Role)
		fmt.Printf("View mode:  %s\n", sess.ViewMode)

		// Show token expiry when the claim is readable. The token is not
		// validated locally; the backend is the authority.
		if claims, err := store.TokenClaims(); err == nil {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				fmt.Printf("Expires:    %s\n", exp.Time.Format(time.RFC3339))
			}
		}
		return nil
	},
}

// forgotCmd represents the forgot-password command
var forgotCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset email",
	RunE: func(cmd *cobra.Command, args []string) error {
		if authEmail == "" {
			return fmt.Errorf("--email is required")
		}

		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if err := client.ForgotPassword(ctx, authEmail); err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		fmt.Printf("If an account exists for %s, a reset link is on its way.\n", authEmail)
		return nil
	},
}

// resetCmd represents the reset-password command
var resetCmd = &cobra.Command{
	Use:   "reset-password <token>",
	Short: "Complete a password reset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if authPassword == "" {
			return fmt.Errorf("--password is required")
		}

		client, _, _ := newClient()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if err := client.ResetPassword(ctx, args[0], authPassword); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		fmt.Println("Password updated. Sign in with 'pulse login'.")
		return nil
	},
}

// modeCmd represents the mode command
var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Toggle between buyer and seller view",
	Long: `Mode switches the stored view between buyer and seller. Only
accounts with the seller role can enter seller view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _ := newClient()
		fmt.Printf("View mode: %s\n", store.ToggleViewMode())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(forgotCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(modeCmd)

	for _, cmd := range []*cobra.Command{loginCmd, registerCmd, verifyCmd, forgotCmd} {
		cmd.Flags().StringVar(&authEmail, "email", "", "account email")
	}
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd, resetCmd} {
		cmd.Flags().StringVar(&authPassword, "password", "", "account password (prompted when omitted)")
	}
	registerCmd.Flags().StringVar(&authName, "name", "", "display name")
}

// credentials resolves email and password from flags, prompting on
// stdin for whichever is missing
func credentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	email := authEmail
	if email == "" {
		fmt.Fprint(os.Stderr, "Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	password := authPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if email == "" || password == "" {
		return "", "", fmt.Errorf("email and password are required")
	}
	return email, password, nil
}
