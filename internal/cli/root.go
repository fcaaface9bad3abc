// Package cli wires the pulse commands: one-shot lookups and reports,
// account flows, batch scoring, and the interactive browser.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sellerpulse/pulse/internal/api"
	"github.com/sellerpulse/pulse/internal/logging"
	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/session"
)

var (
	cfgFile string
	verbose bool
	baseURL string
	debug   bool
	noCache bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "SellerPulse - marketplace seller trust scores from your terminal",
	Long: `SellerPulse checks marketplace sellers before you buy.

Look up a seller by profile URL or name and get their pulse score
(0-100), verification status, and a trust breakdown with concrete
recommendations. Scores are computed by the SellerPulse backend;
this client fetches, normalizes, and renders them.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pulse v0.3.2")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.sellerpulse/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL (default: "+model.DefaultBaseURL+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log under ~/.sellerpulse/logs")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the response cache (force fresh fetches)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("logging.debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.sellerpulse")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match SELLERPULSE_*
	viper.SetEnvPrefix("SELLERPULSE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves defaults, config file, env, and flags into one Config
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("api.base_url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := viper.GetDuration("api.timeout"); v > 0 {
		cfg.API.Timeout = v
	}
	if v := viper.GetString("api.user_agent"); v != "" {
		cfg.API.UserAgent = v
	}
	if v := viper.GetInt64("api.max_body_bytes"); v > 0 {
		cfg.API.MaxBodyBytes = v
	}
	if viper.IsSet("api.insecure_tls") {
		cfg.API.InsecureTLS = viper.GetBool("api.insecure_tls")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}
	if v := viper.GetFloat64("rate_limiting.requests_per_second"); v > 0 {
		cfg.RateLimiting.RequestsPerSecond = v
	}
	if v := viper.GetInt("rate_limiting.burst_size"); v > 0 {
		cfg.RateLimiting.BurstSize = v
	}
	if v := viper.GetInt("concurrency.workers"); v > 0 {
		cfg.Concurrency.Workers = v
	}
	if v := viper.GetString("session.path"); v != "" {
		cfg.Session.Path = v
	}
	if viper.GetBool("logging.debug") {
		cfg.Logging.Debug = true
	}
	if v := viper.GetString("output.format"); v != "" {
		cfg.Output.Format = v
	}
	cfg.Output.Verbose = verbose

	return cfg
}

// newClient builds the gateway client plus its session store. The
// session-expired hook prints a notice so one-shot commands explain why
// they suddenly became anonymous.
func newClient() (*api.Client, *session.Store, *model.Config) {
	cfg := loadConfig()
	store := session.NewStore(cfg.Session.Path)
	logger := logging.New(cfg.Logging.Dir, cfg.Logging.Debug)

	client := api.NewClient(cfg, store, logger)
	client.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "Session expired: signed out. Run 'pulse login' to sign in again.")
	})
	return client, store, cfg
}

// commandTimeout bounds one-shot commands. Individual requests are
// bounded separately by the HTTP client timeout.
const commandTimeout = 30 * time.Second
