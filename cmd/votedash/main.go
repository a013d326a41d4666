// Package main provides the votedash CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"votedash/internal/config"
	"votedash/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	themeName  string

	cfg    *config.Config
	logger = logging.Nop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "votedash",
	Short: "Live positive/negative vote counter",
	Long: `votedash is a terminal dashboard that counts positive and negative votes
and shows each side's share of the total.

Votes live only in memory and are gone when the dashboard exits.

Keys:
  p, +, up     vote positive
  n, -, down   vote negative
  r            reset both counters
  q, ctrl+c    quit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.Nop()
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if themeName != "" {
			loaded.Theme = themeName
			if err := loaded.Validate(); err != nil {
				return err
			}
		}
		if verbose {
			loaded.Logging.DebugMode = true
			loaded.Logging.Level = "debug"
		}
		cfg = loaded

		l, err := logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to the configured log file")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme: light, dark or auto")

	rootCmd.AddCommand(renderCmd)
}

// run executes the command tree and always releases the log file, including
// when a command fails.
func run(args []string) error {
	rootCmd.SetArgs(args)
	defer func() { _ = logger.Close() }()

	if err := rootCmd.Execute(); err != nil {
		logger.Category(logging.CategoryBoot).Error("command failed", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
