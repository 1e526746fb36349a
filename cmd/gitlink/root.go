package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupLink   = "link"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitlink",
	Short: "Open, copy or print the provider link of a file in a git checkout",
	Long: `gitlink turns a file in a local git checkout, optionally with a line or
a selection, into its web URL on GitHub, GitLab, Bitbucket, Gitea,
Azure DevOps or a configured custom host.

Editors pass the active file and selection with --file, --line and --end-line.
On the command line use path, path:12 or path:12-20.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed now, replace the default logger
		logger := log.New(os.Stderr, verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, false, false)
	ctx = log.WithLogger(ctx, logger)

	// Load config, an invalid file falls back to defaults
	loadedCfg, err := config.Load()
	if err != nil {
		logger.Warnf("%v", err)
	}
	ctx = config.WithResolver(ctx, config.NewResolver(&loadedCfg))

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Warnf("%v", err)
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show resolution details and external commands")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupLink, Title: "Link Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Link commands
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newURLCmd())
	rootCmd.AddCommand(newPRCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
