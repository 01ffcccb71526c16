package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/frontlint/frontlint/pkg/buildinfo"
	"github.com/frontlint/frontlint/pkg/exitcode"
	"github.com/frontlint/frontlint/pkg/logger"
)

// newRootCommand creates a fresh root command instance.
// The factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frontlint [target]",
		Short: "Validate and normalize frontmatter in Markdown content trees",
		Long: `Frontlint validates the YAML frontmatter of articles and books in a content
repository: required keys per content type, canonical key ordering, article
slug format, and book manifest integrity. With --fix it rewrites files whose
only problem is key ordering.

Examples:
   frontlint              # validate the current directory
   frontlint content/     # validate a content tree
   frontlint --fix        # additionally reorder fixable frontmatter`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Check flags
	cmd.Flags().BoolVar(&checkFix, "fix", false, "Rewrite files whose only problem is key ordering")
	cmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to a JSON rule-set override file")

	// Wire Cobra's built-in --version
	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("frontlint {{.Version}}\n")

	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	logger.Initialize(logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "frontlint",
	})
}
