package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frontlint/frontlint/internal/lint"
	"github.com/frontlint/frontlint/pkg/config"
	"github.com/frontlint/frontlint/pkg/exitcode"
	"github.com/frontlint/frontlint/pkg/logger"
)

var (
	checkFix        bool
	checkConfigPath string
)

// runCheck is the default action: validate every discovered document and
// book, print the report, and exit non-zero on findings unless --fix was
// given (fix mode always exits zero).
func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	rules, err := config.Load(target, checkConfigPath)
	if err != nil {
		// Config load errors are reported once and never fatal; the run
		// proceeds on defaults.
		logger.Warn("override config ignored", logger.Err(err))
	}

	engine := lint.NewEngine(target, rules, checkFix)
	report, err := engine.Run()
	if err != nil {
		logger.Error("run aborted", logger.Err(err))
		os.Exit(exitcode.FileSystemError)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	formatter := lint.NewFormatter(!noColor)
	fmt.Fprint(cmd.OutOrStdout(), formatter.Format(report))

	if report.Erroring() && !checkFix {
		os.Exit(exitcode.ValidationError)
	}
	return nil
}
