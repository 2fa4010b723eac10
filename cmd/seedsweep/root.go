package seedsweep

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagNoColor bool
	flagVerbose bool
	flagNoCache bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the seedsweep CLI.
var rootCmd = &cobra.Command{
	Use:           "seedsweep",
	Short:         "Find exposed wallet credentials on disk",
	Long:          "Seedsweep walks your drives and folders looking for mnemonic seed phrases and private keys left on disk in recoverable form, and reports every finding to a local log for remediation.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the seedsweep CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log per-file skips and errors")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the incremental scan cache")
}

// newLogger builds the diagnostic logger shared by all commands.
// Findings go to their own sink; this channel carries warnings, skips,
// and per-file errors.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
