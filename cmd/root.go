// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	minererrors "github.com/ucp4496/data-collection-pipeline/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "repo-miner",
	Short: "A CLI tool to fetch GitHub commit and issue metadata into CSV files.",
	Long: `repo-miner retrieves commit and issue metadata from a GitHub repository
and writes it to CSV files for downstream analysis. Each invocation performs
one fetch: commits via fetch-commits, issues via fetch-issues.

Authentication uses the GITHUB_TOKEN environment variable.`,
	SilenceUsage:  true, // Don't show usage on error
	SilenceErrors: true, // We'll handle error printing ourselves
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(minererrors.ExitCode(err))
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

// newLogger builds the command logger. By default all logs are discarded;
// with --verbose they go to standard error.
func newLogger(verbose bool) *log.Logger {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}
