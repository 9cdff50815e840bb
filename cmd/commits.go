// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ucp4496/data-collection-pipeline/internal/config"
	"github.com/ucp4496/data-collection-pipeline/internal/domain"
	"github.com/ucp4496/data-collection-pipeline/internal/gateway"
	"github.com/ucp4496/data-collection-pipeline/internal/output"
	"github.com/ucp4496/data-collection-pipeline/internal/usecase"
)

var fetchCommitsCmd = &cobra.Command{
	Use:   "fetch-commits",
	Short: "Fetch commit metadata and save it to CSV",
	Long: `Fetches commits from the given repository, newest first, normalizes each
to one row (sha, author, email, date, first message line) and writes the
result to a CSV file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := newLogger(verbose)

		repoID, _ := cmd.Flags().GetString("repo")
		outPath, _ := cmd.Flags().GetString("out")
		max, err := maxFlag(cmd)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		source, err := gateway.NewGitHubGateway(cfg.GithubToken, cfg.PageSize, logger)
		if err != nil {
			return err
		}
		miner := usecase.NewMiner(source, logger)

		records, err := miner.FetchCommits(cmd.Context(), repoID, max)
		if err != nil {
			return err
		}

		table := output.NewTable(domain.CommitHeader)
		for _, record := range records {
			table.Append(record.Row())
		}
		if err := output.WriteFile(outPath, table); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d commits to %s\n", table.Count(), outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCommitsCmd)
	fetchCommitsCmd.Flags().String("repo", "", "Repository in owner/name format (required)")
	fetchCommitsCmd.Flags().Int("max", -1, "Maximum number of rows to fetch (default: all)")
	fetchCommitsCmd.Flags().String("out", "", "Path to the output CSV file (required)")
	fetchCommitsCmd.MarkFlagRequired("repo")
	fetchCommitsCmd.MarkFlagRequired("out")
}

// maxFlag reads the --max flag. Left at its default it means "no limit";
// an explicitly negative value is a usage error.
func maxFlag(cmd *cobra.Command) (int, error) {
	max, _ := cmd.Flags().GetInt("max")
	if cmd.Flags().Changed("max") && max < 0 {
		return 0, fmt.Errorf("--max must be a non-negative integer, got %d", max)
	}
	if !cmd.Flags().Changed("max") {
		return -1, nil
	}
	return max, nil
}
