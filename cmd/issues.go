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

var fetchIssuesCmd = &cobra.Command{
	Use:   "fetch-issues",
	Short: "Fetch issue metadata and save it to CSV",
	Long: `Fetches issues from the given repository, excluding pull requests,
normalizes timestamps to ISO-8601 and derives how many whole days each
closed issue stayed open, then writes the result to a CSV file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := newLogger(verbose)

		repoID, _ := cmd.Flags().GetString("repo")
		state, _ := cmd.Flags().GetString("state")
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

		records, err := miner.FetchIssues(cmd.Context(), repoID, state, max)
		if err != nil {
			return err
		}

		table := output.NewTable(domain.IssueHeader)
		for _, record := range records {
			table.Append(record.Row())
		}
		if err := output.WriteFile(outPath, table); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d issues to %s\n", table.Count(), outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchIssuesCmd)
	fetchIssuesCmd.Flags().String("repo", "", "Repository in owner/name format (required)")
	fetchIssuesCmd.Flags().String("state", "all", "Issue state filter: all, open or closed")
	fetchIssuesCmd.Flags().Int("max", -1, "Maximum number of rows to fetch (default: all)")
	fetchIssuesCmd.Flags().String("out", "", "Path to the output CSV file (required)")
	fetchIssuesCmd.MarkFlagRequired("repo")
	fetchIssuesCmd.MarkFlagRequired("out")
}
