// Package main provides the devmatch command line: the job-card HTTP API and local scoring tools.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "devmatch",
		Short:         "Developer to job match scoring",
		Long:          "devmatch ranks open job postings for a developer by how well each job matches the developer's profile, and serves the ranked cards over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newScoreCmd(),
		newRankCmd(),
		newImportCmd(),
		newJobStatusCmd(),
		newTokenCmd(),
		newValidateCmd(),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
