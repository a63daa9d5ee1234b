package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/devmatch/internal/ingestion"
	"github.com/jonathan/devmatch/internal/schemas"
	schemafiles "github.com/jonathan/devmatch/schemas"
)

var schemaByKind = map[string]string{
	"profile": schemafiles.DeveloperProfile,
	"job":     schemafiles.JobPosting,
	"jobs":    schemafiles.JobList,
}

func newValidateCmd() *cobra.Command {
	var kind, file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a document against its schema",
		Long:  "Checks a developer profile, job posting or job list (JSON or YAML) against the embedded JSON Schema.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schemaName, ok := schemaByKind[kind]
			if !ok {
				return fmt.Errorf("unknown --kind %q (want profile, job or jobs)", kind)
			}

			out := cmd.OutOrStdout()
			if _, err := ingestion.LoadValidated(file, schemaName); err != nil {
				var validationErr *schemas.ValidationError
				if errors.As(err, &validationErr) {
					_, _ = fmt.Fprintln(out, "Validation failed:")
					for _, fe := range validationErr.Errors {
						_, _ = fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
					}
					return fmt.Errorf("%s does not match %s", file, schemaName)
				}
				return err
			}
			_, _ = fmt.Fprintf(out, "Validation passed: %s\n", file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Document kind: profile, job or jobs (required)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the document (required)")
	markRequired(cmd, "kind", "file")
	return cmd
}
