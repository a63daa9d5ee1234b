package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/devmatch/internal/config"
	"github.com/jonathan/devmatch/internal/server"
)

func newTokenCmd() *cobra.Command {
	var developer string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for a developer (local testing)",
		Long:  "Signs a JWT with JWT_SECRET for the given developer so the API can be called locally.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			developerID, err := uuid.Parse(developer)
			if err != nil {
				return fmt.Errorf("invalid --developer: %w", err)
			}
			jwtConfig, err := config.NewJWTConfig()
			if err != nil {
				return err
			}
			token, err := server.NewJWTService(jwtConfig).GenerateToken(developerID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&developer, "developer", "", "Developer UUID (required)")
	markRequired(cmd, "developer")
	return cmd
}
