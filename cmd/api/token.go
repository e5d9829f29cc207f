package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-insights/internal/config"
	"github.com/comitanigiacomo/kanso-insights/internal/core/services"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token",
	Long:  `Print a signed bearer token for the API, using auth.secret from the configuration.`,
	RunE:  runToken,
}

var subject string

func init() {
	tokenCmd.Flags().StringVarP(&subject, "subject", "s", "cli", "Client the token is issued to")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Auth.Secret == "" {
		return errors.New("auth.secret is not set, the API runs without authentication")
	}

	tokens := services.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	token, err := tokens.GenerateToken(subject)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
