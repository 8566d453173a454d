package cli

import (
	"bufio"
	"fmt"
	"strings"

	"student-manager/auth"
	"student-manager/config"
	"student-manager/models"

	"github.com/spf13/cobra"
)

// NewTokenCommand prints a bearer token for the configured operator without
// going through /api/auth/login.
func NewTokenCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print an API token for the configured operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			token, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry).
				GenerateToken(models.Operator{Email: cfg.OperatorEmail, Role: models.RoleOperator})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

// NewHashPasswordCommand reads a password from stdin and prints the bcrypt
// hash to put in OPERATOR_PASSWORD_HASH.
func NewHashPasswordCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a password read from stdin for OPERATOR_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				return fmt.Errorf("empty password")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
