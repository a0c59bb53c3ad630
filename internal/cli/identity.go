package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <username-or-email>",
		Short: "Resolve a username or email to the email used for sign-in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"identifier": args[0]}
			var result ResolveResult

			if err := client.Post(cmd.Context(), "/api/v1/identity/resolve", req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	var identifier, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a username or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if identifier == "" || pass == "" {
				return fmt.Errorf("--identifier and --pass are required")
			}

			req := map[string]string{
				"identifier": identifier,
				"password":   pass,
			}
			var result AuthResult

			if err := client.Post(cmd.Context(), "/api/v1/auth/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&identifier, "identifier", "u", "", "Username or email (required)")
	cmd.Flags().StringVarP(&pass, "pass", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("identifier")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Token == "" {
				return fmt.Errorf("not signed in")
			}

			if err := client.Post(cmd.Context(), "/api/v1/auth/logout", nil, nil); err != nil {
				return err
			}
			if err := cfg.ClearToken(); err != nil {
				return fmt.Errorf("failed to remove token: %w", err)
			}

			newOutput(cmd).PrintMessage("Signed out")
			return nil
		},
	}
}
