package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"authprobe/pkg/client"
	"authprobe/pkg/output"
	"authprobe/pkg/prompt"
)

func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Run individual auth API steps",
	}
	cmd.AddCommand(
		newAuthSignupCommand(),
		newAuthVerifyEmailCommand(),
		newAuthLoginCommand(),
		newAuthRefreshCommand(),
		newAuthForgotPasswordCommand(),
		newAuthResetPasswordCommand(),
	)
	return cmd
}

// resolveInput returns the flag value when set, otherwise prompts for it.
// Non-interactive mode fails instead of prompting.
func resolveInput(rt *runtimeState, value, name string, secret bool) (string, error) {
	if value != "" {
		return value, nil
	}
	if rt.nonInteractive {
		return "", fmt.Errorf("--%s is required in non-interactive mode", name)
	}
	p := prompt.NewTerminal()
	label := fmt.Sprintf("Enter %s: ", name)
	if secret {
		return p.Password(label)
	}
	return p.Input(label)
}

func writeResult(rt *runtimeState, body any) error {
	return output.WriteObject(rt.Writer(), output.Format(rt.OutputFormat()), body)
}

func newAuthSignupCommand() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if username, err = resolveInput(rt, username, "username", false); err != nil {
				return err
			}
			if email, err = resolveInput(rt, email, "email", false); err != nil {
				return err
			}
			if password, err = resolveInput(rt, password, "password", true); err != nil {
				return err
			}
			apiClient, err := buildClient(rt)
			if err != nil {
				return err
			}
			resp, err := apiClient.Auth().Signup(context.Background(), client.SignupRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			return writeResult(rt, resp)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username to register")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	return cmd
}

func newAuthVerifyEmailCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Submit an email verification token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if token, err = resolveInput(rt, token, "token", false); err != nil {
				return err
			}
			apiClient, err := buildClient(rt)
			if err != nil {
				return err
			}
			resp, err := apiClient.Auth().VerifyEmail(context.Background(), token)
			if err != nil {
				return err
			}
			return writeResult(rt, resp)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Verification token from the signup email")
	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and print the token pair response",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if username, err = resolveInput(rt, username, "username", false); err != nil {
				return err
			}
			if password, err = resolveInput(rt, password, "password", true); err != nil {
				return err
			}
			apiClient, err := buildClient(rt)
			if err != nil {
				return err
			}
			result, err := apiClient.Auth().Login(context.Background(), client.LoginRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}
			return writeResult(rt, result.Body)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	return cmd
}

func newAuthRefreshCommand() *cobra.Command {
	var refreshToken string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a refresh token for a new access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if refreshToken, err = resolveInput(rt, refreshToken, "refresh-token", false); err != nil {
				return err
			}
			apiClient, err := buildClient(rt)
			if err != nil {
				return err
			}
			resp, err := apiClient.Auth().Refresh(context.Background(), refreshToken)
			if err != nil {
				return err
			}
			return writeResult(rt, resp)
		},
	}
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "Refresh token from a login response")
	return cmd
}

func newAuthForgotPasswordCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if email, err = resolveInput(rt, email, "email", false); err != nil {
				return err
			}
			apiClient, err := buildClient(rt)
			if err != nil {
				return err
			}
			resp, err := apiClient.Auth().ForgotPassword(context.Background(), email)
			if err != nil {
				return err
			}
			return writeResult(rt, resp)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	return cmd
}

func newAuthResetPasswordCommand() *cobra.Command {
	var token, newPassword string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password with a reset token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if token, err = resolveInput(rt, token, "token", false); err != nil {
				return err
			}
			if newPassword, err = resolveInput(rt, newPassword, "new-password", true); err != nil {
				return err
			}
			apiClient, err := buildClient(rt)
			if err != nil {
				return err
			}
			resp, err := apiClient.Auth().ResetPassword(context.Background(), token, newPassword)
			if err != nil {
				return err
			}
			return writeResult(rt, resp)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Reset token from the reset email")
	cmd.Flags().StringVar(&newPassword, "new-password", "", "New password (prompted when omitted)")
	return cmd
}
