// Package flow runs the seven-step interactive smoke test against the
// authentication API: signup, email verification, login, protected-route
// access, token refresh, and the two password-reset steps. Steps run
// strictly in order and the first error aborts the run.
package flow

import (
	"context"
	"fmt"
	"io"

	"authprobe/pkg/client"
	"authprobe/pkg/output"
	"authprobe/pkg/prompt"
)

const (
	accessTokenMissingMsg  = "Access token not available. Cannot access the protected route."
	refreshTokenMissingMsg = "Refresh token not available. Cannot refresh the token."
)

type Runner struct {
	Client   *client.Client
	Prompter prompt.Prompter
	Writer   io.Writer
}

func (r *Runner) banner(title string) {
	_, _ = fmt.Fprintf(r.Writer, "\n--- %s ---\n", title)
}

func (r *Runner) print(label string, body any) error {
	return output.WriteResponse(r.Writer, label, body)
}

// Run walks the operator through all seven steps. Tokens extracted from the
// login response live only for the remainder of the run.
func (r *Runner) Run(ctx context.Context) error {
	auth := r.Client.Auth()

	r.banner("Sign Up")
	username, err := r.Prompter.Input("Enter username: ")
	if err != nil {
		return err
	}
	email, err := r.Prompter.Input("Enter email: ")
	if err != nil {
		return err
	}
	password, err := r.Prompter.Password("Enter password: ")
	if err != nil {
		return err
	}
	signupResp, err := auth.Signup(ctx, client.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	if err := r.print("Sign Up", signupResp); err != nil {
		return err
	}

	r.banner("Verify Email")
	verifyToken, err := r.Prompter.Input("Enter the verification token (from MailHog): ")
	if err != nil {
		return err
	}
	verifyResp, err := auth.VerifyEmail(ctx, verifyToken)
	if err != nil {
		return err
	}
	if err := r.print("Verify Email", verifyResp); err != nil {
		return err
	}

	r.banner("Login")
	loginUsername, err := r.Prompter.Input("Enter username for login: ")
	if err != nil {
		return err
	}
	loginPassword, err := r.Prompter.Password("Enter password for login: ")
	if err != nil {
		return err
	}
	login, err := auth.Login(ctx, client.LoginRequest{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}
	if err := r.print("Login", login.Body); err != nil {
		return err
	}

	r.banner("Access Protected Route")
	if login.AccessToken != "" {
		profileResp, err := r.Client.Profile().Get(ctx, login.AccessToken)
		if err != nil {
			return err
		}
		if err := r.print("Profile", profileResp); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(r.Writer, accessTokenMissingMsg)
	}

	r.banner("Refresh Token")
	if login.RefreshToken != "" {
		refreshResp, err := auth.Refresh(ctx, login.RefreshToken)
		if err != nil {
			return err
		}
		if err := r.print("Refresh Token", refreshResp); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(r.Writer, refreshTokenMissingMsg)
	}

	r.banner("Forgot Password")
	forgotEmail, err := r.Prompter.Input("Enter the email for password reset: ")
	if err != nil {
		return err
	}
	forgotResp, err := auth.ForgotPassword(ctx, forgotEmail)
	if err != nil {
		return err
	}
	if err := r.print("Forgot Password", forgotResp); err != nil {
		return err
	}

	r.banner("Reset Password")
	resetToken, err := r.Prompter.Input("Enter the reset token (from email): ")
	if err != nil {
		return err
	}
	newPassword, err := r.Prompter.Password("Enter the new password: ")
	if err != nil {
		return err
	}
	resetResp, err := auth.ResetPassword(ctx, resetToken, newPassword)
	if err != nil {
		return err
	}
	return r.print("Reset Password", resetResp)
}
