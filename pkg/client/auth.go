package client

import (
	"context"
	"net/http"
)

type AuthService struct {
	client *Client
}

func (c *Client) Auth() *AuthService {
	return &AuthService{client: c}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// LoginResult carries the decoded login body plus the token pair extracted
// from its top-level fields. Missing fields resolve to empty strings.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Body         map[string]any
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (map[string]any, error) {
	var resp map[string]any
	if err := s.client.do(ctx, http.MethodPost, "auth/signup", "", req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) (map[string]any, error) {
	var resp map[string]any
	if err := s.client.do(ctx, http.MethodPost, "auth/verify-email", "", VerifyEmailRequest{Token: token}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var resp map[string]any
	if err := s.client.do(ctx, http.MethodPost, "auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	result := &LoginResult{Body: resp}
	if v, ok := resp["accessToken"].(string); ok {
		result.AccessToken = v
	}
	if v, ok := resp["refreshToken"].(string); ok {
		result.RefreshToken = v
	}
	return result, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (map[string]any, error) {
	var resp map[string]any
	if err := s.client.do(ctx, http.MethodPost, "auth/refresh", "", RefreshRequest{RefreshToken: refreshToken}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (map[string]any, error) {
	var resp map[string]any
	if err := s.client.do(ctx, http.MethodPost, "auth/forgot-password", "", ForgotPasswordRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (map[string]any, error) {
	req := ResetPasswordRequest{Token: token, NewPassword: newPassword}
	var resp map[string]any
	if err := s.client.do(ctx, http.MethodPost, "auth/reset-password", "", req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
