package client

import (
	"context"
	"net/http"
)

type ProfileService struct {
	client *Client
}

func (c *Client) Profile() *ProfileService {
	return &ProfileService{client: c}
}

// Get fetches the protected profile route with the given access token.
func (s *ProfileService) Get(ctx context.Context, accessToken string) (map[string]any, error) {
	var resp map[string]any
	if err := s.client.do(ctx, http.MethodGet, "profile", accessToken, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
