package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func NewProfileCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Fetch the protected profile route",
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
			resp, err := apiClient.Profile().Get(context.Background(), token)
			if err != nil {
				return err
			}
			return writeResult(rt, resp)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Access token from a login response")
	return cmd
}
