package cmd

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cobra"
)

func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Work with tokens returned by the API",
	}
	cmd.AddCommand(newTokenInspectCommand())
	return cmd
}

// newTokenInspectCommand decodes JWT claims without verifying the signature.
// Useful for checking what a login response actually issued.
func newTokenInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect TOKEN",
		Short: "Decode JWT claims (unverified)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			parser := jwt.Parser{}
			claims := jwt.MapClaims{}
			if _, _, err := parser.ParseUnverified(args[0], claims); err != nil {
				return fmt.Errorf("failed to parse token: %w", err)
			}
			return writeResult(rt, claims)
		},
	}
}
