package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"authprobe/pkg/flow"
	"authprobe/pkg/prompt"
)

func NewFlowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flow",
		Short: "Run the seven-step interactive auth flow",
		Long: "Walks through signup, email verification, login, protected-route " +
			"access, token refresh, forgot password, and reset password against " +
			"the configured server, prompting for input at each step and printing " +
			"each JSON response.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if rt.nonInteractive {
				return errors.New("flow prompts for input; remove --non-interactive")
			}
			apiClient, err := buildClient(rt)
			if err != nil {
				return err
			}
			runner := &flow.Runner{
				Client:   apiClient,
				Prompter: prompt.NewTerminal(),
				Writer:   rt.Writer(),
			}
			return runner.Run(context.Background())
		},
	}
}
