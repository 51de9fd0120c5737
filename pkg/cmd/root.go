package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"authprobe/pkg/config"
)

type Config struct {
	ConfigPath   string
	OutputWriter io.Writer
}

type runtimeState struct {
	configPath     string
	cfg            *config.Config
	serverOverride string
	timeoutFlag    string
	outputFormat   string
	nonInteractive bool
	verbose        bool
	writer         io.Writer
	logger         *zap.Logger
}

type runtimeKey struct{}

func DefaultConfig() Config {
	return Config{
		ConfigPath:   config.DefaultConfigPath(),
		OutputWriter: os.Stdout,
	}
}

func NewRootCommand(cfg Config) *cobra.Command {
	rt := &runtimeState{configPath: cfg.ConfigPath, writer: cfg.OutputWriter}

	root := &cobra.Command{
		Use:   "authprobe",
		Short: "Interactive smoke tester for an authentication API",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Local .env files feed the AUTHPROBE_* fallbacks below.
			_ = godotenv.Load()

			if rt.writer == nil {
				rt.writer = os.Stdout
			}
			if rt.configPath == "" {
				rt.configPath = config.DefaultConfigPath()
			}
			if rt.serverOverride == "" {
				rt.serverOverride = os.Getenv("AUTHPROBE_SERVER")
			}
			if rt.outputFormat == "" {
				rt.outputFormat = os.Getenv("AUTHPROBE_OUTPUT")
			}
			if rt.timeoutFlag == "" {
				rt.timeoutFlag = os.Getenv("AUTHPROBE_TIMEOUT")
			}
			if !rt.nonInteractive {
				rt.nonInteractive = strings.EqualFold(os.Getenv("AUTHPROBE_NON_INTERACTIVE"), "true")
			}
			if !rt.verbose {
				rt.verbose = strings.EqualFold(os.Getenv("AUTHPROBE_VERBOSE"), "true")
			}

			if rt.verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				rt.logger = logger
			} else {
				rt.logger = zap.NewNop()
			}

			if cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}

			// A missing config file is fine: the tool targets the default
			// local server out of the box.
			loaded, err := config.Load(rt.configPath)
			if err != nil {
				if os.IsNotExist(err) {
					defaults := config.DefaultConfig()
					rt.cfg = &defaults
					return nil
				}
				return err
			}
			rt.cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", rt.configPath, "Path to config file")
	root.PersistentFlags().StringVar(&rt.serverOverride, "server", "", "Auth API base URL override")
	root.PersistentFlags().StringVar(&rt.timeoutFlag, "timeout", "", "HTTP timeout override (e.g. 10s)")
	root.PersistentFlags().StringVarP(&rt.outputFormat, "output", "o", "", "Output format: json, yaml")
	root.PersistentFlags().BoolVar(&rt.nonInteractive, "non-interactive", false, "Fail instead of prompting")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "Enable verbose request logging")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewFlowCommand(),
		NewAuthCommand(),
		NewProfileCommand(),
		NewTokenCommand(),
		NewConfigCommand(),
		NewCompletionCommand(),
		NewVersionCommand(),
	)

	return root
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}

func (rt *runtimeState) OutputFormat() string {
	if rt.outputFormat != "" {
		return rt.outputFormat
	}
	if rt.cfg != nil && rt.cfg.Settings.OutputFormat != "" {
		return rt.cfg.Settings.OutputFormat
	}
	return "json"
}

func (rt *runtimeState) Writer() io.Writer {
	if rt.writer != nil {
		return rt.writer
	}
	return os.Stdout
}

func (rt *runtimeState) Logger() *zap.Logger {
	if rt.logger != nil {
		return rt.logger
	}
	return zap.NewNop()
}

func (rt *runtimeState) configPathValue() string {
	if rt.configPath == "" {
		return config.DefaultConfigPath()
	}
	return rt.configPath
}
