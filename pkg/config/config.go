// Package config loads and saves the authprobe config file and resolves the
// target server from flags, environment, and file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	VersionV1 = "v1"

	// DefaultServer matches the local development setup the smoke flow was
	// written against.
	DefaultServer = "http://localhost:3000/api"
)

type Config struct {
	Version               string   `yaml:"version"`
	Server                string   `yaml:"server,omitempty"`
	Timeout               string   `yaml:"timeout,omitempty"`
	CAFile                string   `yaml:"ca-file,omitempty"`
	InsecureSkipTLSVerify bool     `yaml:"insecure-skip-tls-verify,omitempty"`
	Settings              Settings `yaml:"settings,omitempty"`
}

type Settings struct {
	OutputFormat string `yaml:"output-format,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Version: VersionV1,
		Server:  DefaultServer,
		Settings: Settings{
			OutputFormat: "json",
		},
	}
}

func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Version == "" {
		cfg.Version = VersionV1
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.Version == "" {
		cfg.Version = VersionV1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, content, 0o600)
}

func (c *Config) Validate() error {
	if c.Version == "" {
		return errors.New("config version missing")
	}
	if strings.TrimSpace(c.Server) == "" {
		return errors.New("server is required")
	}
	return nil
}

// ResolvedServer applies the flag > env > file > default precedence.
func (c *Config) ResolvedServer(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv("AUTHPROBE_SERVER"); env != "" {
		return env
	}
	if c != nil && c.Server != "" {
		return c.Server
	}
	return DefaultServer
}

func DefaultConfigPath() string {
	if env := os.Getenv("AUTHPROBE_CONFIG"); env != "" {
		return env
	}
	base, err := os.UserConfigDir()
	if err == nil {
		return filepath.Join(base, "authprobe", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".authprobe", "config.yaml")
}
