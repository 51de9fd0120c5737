package cmd

import (
	"time"

	"authprobe/pkg/client"
	"authprobe/pkg/config"
)

func buildClient(rt *runtimeState) (*client.Client, error) {
	var cfg *config.Config
	if rt.cfg != nil {
		cfg = rt.cfg
	} else {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	options := []client.Option{
		client.WithServer(cfg.ResolvedServer(rt.serverOverride)),
		client.WithUserAgent("authprobe"),
		client.WithLogger(rt.Logger()),
	}

	timeoutValue := rt.timeoutFlag
	if timeoutValue == "" {
		timeoutValue = cfg.Timeout
	}
	if timeoutValue != "" {
		if timeout, parseErr := time.ParseDuration(timeoutValue); parseErr == nil {
			options = append(options, client.WithTimeout(timeout))
		}
	}
	if cfg.CAFile != "" || cfg.InsecureSkipTLSVerify {
		options = append(options, client.WithTLSConfig(cfg.CAFile, cfg.InsecureSkipTLSVerify))
	}

	return client.New(options...)
}
