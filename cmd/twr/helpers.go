package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/twr-cli/twr/internal/config"
	"github.com/twr-cli/twr/internal/launcher"
	"github.com/twr-cli/twr/internal/log"
)

// expandPath expands a leading ~ and makes the path absolute.
func expandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path of %s: %w", path, err)
	}
	return abs, nil
}

// normalizeArgs expands every path argument.
func normalizeArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := expandPath(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// clientFromConfig builds the launcher client from the effective config.
func clientFromConfig(cfg *config.Config) (launcher.Client, error) {
	client, err := launcher.Resolve(cfg.Client.Name, cfg.Client.Command)
	if err != nil {
		return launcher.Client{}, err
	}
	client.Timeout = cfg.Timeouts.Launch.Std()
	return client, nil
}

// loggingLauncher announces each launch on the diagnostic stream.
type loggingLauncher struct {
	client launcher.Client
}

func (ll loggingLauncher) Open(ctx context.Context, path string) error {
	log.FromContext(ctx).Printf("Opening %s in %s\n", path, ll.client.Name)
	return ll.client.Open(ctx, path)
}
