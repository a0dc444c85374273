package main

import (
	"context"
	"fmt"

	"github.com/twr-cli/twr/internal/action"
	"github.com/twr-cli/twr/internal/config"
)

func runCreate(ctx context.Context, args []string) error {
	cfg := config.FromContext(ctx)

	client, err := clientFromConfig(cfg)
	if err != nil {
		return err
	}

	paths, err := normalizeArgs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		paths = []string{workDir}
	}

	target := action.Target{Paths: paths, WorkDir: workDir}
	act := action.CreateRepository{Launcher: loggingLauncher{client}, Detect: cfg.Timeouts.Detect.Std()}

	// Available is the inverse gate: it fails for paths already under
	// version control, while Execute itself launches unconditionally.
	if !act.Available(ctx, target) {
		dir, dirErr := target.StartDir()
		if dirErr != nil {
			return dirErr
		}
		return fmt.Errorf("%w: %s (use 'twr open' instead)", action.ErrAlreadyRepository, dir)
	}

	return act.Execute(ctx, target)
}
