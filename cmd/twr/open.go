package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/twr-cli/twr/internal/action"
	"github.com/twr-cli/twr/internal/config"
	"github.com/twr-cli/twr/internal/ui/picker"
)

func runOpen(ctx context.Context, args []string, interactive bool) error {
	cfg := config.FromContext(ctx)

	client, err := clientFromConfig(cfg)
	if err != nil {
		return err
	}

	paths, err := normalizeArgs(args)
	if err != nil {
		return err
	}

	// The action layer acts on exactly one selection; several candidates
	// must be narrowed down first.
	if len(paths) > 1 {
		if !interactive {
			return fmt.Errorf("%d paths given: pass a single path, or add --interactive to pick one", len(paths))
		}
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("--interactive requires a terminal")
		}
		choice, err := picker.Pick("Open repository for:", paths)
		if err != nil {
			return err
		}
		paths = []string{choice}
	}

	target := action.Target{Paths: paths, WorkDir: workDir}
	detect := cfg.Timeouts.Detect.Std()

	var act action.Action
	if len(paths) == 0 {
		act = action.OpenCurrent{Launcher: loggingLauncher{client}, Detect: detect}
	} else {
		act = action.OpenSelection{Launcher: loggingLauncher{client}, Detect: detect}
	}

	return act.Execute(ctx, target)
}
