package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/twr-cli/twr/internal/action"
	"github.com/twr-cli/twr/internal/config"
	"github.com/twr-cli/twr/internal/git"
	"github.com/twr-cli/twr/internal/log"
	"github.com/twr-cli/twr/internal/output"
)

func runCd(ctx context.Context, args []string, copyToClipboard bool) error {
	cfg := config.FromContext(ctx)

	paths, err := normalizeArgs(args)
	if err != nil {
		return err
	}

	target := action.Target{Paths: paths, WorkDir: workDir}
	dir, err := target.StartDir()
	if err != nil {
		return err
	}

	detect := cfg.Timeouts.Detect.Std()
	if !git.IsInsideWorkTree(ctx, dir, detect) {
		return fmt.Errorf("%w: %s", action.ErrNotRepository, dir)
	}

	root, err := git.RepoRoot(ctx, dir, detect)
	if err != nil {
		return err
	}

	if copyToClipboard {
		if err := clipboard.WriteAll(root); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		log.FromContext(ctx).Printf("Copied %s to clipboard\n", root)
		return nil
	}

	output.FromContext(ctx).Println(root)
	return nil
}
