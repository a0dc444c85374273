package git

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RepoRoot resolves the top-level directory of the working tree containing
// dir. The timeout bounds the query; zero means DefaultDetectTimeout.
//
// Unlike IsInsideWorkTree, failures are propagated: callers are expected to
// have confirmed dir is inside a working tree first, so an error here is
// exceptional and worth surfacing.
func RepoRoot(ctx context.Context, dir string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultDetectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("resolve repository root of %s: %w", dir, err)
	}
	return strings.TrimSpace(string(output)), nil
}
