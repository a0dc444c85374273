package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// DefaultDetectTimeout bounds detection and root resolution queries.
// A hung git process (network filesystems, misbehaving credential helpers)
// must not block the caller indefinitely.
const DefaultDetectTimeout = 2 * time.Second

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideWorkTree returns true if dir lies inside a git working tree.
// The timeout bounds the query; zero means DefaultDetectTimeout.
//
// Every failure mode collapses to false: a non-zero exit (not a repo, dir
// does not exist), a timeout, or output other than the literal "true".
// The match is trimmed and case-sensitive.
func IsInsideWorkTree(ctx context.Context, dir string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultDetectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := outputGit(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}
