//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/twr-cli/twr/internal/config"
	"github.com/twr-cli/twr/internal/log"
	"github.com/twr-cli/twr/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	cmds := [][]string{
		{"git", "init"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
	}
	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = repoPath
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to run %v: %v\n%s", args, err, out)
		}
	}

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}

	cmds = [][]string{
		{"git", "add", "README.md"},
		{"git", "commit", "-m", "Initial commit"},
	}
	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = repoPath
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to run %v: %v\n%s", args, err, out)
		}
	}

	return repoPath
}

// fakeClientConfig writes a fake client script that records its argv, and
// returns a config pointing at it plus the file the argv lands in.
func fakeClientConfig(t *testing.T, dir string) (config.Config, string) {
	t.Helper()

	argsFile := filepath.Join(dir, "client-args")
	bin := filepath.Join(dir, "fake-client")
	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\n"
	if err := os.WriteFile(bin, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake client: %v", err)
	}

	cfg := config.Default()
	cfg.Client.Command = bin
	return cfg, argsFile
}

// launchedPath reads the single path the fake client was invoked with.
func launchedPath(t *testing.T, argsFile string) string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("fake client was not invoked: %v", err)
	}
	return strings.TrimSpace(string(data))
}

// testContext builds a command context with the given config and buffered
// log/output streams.
func testContext(t *testing.T, cfg config.Config) (context.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := config.WithConfig(context.Background(), &cfg)
	ctx = log.WithLogger(ctx, log.New(&out, false, false))
	ctx = output.WithPrinter(ctx, &out)
	return ctx, &out
}
