package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeClient writes an executable script to dir and returns a Client
// whose Command points at it.
func fakeClient(t *testing.T, dir, script string) Client {
	t.Helper()
	bin := filepath.Join(dir, "fake-client")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatalf("failed to write fake client: %v", err)
	}
	c, err := Resolve("tower", bin)
	if err != nil {
		t.Fatalf("Resolve() = %v, want nil", err)
	}
	return c
}

func TestResolve_KnownClients(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		wantCommand string
	}{
		{"tower", "gittower"},
		{"fork", "fork"},
		{"gitkraken", "gitkraken"},
		{"sublime-merge", "smerge"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Resolve(tt.name, "")
			if err != nil {
				t.Fatalf("Resolve(%q) = %v, want nil", tt.name, err)
			}
			if c.Command != tt.wantCommand {
				t.Errorf("Resolve(%q).Command = %q, want %q", tt.name, c.Command, tt.wantCommand)
			}
		})
	}
}

func TestResolve_EmptyNameDefaultsToTower(t *testing.T) {
	t.Parallel()
	c, err := Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve(\"\") = %v, want nil", err)
	}
	if c.Name != "tower" || c.Command != "gittower" {
		t.Errorf("Resolve(\"\") = %+v, want tower/gittower", c)
	}
}

func TestResolve_UnknownWithoutCommand(t *testing.T) {
	t.Parallel()
	if _, err := Resolve("sourcetree", ""); err == nil {
		t.Error("Resolve(unknown, no command) = nil, want error")
	}
}

func TestResolve_UnknownWithCommand(t *testing.T) {
	t.Parallel()
	c, err := Resolve("sourcetree", "stree")
	if err != nil {
		t.Fatalf("Resolve(unknown, command) = %v, want nil", err)
	}
	if c.Command != "stree" {
		t.Errorf("Command = %q, want %q", c.Command, "stree")
	}
}

func TestResolve_CommandOverride(t *testing.T) {
	t.Parallel()
	c, err := Resolve("tower", "/opt/tower/bin/gittower")
	if err != nil {
		t.Fatalf("Resolve() = %v, want nil", err)
	}
	if c.Command != "/opt/tower/bin/gittower" {
		t.Errorf("Command = %q, want the override", c.Command)
	}
}

func TestOpen_Success(t *testing.T) {
	t.Parallel()
	c := fakeClient(t, t.TempDir(), `exit 0`)

	if err := c.Open(context.Background(), "/repo"); err != nil {
		t.Errorf("Open() = %v, want nil", err)
	}
}

func TestOpen_FailureCarriesGuidance(t *testing.T) {
	t.Parallel()
	c := fakeClient(t, t.TempDir(), `exit 1`)

	err := c.Open(context.Background(), "/repo")
	if err == nil {
		t.Fatal("Open() = nil, want error")
	}

	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("Open() error = %T, want *LaunchError", err)
	}
	if !strings.Contains(err.Error(), "Tower Command Line Utility") {
		t.Errorf("Open() error = %q, want guidance text", err.Error())
	}
}

func TestOpen_MissingBinary(t *testing.T) {
	t.Parallel()
	c, err := Resolve("tower", filepath.Join(t.TempDir(), "no-such-binary"))
	if err != nil {
		t.Fatalf("Resolve() = %v, want nil", err)
	}

	var launchErr *LaunchError
	if err := c.Open(context.Background(), "/repo"); !errors.As(err, &launchErr) {
		t.Errorf("Open() error = %v, want *LaunchError", err)
	}
}

func TestOpen_Timeout(t *testing.T) {
	t.Parallel()
	c := fakeClient(t, t.TempDir(), `sleep 10`)
	c.Timeout = 100 * time.Millisecond

	start := time.Now()
	err := c.Open(context.Background(), "/repo")
	if err == nil {
		t.Fatal("Open() = nil, want timeout error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Open() took %v, want the hung client to be killed promptly", elapsed)
	}
}

func TestOpen_PassesSinglePathArgument(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	c := fakeClient(t, dir, `echo "$@" > `+argsFile)

	target := filepath.Join(dir, "my repo with spaces")
	if err := c.Open(context.Background(), target); err != nil {
		t.Fatalf("Open() = %v, want nil", err)
	}

	got, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("failed to read recorded args: %v", err)
	}
	if strings.TrimSpace(string(got)) != target {
		t.Errorf("client argv = %q, want exactly %q", strings.TrimSpace(string(got)), target)
	}
}

func TestCheck_MissingBinary(t *testing.T) {
	t.Parallel()
	c, err := Resolve("tower", "definitely-not-a-real-binary-twr")
	if err != nil {
		t.Fatalf("Resolve() = %v, want nil", err)
	}
	if err := c.Check(); err == nil {
		t.Error("Check() = nil, want error for missing binary")
	}
}
