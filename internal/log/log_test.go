package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFromContext_NoLogger(t *testing.T) {
	t.Parallel()
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext() = nil, want no-op logger")
	}
	// Must not panic
	l.Printf("hello %s\n", "world")
	l.Command("git", "status")
}

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false, false))

	FromContext(ctx).Println("hello")
	if got := buf.String(); got != "hello\n" {
		t.Errorf("Println output = %q, want %q", got, "hello\n")
	}
}

func TestCommand_VerboseOnly(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, false, false).Command("git", "rev-parse", "--show-toplevel")
	if buf.Len() != 0 {
		t.Errorf("Command with verbose=false wrote %q, want nothing", buf.String())
	}

	buf.Reset()
	New(&buf, true, false).Command("git", "rev-parse", "--show-toplevel")
	want := "$ git rev-parse --show-toplevel\n"
	if got := buf.String(); got != want {
		t.Errorf("Command output = %q, want %q", got, want)
	}
}

func TestQuiet_SuppressesEverything(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, true, true)
	l.Printf("a\n")
	l.Println("b")
	l.Command("git", "status")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q, want nothing", buf.String())
	}
}

func TestPrintf_Formatting(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, false, false).Printf("opening %s in %s\n", "/repo", "Tower")
	if !strings.Contains(buf.String(), "/repo") {
		t.Errorf("Printf output = %q, want it to contain %q", buf.String(), "/repo")
	}
}
