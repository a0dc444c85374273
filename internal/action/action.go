package action

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/twr-cli/twr/internal/git"
)

var (
	// ErrNoFile indicates the target path does not exist on disk.
	ErrNoFile = errors.New("file does not exist")
	// ErrMultipleSelection indicates more than one path was selected.
	ErrMultipleSelection = errors.New("exactly one path must be selected")
	// ErrNotRepository indicates the target lies outside any working tree.
	ErrNotRepository = errors.New("not inside a git repository")
	// ErrAlreadyRepository indicates the target already lies inside a working tree.
	ErrAlreadyRepository = errors.New("already inside a git repository")
)

// Launcher opens a directory in the GUI git client.
type Launcher interface {
	Open(ctx context.Context, path string) error
}

// Target is the filesystem selection a trigger acts on.
type Target struct {
	Paths   []string // selected entries; empty means the working directory
	WorkDir string   // invocation working directory
}

// StartDir normalizes the target to the directory detection runs in:
// a file maps to its containing directory, a directory to itself.
func (t Target) StartDir() (string, error) {
	switch len(t.Paths) {
	case 0:
		if t.WorkDir == "" {
			return "", fmt.Errorf("%w: no path selected and no working directory", ErrNoFile)
		}
		return t.WorkDir, nil
	case 1:
		path := t.Paths[0]
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrNoFile, path)
		}
		if info.IsDir() {
			return path, nil
		}
		return filepath.Dir(path), nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrMultipleSelection, len(t.Paths))
	}
}

// Action is a single user-invokable trigger.
type Action interface {
	// Available reports whether the trigger applies to the target.
	// It never fails; any problem counts as not available.
	Available(ctx context.Context, target Target) bool
	// Execute runs the trigger. Preconditions are re-checked so that a
	// direct Execute without Available still fails cleanly.
	Execute(ctx context.Context, target Target) error
}

// resolveAndOpen resolves the working-tree root of dir and hands it to the
// launcher. Root resolution failures propagate; by this point detection has
// confirmed dir is inside a tree, so a failure here is exceptional.
func resolveAndOpen(ctx context.Context, l Launcher, dir string, detect time.Duration) error {
	root, err := git.RepoRoot(ctx, dir, detect)
	if err != nil {
		return err
	}
	return l.Open(ctx, root)
}

// OpenCurrent opens the repository containing the current file or working
// directory in the GUI client.
type OpenCurrent struct {
	Launcher Launcher
	Detect   time.Duration // detection/resolution ceiling; zero uses the default
}

func (a OpenCurrent) Available(ctx context.Context, target Target) bool {
	dir, err := target.StartDir()
	if err != nil {
		return false
	}
	return git.IsInsideWorkTree(ctx, dir, a.Detect)
}

func (a OpenCurrent) Execute(ctx context.Context, target Target) error {
	dir, err := target.StartDir()
	if err != nil {
		return err
	}
	if !git.IsInsideWorkTree(ctx, dir, a.Detect) {
		return fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	return resolveAndOpen(ctx, a.Launcher, dir, a.Detect)
}

// OpenSelection opens the repository containing a single selected filesystem
// entry in the GUI client. Unlike OpenCurrent it never falls back to the
// working directory: exactly one entry must be selected.
type OpenSelection struct {
	Launcher Launcher
	Detect   time.Duration
}

func (a OpenSelection) Available(ctx context.Context, target Target) bool {
	if len(target.Paths) != 1 {
		return false
	}
	dir, err := target.StartDir()
	if err != nil {
		return false
	}
	return git.IsInsideWorkTree(ctx, dir, a.Detect)
}

func (a OpenSelection) Execute(ctx context.Context, target Target) error {
	if len(target.Paths) != 1 {
		return fmt.Errorf("%w: got %d", ErrMultipleSelection, len(target.Paths))
	}
	dir, err := target.StartDir()
	if err != nil {
		return err
	}
	if !git.IsInsideWorkTree(ctx, dir, a.Detect) {
		return fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	return resolveAndOpen(ctx, a.Launcher, dir, a.Detect)
}

// CreateRepository hands a directory that is not yet under version control
// to the GUI client, relying on the client's own ability to initialize a
// repository there. It is the inverse of OpenSelection: available only
// outside any working tree.
type CreateRepository struct {
	Launcher Launcher
	Detect   time.Duration
}

func (a CreateRepository) Available(ctx context.Context, target Target) bool {
	if len(target.Paths) != 1 {
		return false
	}
	dir, err := target.StartDir()
	if err != nil {
		return false
	}
	return !git.IsInsideWorkTree(ctx, dir, a.Detect)
}

// Execute launches the client unconditionally: no detection gate and no
// root resolution, since there is no root yet.
func (a CreateRepository) Execute(ctx context.Context, target Target) error {
	if len(target.Paths) != 1 {
		return fmt.Errorf("%w: got %d", ErrMultipleSelection, len(target.Paths))
	}
	dir, err := target.StartDir()
	if err != nil {
		return err
	}
	return a.Launcher.Open(ctx, dir)
}
