package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/twr-cli/twr/internal/cmd"
)

// DefaultLaunchTimeout bounds the spawn call itself, not the GUI
// application's subsequent lifetime. Client CLIs hand the path to the
// running app and exit; anything slower than this is stuck.
const DefaultLaunchTimeout = 5 * time.Second

// clientInfo describes a known GUI client's command-line integration.
type clientInfo struct {
	command  string // default binary name
	guidance string // how to enable the CLI when the spawn fails
}

// knownClients maps config client names to their CLI integration.
var knownClients = map[string]clientInfo{
	"tower": {
		command:  "gittower",
		guidance: "Enable it at: Tower > Settings > Integration > Tower Command Line Utility",
	},
	"fork": {
		command:  "fork",
		guidance: "Enable it at: Fork > Install Command Line Tools",
	},
	"gitkraken": {
		command:  "gitkraken",
		guidance: "Install the GitKraken CLI from: Preferences > CLI",
	},
	"sublime-merge": {
		command:  "smerge",
		guidance: "Add the smerge tool to your PATH (see Sublime Merge documentation)",
	},
}

// DefaultClientName is used when neither config nor TWR_CLIENT names a client.
const DefaultClientName = "tower"

// Client is a GUI git client reachable through a command-line utility.
type Client struct {
	Name    string        // display name, e.g. "tower"
	Command string        // binary invoked with the path as sole argument
	Timeout time.Duration // spawn ceiling; zero means DefaultLaunchTimeout

	guidance string
}

// Resolve builds a Client from a configured name and optional command
// override. Unknown names are accepted only with an explicit command.
func Resolve(name, command string) (Client, error) {
	if name == "" {
		name = DefaultClientName
	}
	name = strings.ToLower(name)

	info, known := knownClients[name]
	if !known && command == "" {
		return Client{}, fmt.Errorf("unknown client %q: set client.command in the config or use one of: %s",
			name, strings.Join(clientNames(), ", "))
	}

	c := Client{Name: name, Command: info.command, guidance: info.guidance}
	if command != "" {
		c.Command = command
	}
	if c.guidance == "" {
		c.guidance = fmt.Sprintf("Make sure %q is on your PATH and its command-line integration is enabled", c.Command)
	}
	return c, nil
}

// clientNames returns the sorted-enough list of known client names.
func clientNames() []string {
	names := make([]string, 0, len(knownClients))
	for name := range knownClients {
		names = append(names, name)
	}
	return names
}

// LaunchError reports a failed client spawn together with guidance on
// enabling the client's command-line integration.
type LaunchError struct {
	Client   Client
	Guidance string
	Err      error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("could not launch %s (%s): %v\n%s", e.Client.Name, e.Client.Command, e.Err, e.Guidance)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Check verifies the client's command-line utility is in PATH.
func (c Client) Check() error {
	if _, err := exec.LookPath(c.Command); err != nil {
		return &LaunchError{Client: c, Guidance: c.guidance, Err: err}
	}
	return nil
}

// Open spawns the client with path as its sole argument, launching the
// application if it is not already running. Any spawn failure is returned
// as a *LaunchError; the GUI's subsequent lifetime is not supervised.
func (c Client) Open(ctx context.Context, path string) error {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultLaunchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := cmd.RunContext(ctx, "", c.Command, path); err != nil {
		return &LaunchError{Client: c, Guidance: c.guidance, Err: err}
	}
	return nil
}
