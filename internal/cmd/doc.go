// Package cmd provides helpers for executing external commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. The context
// variants additionally honor cancellation and echo the command when verbose
// logging is enabled.
//
// # Design Notes
//
// twr shells out to the git CLI and the GUI client's command-line utility
// rather than using Go libraries. This approach is simpler, more reliable,
// and ensures compatibility with user configurations (SSH keys, credential
// helpers, client preferences, etc.). Commands are always built as argv
// arrays; no shell is ever involved, so paths with special characters are
// passed through verbatim.
package cmd
