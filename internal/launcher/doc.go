// Package launcher spawns the GUI git client with a single repository path.
//
// The launch is best-effort: a failed spawn is converted into a LaunchError
// carrying guidance on enabling the client's command-line integration, and
// callers surface that as exactly one user-facing message. A timed-out child
// is killed rather than leaked.
package launcher
