// Package git answers two questions about a filesystem path: whether it lies
// inside a git working tree, and where that tree's top-level directory is.
//
// Both queries shell out to the git CLI (`git rev-parse`) with a short
// deadline instead of parsing repository internals. Detection swallows every
// failure into a negative answer; root resolution propagates failures, since
// callers only resolve paths that detection already confirmed.
package git
