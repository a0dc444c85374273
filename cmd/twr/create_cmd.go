package main

import (
	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create [path]",
		Short:   "Initialize a new repository at a path with the GUI client",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Hand a directory that is not yet under version control to the GUI client
so the client can initialize a git repository there.

This is the inverse of 'twr open': it refuses paths that already lie inside
a working tree. With no argument the current working directory is used.`,
		Example: `  twr create                # initialize a repo in the current directory
  twr create ~/new-project  # initialize a repo at a path`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), args)
		},
	}

	return cmd
}
