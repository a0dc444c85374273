package main

import (
	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:     "open [path...]",
		Short:   "Open the repository containing a path in the GUI client",
		GroupID: GroupCore,
		Args:    cobra.ArbitraryArgs,
		Long: `Open the git repository containing a path in the configured GUI client.

With no arguments the current working directory is used. A file argument is
resolved to its containing directory first, then the repository root is
determined and handed to the client.

Several paths may be given together with --interactive to pick one.`,
		Example: `  twr open                  # open the repo you are in
  twr open src/main.go      # open the repo containing a file
  twr open ~/work/api       # open the repo at a directory
  twr open -i ~/work/*      # pick one of several candidates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd.Context(), args, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick interactively when several paths are given")

	return cmd
}
