package main

import (
	"github.com/spf13/cobra"
)

func newCdCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "cd [path]",
		Short:   "Print the repository root for shell scripting",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the top-level directory of the working tree containing a path.

Use with shell command substitution: cd $(twr cd). With no argument the
current working directory is used.`,
		Example: `  cd $(twr cd)              # jump to the repo root
  cd $(twr cd src/main.go)  # jump to the root of the repo containing a file
  twr cd --copy             # copy the repo root to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCd(cmd.Context(), args, copyToClipboard)
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the path to the clipboard instead of printing it")

	return cmd
}
