package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twr-cli/twr/internal/config"
	"github.com/twr-cli/twr/internal/git"
	"github.com/twr-cli/twr/internal/output"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose setup issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose twr setup issues.

Checks:
- git is installed and in PATH
- The config file parses (if present)
- The configured GUI client's command-line utility is in PATH

Examples:
  twr doctor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			var issues int

			out.Println("Running diagnostics...")
			out.Println()

			// Check git is available
			if err := git.CheckGit(); err != nil {
				out.Printf("❌ Git not found: %v\n", err)
				issues++
			} else {
				out.Println("✓ Git is available")
			}

			// Check config file
			path, err := config.Path()
			if err != nil {
				out.Printf("❌ Cannot locate config: %v\n", err)
				issues++
			} else if _, statErr := os.Stat(path); statErr != nil {
				out.Printf("⚠ No config file at %s (defaults apply)\n", path)
			} else if _, loadErr := config.LoadFrom(path); loadErr != nil {
				out.Printf("❌ Config file invalid: %v\n", loadErr)
				issues++
			} else {
				out.Printf("✓ Config file valid (%s)\n", path)
			}

			// Check the configured client's CLI
			cfg := config.FromContext(ctx)
			client, err := clientFromConfig(cfg)
			if err != nil {
				out.Printf("❌ Client configuration: %v\n", err)
				issues++
			} else if err := client.Check(); err != nil {
				out.Printf("❌ %s CLI (%s) not found in PATH\n", client.Name, client.Command)
				issues++
			} else {
				out.Printf("✓ %s CLI (%s) is available\n", client.Name, client.Command)
			}

			out.Println()
			if issues > 0 {
				return fmt.Errorf("%d issue(s) found", issues)
			}

			out.Println("All checks passed")
			return nil
		},
	}

	return cmd
}
