package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/twr-cli/twr/internal/config"
	"github.com/twr-cli/twr/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage twr configuration.

Config file: ~/.config/twr/config.toml`,
		Example: `  twr config init   # Create default config
  twr config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  twr config init      # Create config at ~/.config/twr/config.toml
  twr config init -f   # Overwrite existing config
  twr config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Printf("%s", config.DefaultConfigTOML)
				return nil
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", configPath)
				}
			}

			if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(configPath, []byte(config.DefaultConfigTOML), 0644); err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration: file values merged with defaults
and the TWR_CLIENT environment override.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				view := struct {
					Client struct {
						Name    string `json:"name"`
						Command string `json:"command,omitempty"`
					} `json:"client"`
					Timeouts struct {
						Detect string `json:"detect"`
						Launch string `json:"launch"`
					} `json:"timeouts"`
				}{}
				view.Client.Name = cfg.Client.Name
				view.Client.Command = cfg.Client.Command
				view.Timeouts.Detect = cfg.Timeouts.Detect.Std().String()
				view.Timeouts.Launch = cfg.Timeouts.Launch.Std().String()

				data, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return err
				}
				out.Println(string(data))
				return nil
			}

			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
