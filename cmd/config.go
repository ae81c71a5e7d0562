package cmd

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize configuration",
	}

	cmd.AddCommand(
		newConfigInitCmd(app),
		newConfigShowCmd(app),
	)

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write config.toml and the built-in network presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cfg.WriteFile(force); err != nil {
				return err
			}
			if err := app.networks.WriteDefaults(cmd.Context(), force); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\nWrote %s\n", app.cfg.File(), app.networks.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := toml.Marshal(app.cfg.Settings())
			if err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
