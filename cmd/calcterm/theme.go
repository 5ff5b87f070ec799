package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/calcterm/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openCLIApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			name, err := app.Preferences.Theme(cmd.Context())
			if err != nil {
				return newCommandError("read theme", "loading preferences", err, "Check that the data directory is readable.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.AddCommand(newThemeSetCmd(flags))
	cmd.AddCommand(newThemeToggleCmd(flags))

	return cmd
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Save the theme used by the calculator",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{theme.Light.String(), theme.Dark.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := theme.Parse(args[0])
			if !ok {
				return newCommandError("set theme", fmt.Sprintf("unknown theme %q", args[0]), fmt.Errorf("theme must be light or dark"), "Run 'calcterm theme set light' or 'calcterm theme set dark'.")
			}

			app, err := openCLIApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Preferences.SetTheme(cmd.Context(), name); err != nil {
				return newCommandError("set theme", "saving preferences", err, "Check that the data directory is writable.")
			}
			app.Logger.Debug("theme saved", "theme", name.String())
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newThemeToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openCLIApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			name, err := app.Preferences.ToggleTheme(cmd.Context())
			if err != nil {
				return newCommandError("toggle theme", "saving preferences", err, "Check that the data directory is writable.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
