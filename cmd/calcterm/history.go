package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

const emptyHistoryMessage = "No calculations yet."

type historyOptions struct {
	jsonOutput bool
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output history as a JSON array")
	cmd.AddCommand(newHistoryClearCmd(flags))

	return cmd
}

func newHistoryClearCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved calculation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openCLIApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.History.Clear(cmd.Context()); err != nil {
				return newCommandError("clear history", "removing saved calculations", err, "Check that the data directory is writable.")
			}
			app.Logger.Info("history cleared")
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func runHistoryList(cmd *cobra.Command, flags *rootFlags, opts *historyOptions) error {
	app, err := openCLIApp(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	entries, err := app.History.Load(cmd.Context())
	if err != nil {
		return newCommandError("list history", "loading saved calculations", err, "Run 'calcterm history clear' to reset a corrupt history.")
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, emptyHistoryMessage)
		return nil
	}
	for _, entry := range entries {
		fmt.Fprintln(out, entry)
	}
	return nil
}
