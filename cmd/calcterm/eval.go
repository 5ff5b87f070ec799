package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/calcterm/internal/app/session"
	"github.com/alexisbeaulieu97/calcterm/internal/calculator"
)

type evalOptions struct {
	jsonOutput bool
}

func newEvalCmd(flags *rootFlags) *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <keys>...",
		Short: "Feed key presses to the calculator and print the display",
		Long: `Feed key presses to the calculator one character at a time and print the resulting display.

Each argument is read character by character using the same bindings as the interactive
calculator (digits, '.', + - * /, '=' to compute, 'c' to clear). The special words
"enter", "backspace" and "esc" may be passed as whole arguments.

'x' clears the saved history and 't' toggles the saved theme, exactly as in the
interactive calculator. Put arguments that start with '-' after "--" so they are
not read as flags.`,
		Example: `  calcterm eval 5+3=
  calcterm eval 12 '*' 3 =
  calcterm eval -- 5 -3 =
  calcterm eval --json 7/2=`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, flags, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the final state as JSON")

	return cmd
}

func runEval(cmd *cobra.Command, flags *rootFlags, opts *evalOptions, args []string) error {
	app, err := openCLIApp(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	svc := app.NewSession()

	state, err := svc.State(ctx)
	if err != nil {
		return newCommandError("evaluate keys", "loading saved state", err, "Run 'calcterm history clear' if the history file is corrupt.")
	}

	for _, key := range splitKeys(args) {
		next, ok, err := svc.HandleKey(ctx, key)
		if err != nil {
			return newCommandError("evaluate keys", fmt.Sprintf("handling key %q", key), err, "Check that the data directory is writable.")
		}
		if !ok {
			app.Logger.Warn("ignoring unknown key", "key", key)
			continue
		}
		if in, _ := calculator.ParseKey(key); in.Kind == calculator.InputClearHistory {
			app.Logger.Warn("saved history cleared by eval input", "key", key)
		}
		state = next
	}

	if opts.jsonOutput {
		return renderStateJSON(cmd, state)
	}

	out := cmd.OutOrStdout()
	if state.Display.Previous != "" {
		fmt.Fprintln(out, state.Display.Previous)
	}
	fmt.Fprintln(out, state.Display.Current)
	return nil
}

// splitKeys expands arguments into key names. Named keys pass through whole;
// anything else is split into single characters.
func splitKeys(args []string) []string {
	var keys []string
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "enter", "backspace", "delete", "esc":
			keys = append(keys, strings.ToLower(arg))
			continue
		}
		for _, r := range arg {
			keys = append(keys, string(r))
		}
	}
	return keys
}

func renderStateJSON(cmd *cobra.Command, state session.State) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(state)
}
