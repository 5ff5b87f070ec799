package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	dataDir    string
	storage    string
	locale     string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "calcterm",
		Short:         "calcterm is a keyboard-driven terminal calculator",
		Long:          "calcterm keeps one pending operation at a time, remembers your last ten calculations and your light/dark theme between sessions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the interactive calculator
			return runInteractive(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to configuration file (default ~/.calcterm/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding history and preferences")
	cmd.PersistentFlags().StringVar(&flags.storage, "storage", "", "Storage backend: file, sqlite or memory")
	cmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "BCP 47 locale used for thousands separators")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newEvalCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
