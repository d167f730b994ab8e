package main

import (
	"github.com/spf13/cobra"
)

const version = "0.2.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var colorFlag string
	var verboseFlag int
	var debugFlag bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "presetid [input-file]",
		Short: "Identify which x265 preset encoded a video",
		Long: `Read x265 encoding flags (for example from the output of mediainfo) and
print which preset the video was encoded with.

Flag text is read from the given file, or from stdin when no file is named.
When no preset matches, diagnostics go to stderr: a ranked closest-match
list by default, or a side-by-side comparison table with -v.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(ctx, cmd, args, detectOptions{
				color:        colorFlag,
				colorSet:     cmd.Flags().Changed("color"),
				verbosity:    verboseFlag,
				verbositySet: cmd.Flags().Changed("verbose"),
				debug:        debugFlag,
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging to stderr")
	rootCmd.Flags().StringVar(&colorFlag, "color", "auto", "Color mode for diagnostics (auto, always, never)")
	rootCmd.Flags().CountVarP(&verboseFlag, "verbose", "v", "Increase no-match diagnostic detail (repeatable)")

	rootCmd.AddCommand(newPresetsCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
