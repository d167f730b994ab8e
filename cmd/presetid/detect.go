package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"presetid/internal/diff"
	"presetid/internal/encparams"
	"presetid/internal/logging"
	"presetid/internal/preset"
)

type detectOptions struct {
	color        string
	colorSet     bool
	verbosity    int
	verbositySet bool
	debug        bool
}

func runDetect(ctx *commandContext, cmd *cobra.Command, args []string, opts detectOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level := cfg.Logging.Level
	if opts.debug {
		level = "debug"
	}
	logger := logging.New(logging.Options{Level: level, Writer: cmd.ErrOrStderr()})

	// Flags win over config defaults.
	colorMode := cfg.Output.Color
	if opts.colorSet {
		colorMode = opts.color
	}
	verbosity := cfg.Output.Verbosity
	if opts.verbositySet {
		verbosity = opts.verbosity
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	settings := encparams.Parse(raw)
	encparams.Normalize(settings)
	logger.Debug("parsed encoder settings",
		"bytes", len(raw),
		"parameters", settings.Len(),
		"verbosity", verbosity,
		"color", colorMode,
	)

	name, err := preset.Determine(settings)
	if err != nil {
		var noMatch *preset.NoMatchError
		if errors.As(err, &noMatch) && verbosity >= 1 {
			table := diff.Render(settings, noMatch.Ranked, diff.Options{
				Colorize:  colorEnabled(colorMode),
				FullUnion: verbosity >= 2,
			})
			return fmt.Errorf("No matching presets found. Partial matches:\n\n%s", table)
		}
		return err
	}

	logger.Debug("preset identified", "preset", name)
	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// colorEnabled resolves a color mode to a decision. Auto enables color
// only when stdout is an interactive terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
