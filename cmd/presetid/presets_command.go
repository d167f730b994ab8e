package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"presetid/internal/preset"
)

func newPresetsCommand() *cobra.Command {
	var paramFilter []string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Show the reference preset table",
		Long: `Print every parameter of the ten x265 presets, one row per parameter
and one column per preset, in catalog speed order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := preset.Schema()
			for _, name := range paramFilter {
				if !slices.Contains(schema, name) {
					return fmt.Errorf("unknown parameter %q (see `presetid presets` for the full list)", name)
				}
			}

			reference := preset.Catalog()
			headers := make([]string, 0, len(reference)+1)
			headers = append(headers, "parameter")
			for _, p := range reference {
				headers = append(headers, p.Name)
			}

			rows := make([][]string, 0, len(schema))
			for _, name := range schema {
				if len(paramFilter) > 0 && !slices.Contains(paramFilter, name) {
					continue
				}
				row := make([]string, 0, len(reference)+1)
				row = append(row, name)
				for _, p := range reference {
					value, _ := p.Params.Get(name)
					row = append(row, value)
				}
				rows = append(rows, row)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&paramFilter, "param", nil, "Limit rows to the named parameters")
	return cmd
}
