package diff

import (
	"strings"

	"presetid/internal/encparams"
	"presetid/internal/preset"
)

// candidateLimit caps how many ranked presets appear as columns.
const candidateLimit = 3

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiGreen = "\x1b[32m"
)

const (
	inputHeader = "input"
	placeholder = "-"
	separator   = " | "
)

// Options controls table rendering.
type Options struct {
	// Colorize emphasizes the input column in bold and candidate values
	// that agree with the input in green.
	Colorize bool
	// FullUnion shows every parameter from the reference schema plus any
	// observed-only keys, instead of just the keys present on both sides.
	FullUnion bool
}

// Render builds the comparison table for the observed settings and the
// top ranked candidates. Rows follow the displayed parameter order,
// candidate columns follow rank order. Values absent on either side
// render as "-". An empty observation or candidate list degenerates to
// the header and rule lines.
func Render(observed *encparams.Settings, ranked []preset.RankedCandidate, opts Options) string {
	candidates := topCandidates(ranked)
	params := displayedParams(observed, opts.FullUnion)

	paramWidth := 0
	for _, name := range params {
		if len(name) > paramWidth {
			paramWidth = len(name)
		}
	}

	inputWidth := len(inputHeader)
	for _, name := range params {
		if len(inputCell(observed, name)) > inputWidth {
			inputWidth = len(inputCell(observed, name))
		}
	}

	candidateWidths := make([]int, len(candidates))
	for i, c := range candidates {
		width := len(c.Name)
		for _, name := range params {
			if cell := candidateCell(c, name); len(cell) > width {
				width = len(cell)
			}
		}
		candidateWidths[i] = width
	}

	var table strings.Builder

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", paramWidth))
	header.WriteString(separator)
	header.WriteString(pad(inputHeader, inputWidth))
	for i, c := range candidates {
		header.WriteString(separator)
		header.WriteString(pad(c.Name, candidateWidths[i]))
	}
	table.WriteString(header.String())
	table.WriteByte('\n')
	table.WriteString(strings.Repeat("-", header.Len()))
	table.WriteByte('\n')

	for _, name := range params {
		table.WriteString(pad(name, paramWidth))

		table.WriteString(separator)
		value := inputCell(observed, name)
		padding := inputWidth - len(value)
		if opts.Colorize {
			value = ansiBold + value + ansiReset
		}
		table.WriteString(value)
		table.WriteString(strings.Repeat(" ", padding))

		for i, c := range candidates {
			table.WriteString(separator)
			value := candidateCell(c, name)
			padding := candidateWidths[i] - len(value)
			observedValue, ok := observed.Get(name)
			if opts.Colorize && ok && observedValue == value {
				value = ansiGreen + value + ansiReset
			}
			table.WriteString(value)
			table.WriteString(strings.Repeat(" ", padding))
		}
		table.WriteByte('\n')
	}

	return table.String()
}

// topCandidates resolves the highest-ranked names back to their catalog
// presets, preserving rank order for the column layout.
func topCandidates(ranked []preset.RankedCandidate) []preset.Preset {
	byName := make(map[string]preset.Preset, len(preset.Catalog()))
	for _, p := range preset.Catalog() {
		byName[p.Name] = p
	}

	limit := candidateLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	candidates := make([]preset.Preset, 0, limit)
	for _, candidate := range ranked[:limit] {
		if p, ok := byName[candidate.Name]; ok {
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// displayedParams picks the parameter rows. The default is the
// intersection of observed keys and the reference schema, in observed
// insertion order. FullUnion shows the whole schema in declaration order
// followed by observed-only keys in insertion order.
func displayedParams(observed *encparams.Settings, fullUnion bool) []string {
	schema := preset.Schema()
	inSchema := make(map[string]bool, len(schema))
	for _, name := range schema {
		inSchema[name] = true
	}

	if !fullUnion {
		var params []string
		for _, name := range observed.Keys() {
			if inSchema[name] {
				params = append(params, name)
			}
		}
		return params
	}

	params := make([]string, 0, len(schema)+observed.Len())
	params = append(params, schema...)
	for _, name := range observed.Keys() {
		if !inSchema[name] {
			params = append(params, name)
		}
	}
	return params
}

func inputCell(observed *encparams.Settings, name string) string {
	if value, ok := observed.Get(name); ok {
		return value
	}
	return placeholder
}

func candidateCell(p preset.Preset, name string) string {
	if value, ok := p.Params.Get(name); ok {
		return value
	}
	return placeholder
}

func pad(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
