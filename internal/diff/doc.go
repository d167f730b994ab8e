// Package diff renders an aligned comparison table of observed encoder
// settings against the closest reference presets.
//
// The table is the diagnostic shown when no preset matches outright:
//
//	        | input | slow | veryslow | placebo
//	-----------------------------------------------
//	merange | 57    | 57   | 57       | 92
//	aq-mode | 4     | 2    | 2        | 2
//
// Columns are padded to the widest plain-text cell; ANSI emphasis (bold
// input, green agreement) is inserted after widths are computed so color
// never perturbs alignment.
package diff
