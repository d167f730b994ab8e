// Package preset identifies which x265 speed preset produced a set of
// observed encoder settings.
//
// The package holds the curated reference table of the ten x265 presets
// (ultrafast through placebo) and two deliberately distinct comparison
// rules. Determine applies the permissive subset rule: a preset stays a
// candidate as long as no observed key directly contradicts it, so
// partial or noisy flag dumps can still resolve. ClosestMatches applies
// the strict rule: it counts exact key/value agreements per preset and
// orders the full catalog by that count for diagnostics. The two rules
// back different guarantees (a definitive answer versus a closeness
// ranking) and must not be merged.
package preset
