// Package encparams parses x265 encoder settings dumps into ordered
// parameter maps.
//
// The input is the free-form flag text an encoder embeds in its output
// (for example the "Encoding settings" line reported by mediainfo):
// whitespace-separated tokens where the interesting ones look like
// name=value. Parse keeps only those tokens and remembers first-seen key
// order so downstream rendering is reproducible. Normalize applies the
// small set of fixups needed before the observed values can be compared
// against the reference preset table.
package encparams
