package preset

import (
	"fmt"
	"strings"
)

// NoMatchError reports that no catalog preset is consistent with the
// observed settings. Ranked carries the full closeness ranking so
// callers can render richer diagnostics than the default message.
type NoMatchError struct {
	Ranked []RankedCandidate
}

func (e *NoMatchError) Error() string {
	return "No matching presets found. Closest matches:\n:" + FormatRanked(e.Ranked)
}

// AmbiguousError reports that two or more presets are simultaneously
// consistent with the observed settings. Names holds the surviving
// preset names in catalog order; resolution is left to the caller.
type AmbiguousError struct {
	Names []string
}

func (e *AmbiguousError) Error() string {
	return "Multiple matching presets found: " + FormatNames(e.Names)
}

// FormatRanked renders a ranking as `[("placebo", 2), ("veryslow", 2)]`.
// The exact byte shape is part of the tool's output contract.
func FormatRanked(ranked []RankedCandidate) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, candidate := range ranked {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%q, %d)", candidate.Name, candidate.Agreements)
	}
	b.WriteByte(']')
	return b.String()
}

// FormatNames renders a name list as `["ultrafast", "superfast"]`.
func FormatNames(names []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", name)
	}
	b.WriteByte(']')
	return b.String()
}
