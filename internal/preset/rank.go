package preset

import (
	"sort"

	"presetid/internal/encparams"
)

// RankedCandidate pairs a preset name with its agreement count against
// an observed settings map.
type RankedCandidate struct {
	Name       string
	Agreements int
}

// ClosestMatches ranks every catalog preset by the number of observed
// keys whose value matches the preset's exactly. Unlike Matches, a key
// the preset lacks earns no credit; this is the strict diagnostic
// measure, not the matching rule.
//
// The returned order is descending by agreement count. Ties keep the
// reverse of catalog declaration order: the list is stable-sorted
// ascending and then reversed in full. Downstream output depends on
// that exact tie order, so this must not be rewritten as a direct
// descending sort.
func ClosestMatches(observed *encparams.Settings) []RankedCandidate {
	reference := Catalog()
	ranked := make([]RankedCandidate, 0, len(reference))
	for _, p := range reference {
		count := 0
		for _, key := range observed.Keys() {
			value, _ := observed.Get(key)
			if presetValue, ok := p.Params.Get(key); ok && presetValue == value {
				count++
			}
		}
		ranked = append(ranked, RankedCandidate{Name: p.Name, Agreements: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Agreements < ranked[j].Agreements
	})
	for i, j := 0, len(ranked)-1; i < j; i, j = i+1, j-1 {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}
	return ranked
}
