package preset

import (
	"presetid/internal/encparams"
)

// Matches reports whether p is consistent with the observed settings
// under the permissive subset rule: every observed key must either be
// absent from the preset or carry the identical value there. Preset keys
// missing from the observation are ignored, so incomplete dumps can
// still match.
func Matches(observed *encparams.Settings, p Preset) bool {
	for _, key := range observed.Keys() {
		value, _ := observed.Get(key)
		presetValue, ok := p.Params.Get(key)
		if ok && presetValue != value {
			return false
		}
	}
	return true
}

// Determine resolves the observed settings to a single preset name.
// Every catalog preset is tested in declaration order; exactly one
// surviving candidate is a definitive answer. Zero candidates yields a
// *NoMatchError carrying the full closeness ranking, two or more yields
// a *AmbiguousError listing the surviving names in catalog order.
func Determine(observed *encparams.Settings) (string, error) {
	var matching []string
	for _, p := range Catalog() {
		if Matches(observed, p) {
			matching = append(matching, p.Name)
		}
	}

	switch len(matching) {
	case 0:
		return "", &NoMatchError{Ranked: ClosestMatches(observed)}
	case 1:
		return matching[0], nil
	default:
		return "", &AmbiguousError{Names: matching}
	}
}
