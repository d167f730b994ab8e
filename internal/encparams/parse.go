package encparams

import "strings"

// Parse splits raw flag text into a settings map. Tokens are separated by
// whitespace; each token is split on its first '=' into name and value, so
// values keep embedded '=' and any other punctuation verbatim. Tokens
// without '=' (bare flags like "no-pmode", separators like "/") are
// dropped. A repeated name keeps the last value seen.
func Parse(raw string) *Settings {
	settings := New()
	for _, token := range strings.Fields(raw) {
		name, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		settings.Set(name, value)
	}
	return settings
}
