package encparams

// Normalize rewrites observed settings so they are comparable against the
// reference preset table. Two fixups apply, in order:
//
//  1. The "me" key is removed. Encoders report motion estimation as a
//     numeric code while the reference table records algorithm names
//     (dia, hex, star), so the field cannot be compared at all.
//  2. A "lookahead-slices" value of "0" becomes "1". x265 treats 0 as 1,
//     and the reference table records the canonical 1.
//
// No other keys are touched and Normalize never fails.
func Normalize(s *Settings) {
	s.Delete("me")
	if value, ok := s.Get("lookahead-slices"); ok && value == "0" {
		s.Set("lookahead-slices", "1")
	}
}
