package encparams

// Settings maps encoder parameter names to values while preserving the
// order names were first added. Values are opaque strings; no semantic
// validation is applied anywhere in this package.
type Settings struct {
	values map[string]string
	order  []string
}

// New returns an empty settings map.
func New() *Settings {
	return &Settings{values: make(map[string]string)}
}

// Set stores value under name. Re-setting an existing name overwrites the
// value but keeps the name's original position.
func (s *Settings) Set(name, value string) {
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = value
}

// Get returns the value stored under name.
func (s *Settings) Get(name string) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Delete removes name and its value. Removing an absent name is a no-op.
func (s *Settings) Delete(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, key := range s.order {
		if key == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of stored parameters.
func (s *Settings) Len() int {
	return len(s.values)
}

// Keys returns the parameter names in first-seen order.
func (s *Settings) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}
