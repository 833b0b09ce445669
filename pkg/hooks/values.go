package hooks

// Values accumulates the resolved strings of a run: hook results keyed by
// signature and bound variable name, plain variables echoed under their
// own names. The table grows monotonically — the first write for a key
// wins and nothing is ever removed or rolled back, so values produced by
// successful hooks survive sibling failures.
type Values map[string]string

// NewValues returns an empty value table.
func NewValues() Values {
	return make(Values)
}

// Set records value under key unless the key is already present.
func (v Values) Set(key, value string) {
	if _, ok := v[key]; !ok {
		v[key] = value
	}
}

// Get returns the value recorded under key.
func (v Values) Get(key string) (string, bool) {
	value, ok := v[key]
	return value, ok
}
