package asset

type (
	// Interner maps script strings to stable small handles. Handle 0 is
	// reserved for the empty string so that zero-initialized structures
	// resolve to "".
	Interner struct {
		handlesByValue map[string]ScriptString
		values         []string
	}
)

func NewInterner() *Interner {
	return &Interner{
		handlesByValue: map[string]ScriptString{"": 0},
		values:         []string{""},
	}
}

func (r *Interner) InternOrLookup(value string) ScriptString {
	handle, ok := r.handlesByValue[value]
	if ok {
		return handle
	}
	handle = ScriptString(len(r.values))
	r.handlesByValue[value] = handle
	r.values = append(r.values, value)
	return handle
}

func (r *Interner) Value(handle ScriptString) string {
	if int(handle) >= len(r.values) {
		return ""
	}
	return r.values[handle]
}
