// Package infostring stores the code for the flat ordered key/value text
// mapping that asset field schemas are dumped to and loaded from.
package infostring

import (
	"github.com/iancoleman/orderedmap"
)

type (
	InfoString struct {
		values *orderedmap.OrderedMap
	}
)

func New() *InfoString {
	return &InfoString{
		values: orderedmap.New(),
	}
}

// SetValueForKey remembers insertion order for new keys;
// setting an existing key overwrites its value in place.
func (r *InfoString) SetValueForKey(key string, value string) {
	r.values.Set(key, value)
}

func (r *InfoString) ValueForKey(key string) (string, bool) {
	value, ok := r.values.Get(key)
	if !ok {
		return "", false
	}
	return value.(string), true
}

func (r *InfoString) HasKey(key string) bool {
	_, ok := r.values.Get(key)
	return ok
}

func (r *InfoString) Keys() []string {
	return r.values.Keys()
}

func (r *InfoString) Len() int {
	return len(r.values.Keys())
}

func (r *InfoString) MarshalJSON() ([]byte, error) {
	return r.values.MarshalJSON()
}
