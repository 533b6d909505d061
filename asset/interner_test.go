package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterner(t *testing.T) {
	interner := NewInterner()

	assert.Equal(t, ScriptString(0), interner.InternOrLookup(""))
	assert.Equal(t, "", interner.Value(0))

	first := interner.InternOrLookup("mp_body_hit")
	second := interner.InternOrLookup("mp_head_hit")
	assert.Equal(t, first, interner.InternOrLookup("mp_body_hit"))
	assert.NotEqual(t, first, second)
	assert.Equal(t, "mp_body_hit", interner.Value(first))
	assert.Equal(t, "mp_head_hit", interner.Value(second))
}

func TestInternerOutOfRangeHandle(t *testing.T) {
	interner := NewInterner()
	assert.Equal(t, "", interner.Value(ScriptString(999)))
}
