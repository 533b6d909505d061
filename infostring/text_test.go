package infostring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToText(t *testing.T) {
	info := New()
	info.SetValueForKey("name", "fx/smoke_trail")
	info.SetValueForKey("speed", "1200")
	info.SetValueForKey("material", "")

	expected := `name                        "fx/smoke_trail"
speed                       "1200"
material                    ""
`
	assert.Equal(t, expected, info.ToText(DefaultKeyColumn))
}

func TestToTextLongKey(t *testing.T) {
	info := New()
	info.SetValueForKey("aVeryLongKeyThatOverflowsThePaddingColumn", "1")

	text := info.ToText(DefaultKeyColumn)
	assert.Equal(t, "aVeryLongKeyThatOverflowsThePaddingColumn\"1\"\n", text)
}

func TestFromText(t *testing.T) {
	text := `
name        "fx/smoke_trail"
// a comment line
speed       1200
material    ""
`
	info, err := FromText(text)
	require.NoError(t, err)

	expectedValues := map[string]string{
		"name":     "fx/smoke_trail",
		"speed":    "1200",
		"material": "",
	}
	assert.Equal(t, []string{"name", "speed", "material"}, info.Keys())
	for key, expected := range expectedValues {
		value, ok := info.ValueForKey(key)
		assert.True(t, ok)
		assert.Equal(t, expected, value)
	}
}

func TestFromTextLastWriteWins(t *testing.T) {
	text := `speed "100"
speed "200"`
	info, err := FromText(text)
	require.NoError(t, err)

	value, _ := info.ValueForKey("speed")
	assert.Equal(t, "200", value)
	assert.Equal(t, 1, info.Len())
}

func TestFromTextQuotedValueWithSpaces(t *testing.T) {
	info, err := FromText(`subtitle "ruin has come to our family"`)
	require.NoError(t, err)

	value, _ := info.ValueForKey("subtitle")
	assert.Equal(t, "ruin has come to our family", value)
}

func TestFromTextUnterminatedQuote(t *testing.T) {
	_, err := FromText(`name "broken`)
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	info := New()
	info.SetValueForKey("name", "tracer_default")
	info.SetValueForKey("speed", "7500")

	parsed, err := FromText(info.ToText(DefaultKeyColumn))
	require.NoError(t, err)
	assert.Equal(t, info.Keys(), parsed.Keys())
	for _, key := range info.Keys() {
		expected, _ := info.ValueForKey(key)
		actual, _ := parsed.ValueForKey(key)
		assert.Equal(t, expected, actual)
	}
}
