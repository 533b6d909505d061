package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"zonetext/infostring"
)

const tracerJSON = `{
  "name": "bullet_tracer",
  "material": "gfx/tracer_beam",
  "draw_interval": 2,
  "speed": 7500,
  "beam_length": 30,
  "beam_width": 1.5,
  "screw_radius": 0,
  "screw_dist": 0,
  "fade_time": 200,
  "effect": "fx/smoke_trail",
  "impact_sound": "bullet_impact",
  "hit_sound": "weap_pickup"
}`

func TestStartDumping(t *testing.T) {
	logger := zerolog.Nop()
	from := writeTempFile(t, "bullet.tracer.json", tracerJSON)
	to := filepath.Join(t.TempDir(), "bullet.tracer")

	err := StartDumping(logger, DefaultSettings(), from, to)
	require.NoError(t, err)

	data, err := os.ReadFile(to)
	require.NoError(t, err)
	info, err := infostring.FromText(string(data))
	require.NoError(t, err)
	expectedValues := map[string]string{
		"material":    "gfx/tracer_beam",
		"speed":       "7500",
		"impactSound": "bullet_impact",
		"hitSound":    "weap_pickup",
	}
	for key, expected := range expectedValues {
		value, ok := info.ValueForKey(key)
		assert.True(t, ok, key)
		assert.Equal(t, expected, value, key)
	}

	t.Run("invalid JSON", func(t *testing.T) {
		from := writeTempFile(t, "broken.tracer.json", "{")
		err := StartDumping(logger, DefaultSettings(), from, filepath.Join(t.TempDir(), "broken.tracer"))
		assert.Error(t, err)
	})
	t.Run("missing source", func(t *testing.T) {
		err := StartDumping(logger, DefaultSettings(), filepath.Join(t.TempDir(), "nothing.json"), to)
		assert.Error(t, err)
	})
}

func TestStartLoading(t *testing.T) {
	logger := zerolog.Nop()
	text := "material \"gfx/tracer_beam\"\n" +
		"speed \"7500\"\n" +
		"beamWidth \"1.5\"\n" +
		"effect \"fx/smoke_trail\"\n" +
		"hitSound \"weap_pickup\"\n"
	from := writeTempFile(t, "bullet.tracer", text)
	to := filepath.Join(t.TempDir(), "bullet.tracer.json")

	err := StartLoading(logger, from, to, "")
	require.NoError(t, err)

	data, err := os.ReadFile(to)
	require.NoError(t, err)
	root := gjson.ParseBytes(data)
	assert.Equal(t, "bullet", root.Get("name").String())
	assert.Equal(t, "gfx/tracer_beam", root.Get("material").String())
	assert.Equal(t, float64(7500), root.Get("speed").Float())
	assert.Equal(t, "weap_pickup", root.Get("hit_sound").String())
	dependencies := root.Get("dependencies").Array()
	require.Len(t, dependencies, 2)
	assert.Equal(t, "material", dependencies[0].Get("kind").String())
	assert.Equal(t, "fx", dependencies[1].Get("kind").String())

	t.Run("explicit asset name", func(t *testing.T) {
		to := filepath.Join(t.TempDir(), "named.json")
		err := StartLoading(logger, from, to, "tracer_default")
		require.NoError(t, err)
		data, err := os.ReadFile(to)
		require.NoError(t, err)
		assert.Equal(t, "tracer_default", gjson.GetBytes(data, "name").String())
	})
	t.Run("malformed text", func(t *testing.T) {
		from := writeTempFile(t, "broken.tracer", "speed \"fast\"\n")
		err := StartLoading(logger, from, filepath.Join(t.TempDir(), "broken.json"), "")
		assert.Error(t, err)
	})
}

func TestStartMenuSerializing(t *testing.T) {
	logger := zerolog.Nop()
	statementJSON := `{
  "entries": [
    {"op": "("},
    {"int": 1},
    {"op": ")"}
  ]
}`
	from := writeTempFile(t, "visible.stmt.json", statementJSON)
	to := filepath.Join(t.TempDir(), "visible.stmt")

	err := StartMenuSerializing(logger, from, to, true)
	require.NoError(t, err)

	data, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "when(1);\n", string(data))

	t.Run("plain statement", func(t *testing.T) {
		to := filepath.Join(t.TempDir(), "plain.stmt")
		err := StartMenuSerializing(logger, from, to, false)
		require.NoError(t, err)
		data, err := os.ReadFile(to)
		require.NoError(t, err)
		assert.Equal(t, "(1);\n", string(data))
	})
	t.Run("unknown operator", func(t *testing.T) {
		from := writeTempFile(t, "bad.stmt.json", `{"entries": [{"op": "frobnicate"}]}`)
		err := StartMenuSerializing(logger, from, filepath.Join(t.TempDir(), "bad.stmt"), false)
		assert.Error(t, err)
	})
}
