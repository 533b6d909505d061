package sndbank

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliasCSV = `name,file,vol_min,vol_max,dist_max,limit_count,loop,subtitle
weap_ar_fire,weapons/ar_fire_01.wav,90,100,1500,4,,
weap_ar_fire,weapons/ar_fire_02.wav,90,100,1500,4,,
weap_ar_fire,weapons/ar_fire_03.wav,90,100,1500,4,,
amb_wind_gusts,amb/wind_gusts.wav,40,60,0,0,looping,
ui_focus,ui/focus.wav,80,80,0,1,,"menu focus blip"
`

func TestParseAliasCSV(t *testing.T) {
	aliases, err := ParseAliasCSV(strings.NewReader(aliasCSV))
	require.NoError(t, err)
	require.Len(t, aliases, 5)

	first := aliases[0]
	assert.Equal(t, "weap_ar_fire", first.Name)
	assert.Equal(t, HashName("weap_ar_fire"), first.ID)
	assert.Equal(t, "weapons/ar_fire_01.wav", first.FileName)
	assert.Equal(t, HashName("weapons/ar_fire_01.wav"), first.FileID)
	assert.Equal(t, uint16(90), first.VolMin)
	assert.Equal(t, uint16(100), first.VolMax)
	assert.Equal(t, uint16(1500), first.DistMax)
	assert.Equal(t, uint8(4), first.LimitCount)
	assert.False(t, first.Looping)

	assert.True(t, aliases[3].Looping)
	assert.Equal(t, "menu focus blip", aliases[4].Subtitle)
}

func TestParseAliasCSVStopsAtEmptyName(t *testing.T) {
	csv := `name,file
weap_ar_fire,weapons/ar_fire_01.wav
,weapons/orphan.wav
ui_focus,ui/focus.wav
`
	aliases, err := ParseAliasCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, aliases, 1)
}

func TestParseAliasCSVMissingFile(t *testing.T) {
	csv := `name,file
weap_ar_fire,
`
	_, err := ParseAliasCSV(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestParseAliasCSVMalformedNumber(t *testing.T) {
	csv := `name,file,vol_min
weap_ar_fire,weapons/ar_fire_01.wav,loud
`
	_, err := ParseAliasCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vol_min")
}

func TestGroupAliases(t *testing.T) {
	aliases, err := ParseAliasCSV(strings.NewReader(aliasCSV))
	require.NoError(t, err)

	groups := GroupAliases(aliases)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 3)
	assert.Equal(
		t,
		[]string{"weap_ar_fire", "amb_wind_gusts", "ui_focus"},
		lo.Map(
			groups,
			func(group []Alias, _ int) string {
				return group[0].Name
			},
		),
	)
}

func TestParseLoadedSoundsJSON(t *testing.T) {
	sounds, err := ParseLoadedSoundsJSON([]byte(`{"loadedSounds": ["weapons/ar_fire_01", "ui/focus"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"weapons/ar_fire_01", "ui/focus"}, sounds)

	_, err = ParseLoadedSoundsJSON([]byte(`{"loadedSounds": 3}`))
	assert.Error(t, err)

	_, err = ParseLoadedSoundsJSON([]byte(`{`))
	assert.Error(t, err)
}
