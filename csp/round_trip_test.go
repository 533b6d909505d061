package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"zonetext/asset"
	"zonetext/infostring"
)

type RoundTripTestSuite struct {
	Interner  *asset.Interner
	Resolvers Resolvers
	R         *require.Assertions
	suite.Suite
}

func (suite *RoundTripTestSuite) SetupSuite() {
	suite.R = suite.Require()
	suite.Interner = asset.NewInterner()
	suite.Resolvers, _ = testResolvers()
}

func (suite *RoundTripTestSuite) roundTrip(weapon weaponTestDef) weaponTestDef {
	info := NewFromStructConverter(&weapon, weaponTestFields, suite.Interner.Value).Convert()

	text := info.ToText(infostring.DefaultKeyColumn)
	parsed, err := infostring.FromText(text)
	suite.R.NoError(err)

	loaded := weaponTestDef{}
	converter := NewToStructConverter(parsed, &loaded, weaponTestFields, suite.Resolvers, suite.Interner.InternOrLookup)
	suite.R.NoError(converter.Convert())
	return loaded
}

func (suite *RoundTripTestSuite) TestLosslessFields() {
	weapon := weaponTestDef{
		DisplayName: "Commando",
		WorldModel:  "weapon_commando_world",
		AmmoCounter: 30,
		Flags:       17,
		TwoHanded:   true,
		Silenced:    1,
		Spread:      0.65,
		ReloadTime:  2150,
		PickupSound: suite.Interner.InternOrLookup("weap_pickup"),
		FireSoundID: 123456,
	}

	loaded := suite.roundTrip(weapon)
	suite.R.Equal(weapon, loaded)
}

func (suite *RoundTripTestSuite) TestMillisecondsScale() {
	loaded := suite.roundTrip(weaponTestDef{ReloadTime: 1500})
	suite.R.Equal(int32(1500), loaded.ReloadTime)

	info := NewFromStructConverter(&weaponTestDef{ReloadTime: 1500}, weaponTestFields, nil).Convert()
	value, _ := info.ValueForKey("reloadTime")
	suite.R.Equal("1.5", value)
}

func (suite *RoundTripTestSuite) TestOmittedFieldsDecodeToZero() {
	loaded := suite.roundTrip(weaponTestDef{})
	suite.R.Equal("", loaded.DisplayName)
	suite.R.False(loaded.TwoHanded)
	suite.R.Nil(loaded.GunModel)
}

func TestRoundTripTestSuite(t *testing.T) {
	suite.Run(t, new(RoundTripTestSuite))
}
