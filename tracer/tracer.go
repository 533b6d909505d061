// Package tracer converts tracer definitions between their structure form
// and the InfoString text form.
package tracer

import (
	"reflect"

	"github.com/pkg/errors"

	"zonetext/asset"
	"zonetext/csp"
	"zonetext/infostring"
	"zonetext/sndbank"
)

// FieldTypeSoundAliasName extends the base field set: a sound alias hash
// whose text form is the human alias name when one is known.
const FieldTypeSoundAliasName = csp.NumBaseFieldTypes

// Fields is the tracer schema. Order defines text emission order.
var Fields = []csp.Field{
	{Key: "material", Member: "Material", Type: csp.FieldTypeMaterial},
	{Key: "drawInterval", Member: "DrawInterval", Type: csp.FieldTypeInt},
	{Key: "speed", Member: "Speed", Type: csp.FieldTypeFloat},
	{Key: "beamLength", Member: "BeamLength", Type: csp.FieldTypeFloat},
	{Key: "beamWidth", Member: "BeamWidth", Type: csp.FieldTypeFloat},
	{Key: "screwRadius", Member: "ScrewRadius", Type: csp.FieldTypeFloat},
	{Key: "screwDist", Member: "ScrewDist", Type: csp.FieldTypeFloat},
	{Key: "fadeTime", Member: "FadeTime", Type: csp.FieldTypeMilliseconds},
	{Key: "effect", Member: "Effect", Type: csp.FieldTypeFX},
	{Key: "impactSound", Member: "ImpactSound", Type: csp.FieldTypeScriptString},
	{Key: "hitSound", Member: "HitSoundHash", Type: FieldTypeSoundAliasName},
}

// DumpInfo converts a tracer to its InfoString form.
func DumpInfo(tracerDef *asset.TracerDef, scriptStringValue csp.ScriptStringValueFunc) *infostring.InfoString {
	converter := csp.NewFromStructConverter(tracerDef, Fields, scriptStringValue)
	converter.OnExtensionField(fillExtensionField)
	return converter.Convert()
}

// Dump renders a tracer to its InfoString text form.
func Dump(tracerDef *asset.TracerDef, scriptStringValue csp.ScriptStringValueFunc) string {
	return DumpInfo(tracerDef, scriptStringValue).ToText(infostring.DefaultKeyColumn)
}

// Load parses InfoString text into a fresh tracer named assetName and
// returns the resolved dependencies. Any field failure makes the whole
// tracer unusable.
func Load(assetName string, text string, resolvers csp.Resolvers, internScriptString csp.InternScriptStringFunc) (*asset.TracerDef, []csp.Dependency, error) {
	info, err := infostring.FromText(text)
	if err != nil {
		err := errors.Wrapf(err, `Load error for tracer "%s"`, assetName)
		return nil, nil, err
	}

	tracerDef := &asset.TracerDef{Name: assetName}
	converter := csp.NewToStructConverter(info, tracerDef, Fields, resolvers, internScriptString)
	converter.OnExtensionField(loadExtensionField)
	if err := converter.Convert(); err != nil {
		err := errors.Wrapf(err, `Load error for tracer "%s"`, assetName)
		return nil, nil, err
	}

	return tracerDef, converter.Dependencies(), nil
}

func fillExtensionField(info *infostring.InfoString, field csp.Field, member reflect.Value) {
	switch field.Type {
	case FieldTypeSoundAliasName:
		info.SetValueForKey(field.Key, sndbank.AliasToken(uint32(member.Uint())))
	}
}

func loadExtensionField(field csp.Field, member reflect.Value, value string) error {
	switch field.Type {
	case FieldTypeSoundAliasName:
		hash, err := sndbank.ResolveAliasToken(value)
		if err != nil {
			return err
		}
		member.SetUint(uint64(hash))
	}
	return nil
}
