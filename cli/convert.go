package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"zonetext/asset"
	"zonetext/csp"
	"zonetext/menu"
	"zonetext/sndbank"
	"zonetext/tracer"
)

// tracerFromJSON builds a tracer from the JSON dump form. Resource members
// carry plain names there.
func tracerFromJSON(data []byte, interner *asset.Interner) (*asset.TracerDef, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("tracerFromJSON error: input is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	tracerDef := &asset.TracerDef{
		Name:         root.Get("name").String(),
		DrawInterval: int32(root.Get("draw_interval").Int()),
		Speed:        float32(root.Get("speed").Float()),
		BeamLength:   float32(root.Get("beam_length").Float()),
		BeamWidth:    float32(root.Get("beam_width").Float()),
		ScrewRadius:  float32(root.Get("screw_radius").Float()),
		ScrewDist:    float32(root.Get("screw_dist").Float()),
		FadeTime:     int32(root.Get("fade_time").Int()),
		ImpactSound:  interner.InternOrLookup(root.Get("impact_sound").String()),
	}
	if materialName := root.Get("material").String(); materialName != "" {
		tracerDef.Material = &asset.Material{Name: materialName}
	}
	if effectName := root.Get("effect").String(); effectName != "" {
		tracerDef.Effect = &asset.FxEffectDef{Name: effectName}
	}

	hitSound, err := sndbank.ResolveAliasToken(root.Get("hit_sound").String())
	if err != nil {
		err := errors.Wrap(err, "tracerFromJSON error")
		return nil, err
	}
	tracerDef.HitSoundHash = hitSound

	return tracerDef, nil
}

// permissiveResolvers accept every non-empty name. The standalone tool has
// no zone database to check against; it can only collect dependencies.
func permissiveResolvers(logger zerolog.Logger) csp.Resolvers {
	logName := func(kind string, name string) {
		logger.Debug().Str("kind", kind).Str("name", name).Msg("resolved reference")
	}
	return csp.Resolvers{
		Effect: func(name string) *asset.FxEffectDef {
			logName(csp.DependencyKindFX, name)
			return &asset.FxEffectDef{Name: name}
		},
		Model: func(name string) *asset.XModel {
			logName(csp.DependencyKindXModel, name)
			return &asset.XModel{Name: name}
		},
		Material: func(name string) *asset.Material {
			logName(csp.DependencyKindMaterial, name)
			return &asset.Material{Name: name}
		},
		PhysPreset: func(name string) *asset.PhysPreset {
			logName(csp.DependencyKindPhysPreset, name)
			return &asset.PhysPreset{Name: name}
		},
		Tracer: func(name string) *asset.TracerDef {
			logName(csp.DependencyKindTracer, name)
			return &asset.TracerDef{Name: name}
		},
	}
}

func writeOutput(path string, text string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// StartDumping converts a JSON tracer dump into InfoString text.
func StartDumping(logger zerolog.Logger, settings *Settings, from string, to string) error {
	data, err := os.ReadFile(from)
	if err != nil {
		return err
	}

	interner := asset.NewInterner()
	tracerDef, err := tracerFromJSON(data, interner)
	if err != nil {
		return err
	}

	text := tracer.DumpInfo(tracerDef, interner.Value).ToText(settings.KeyColumn)
	if err := writeOutput(to, text); err != nil {
		return err
	}
	logger.Info().Str("tracer", tracerDef.Name).Str("path", to).Msg("dumped")
	return nil
}

// StartLoading converts InfoString text into the JSON dump form and
// reports the declared dependencies.
func StartLoading(logger zerolog.Logger, from string, to string, assetName string) error {
	data, err := os.ReadFile(from)
	if err != nil {
		return err
	}
	if assetName == "" {
		assetName = strings.TrimSuffix(filepath.Base(from), filepath.Ext(from))
	}

	interner := asset.NewInterner()
	tracerDef, dependencies, err := tracer.Load(assetName, string(data), permissiveResolvers(logger), interner.InternOrLookup)
	if err != nil {
		return err
	}

	out := orderedmap.New()
	out.Set("name", tracerDef.Name)
	out.Set("material", resourceNameOrEmpty(tracerDef.Material))
	out.Set("draw_interval", tracerDef.DrawInterval)
	out.Set("speed", tracerDef.Speed)
	out.Set("beam_length", tracerDef.BeamLength)
	out.Set("beam_width", tracerDef.BeamWidth)
	out.Set("screw_radius", tracerDef.ScrewRadius)
	out.Set("screw_dist", tracerDef.ScrewDist)
	out.Set("fade_time", tracerDef.FadeTime)
	out.Set("effect", effectNameOrEmpty(tracerDef.Effect))
	out.Set("impact_sound", interner.Value(tracerDef.ImpactSound))
	out.Set("hit_sound", sndbank.AliasToken(tracerDef.HitSoundHash))
	out.Set("dependencies", dependencies)

	outBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := writeOutput(to, string(outBytes)+"\n"); err != nil {
		return err
	}

	for _, dependency := range lo.Map(
		dependencies,
		func(dependency csp.Dependency, _ int) string {
			return dependency.Kind + ":" + dependency.Name
		},
	) {
		logger.Info().Str("dependency", dependency).Msg("declared")
	}
	logger.Info().Str("tracer", tracerDef.Name).Str("path", to).Msg("loaded")
	return nil
}

func resourceNameOrEmpty(material *asset.Material) string {
	if material == nil {
		return ""
	}
	return material.Name
}

func effectNameOrEmpty(effect *asset.FxEffectDef) string {
	if effect == nil {
		return ""
	}
	return effect.Name
}

// StartMenuSerializing renders a statement JSON file back to expression
// text.
func StartMenuSerializing(logger zerolog.Logger, from string, to string, isBooleanStatement bool) error {
	data, err := os.ReadFile(from)
	if err != nil {
		return err
	}

	statement, err := menu.ParseStatementJSON(data)
	if err != nil {
		return err
	}

	text := menu.Serialize(statement, isBooleanStatement) + ";\n"
	if err := writeOutput(to, text); err != nil {
		return err
	}
	logger.Info().Int("entries", len(statement.Entries)).Msg("serialized")
	return nil
}
