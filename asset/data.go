// Package asset stores the named resource types that zone structures point
// to, plus the script string interner shared by loaders and dumpers.
package asset

type (
	// ScriptString is an interned string handle.
	ScriptString uint16

	FxEffectDef struct {
		Name string `json:"name"`
	}
	XModel struct {
		Name string `json:"name"`
	}
	Material struct {
		Name string `json:"name"`
	}
	PhysPreset struct {
		Name string `json:"name"`
	}
	TracerDef struct {
		Name         string       `json:"name"`
		Material     *Material    `json:"material"`
		DrawInterval int32        `json:"draw_interval"`
		Speed        float32      `json:"speed"`
		BeamLength   float32      `json:"beam_length"`
		BeamWidth    float32      `json:"beam_width"`
		ScrewRadius  float32      `json:"screw_radius"`
		ScrewDist    float32      `json:"screw_dist"`
		FadeTime     int32        `json:"fade_time"`
		Effect       *FxEffectDef `json:"effect"`
		ImpactSound  ScriptString `json:"impact_sound"`
		HitSoundHash uint32       `json:"hit_sound_hash"`
	}
	SndAliasList struct {
		AliasName string `json:"alias_name"`
	}
)
