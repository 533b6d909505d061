// Package csp stores the field schema tables and the generic
// structure-to-InfoString converter pair that is driven by them.
//
// A schema is an ordered table of Field descriptors. The converters only
// touch structure members that the table names; the structure is otherwise
// opaque to them. Member access goes through reflection, which is the
// memory-safe stand-in for the byte offsets the original binary layout
// tables carried.
package csp

import (
	"fmt"

	"zonetext/asset"
)

type (
	FieldType int

	Field struct {
		Key    string    `json:"key"`
		Member string    `json:"member"`
		Type   FieldType `json:"type"`
	}

	// ScriptStringValueFunc resolves an interned string handle back to its
	// text on the dump path.
	ScriptStringValueFunc func(handle asset.ScriptString) string

	// InternScriptStringFunc interns text into a handle on the load path.
	InternScriptStringFunc func(value string) asset.ScriptString

	// Resolvers are the per-kind name lookups injected into the load
	// converter. A lookup returning nil for a non-empty name fails the
	// whole conversion.
	Resolvers struct {
		Effect     func(name string) *asset.FxEffectDef
		Model      func(name string) *asset.XModel
		Material   func(name string) *asset.Material
		PhysPreset func(name string) *asset.PhysPreset
		Tracer     func(name string) *asset.TracerDef
	}

	// Dependency is one successfully resolved resource reference. The
	// caller needs these for asset graph tracking.
	Dependency struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}
)

const (
	FieldTypeString FieldType = iota
	FieldTypeStringMaxStringChars
	FieldTypeStringMaxQPath
	FieldTypeStringMaxOSPath
	FieldTypeInt
	FieldTypeUint
	FieldTypeBool
	FieldTypeQBool
	FieldTypeFloat
	FieldTypeMilliseconds
	FieldTypeScriptString
	FieldTypeFX
	FieldTypeXModel
	FieldTypeMaterial
	FieldTypePhysPreset
	FieldTypeTracer
	FieldTypeSoundAliasID
	// NumBaseFieldTypes is the first extension type code. Codes at or above
	// it are dispatched to the hook the asset-specific loader installs.
	NumBaseFieldTypes
)

const (
	MaxStringChars = 1024
	MaxQPath       = 64
	MaxOSPath      = 256
)

const (
	DependencyKindFX         = "fx"
	DependencyKindXModel     = "xmodel"
	DependencyKindMaterial   = "material"
	DependencyKindPhysPreset = "physpreset"
	DependencyKindTracer     = "tracer"
)

// QBool fields are tri-state: 0 and 1 plus a negative "unset" value that is
// omitted from the text form.
const QBoolUnset = int32(-1)

type (
	CapacityError struct {
		Key      string
		Capacity int
		Length   int
	}
	UnresolvedReferenceError struct {
		Kind string
		Name string
	}
)

func (r CapacityError) Error() string {
	msg := fmt.Sprintf(
		`value of field "%s" is %d characters long; the buffer holds at most %d`,
		r.Key, r.Length, r.Capacity-1,
	)
	return msg
}

func (r UnresolvedReferenceError) Error() string {
	msg := fmt.Sprintf(
		`referenced %s "%s" was not found`,
		r.Kind, r.Name,
	)
	return msg
}
