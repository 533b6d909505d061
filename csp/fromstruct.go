package csp

import (
	"fmt"
	"reflect"
	"strconv"

	"zonetext/asset"
	"zonetext/infostring"
)

type (
	// ExtensionFillFunc handles one extension-typed field on the dump path.
	ExtensionFillFunc func(info *infostring.InfoString, field Field, member reflect.Value)

	FromStructConverter struct {
		structure         reflect.Value
		fields            []Field
		scriptStringValue ScriptStringValueFunc
		fillExtension     ExtensionFillFunc
		info              *infostring.InfoString
	}
)

// NewFromStructConverter wraps a concrete structure for dumping. The
// structure must be a pointer to a struct whose members the schema names;
// it is only read, never retained past Convert.
func NewFromStructConverter(structure any, fields []Field, scriptStringValue ScriptStringValueFunc) *FromStructConverter {
	value := reflect.ValueOf(structure)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("csp: expected a pointer to struct, got %T", structure))
	}
	return &FromStructConverter{
		structure:         value.Elem(),
		fields:            fields,
		scriptStringValue: scriptStringValue,
		info:              infostring.New(),
	}
}

// OnExtensionField installs the hook for field type codes at or above
// NumBaseFieldTypes.
func (r *FromStructConverter) OnExtensionField(fill ExtensionFillFunc) {
	r.fillExtension = fill
}

// Convert walks the schema in order and produces the InfoString. A schema
// that names a missing member or carries an unknown base type code is a
// programming error and panics.
func (r *FromStructConverter) Convert() *infostring.InfoString {
	for _, field := range r.fields {
		if field.Type < NumBaseFieldTypes {
			r.fillFromBaseField(field)
			continue
		}
		if r.fillExtension == nil {
			panic(fmt.Sprintf(`csp: no extension hook for field "%s" (type %d)`, field.Key, field.Type))
		}
		r.fillExtension(r.info, field, r.member(field))
	}
	return r.info
}

func (r *FromStructConverter) member(field Field) reflect.Value {
	value := r.structure.FieldByName(field.Member)
	if !value.IsValid() {
		panic(fmt.Sprintf(`csp: schema member "%s" does not exist on %s`, field.Member, r.structure.Type()))
	}
	return value
}

func (r *FromStructConverter) fillFromBaseField(field Field) {
	member := r.member(field)

	switch field.Type {
	case FieldTypeString,
		FieldTypeStringMaxStringChars,
		FieldTypeStringMaxQPath,
		FieldTypeStringMaxOSPath:
		// empty strings are represented by omitting the key
		if value := member.String(); value != "" {
			r.info.SetValueForKey(field.Key, value)
		}

	case FieldTypeInt:
		r.info.SetValueForKey(field.Key, strconv.FormatInt(member.Int(), 10))

	case FieldTypeUint:
		r.info.SetValueForKey(field.Key, strconv.FormatUint(member.Uint(), 10))

	case FieldTypeBool:
		if member.Bool() {
			r.info.SetValueForKey(field.Key, "1")
		}

	case FieldTypeQBool:
		value := member.Int()
		if value < 0 {
			break
		}
		if value != 0 {
			r.info.SetValueForKey(field.Key, "1")
		} else {
			r.info.SetValueForKey(field.Key, "0")
		}

	case FieldTypeFloat:
		r.info.SetValueForKey(field.Key, strconv.FormatFloat(member.Float(), 'g', -1, 32))

	case FieldTypeMilliseconds:
		seconds := float64(member.Int()) / 1000
		r.info.SetValueForKey(field.Key, strconv.FormatFloat(seconds, 'f', -1, 64))

	case FieldTypeScriptString:
		value := ""
		if r.scriptStringValue != nil {
			value = r.scriptStringValue(asset.ScriptString(member.Uint()))
		}
		r.info.SetValueForKey(field.Key, value)

	case FieldTypeFX, FieldTypeXModel, FieldTypeMaterial, FieldTypePhysPreset, FieldTypeTracer:
		r.info.SetValueForKey(field.Key, resourceName(member))

	case FieldTypeSoundAliasID:
		// the human alias name cannot be recovered from the hash alone
		r.info.SetValueForKey(field.Key, "@"+strconv.FormatUint(member.Uint(), 10))

	default:
		panic(fmt.Sprintf(`csp: unknown base field type %d for field "%s"`, field.Type, field.Key))
	}
}

func resourceName(member reflect.Value) string {
	if member.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("csp: resource member is %s, expected a pointer", member.Kind()))
	}
	if member.IsNil() {
		return ""
	}
	return member.Elem().FieldByName("Name").String()
}
