package csp

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"zonetext/infostring"
)

type (
	// ExtensionLoadFunc handles one extension-typed field on the load path.
	ExtensionLoadFunc func(field Field, member reflect.Value, value string) error

	ToStructConverter struct {
		info               *infostring.InfoString
		structure          reflect.Value
		fields             []Field
		resolvers          Resolvers
		internScriptString InternScriptStringFunc
		loadExtension      ExtensionLoadFunc
		dependencies       []Dependency
	}
)

// NewToStructConverter wraps a caller-provided destination structure for
// loading. The structure must be a pointer to a zero-initialized struct;
// missing keys leave their members at the zero value.
func NewToStructConverter(info *infostring.InfoString, structure any, fields []Field, resolvers Resolvers, internScriptString InternScriptStringFunc) *ToStructConverter {
	value := reflect.ValueOf(structure)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("csp: expected a pointer to struct, got %T", structure))
	}
	return &ToStructConverter{
		info:               info,
		structure:          value.Elem(),
		fields:             fields,
		resolvers:          resolvers,
		internScriptString: internScriptString,
	}
}

func (r *ToStructConverter) OnExtensionField(load ExtensionLoadFunc) {
	r.loadExtension = load
}

// Convert walks the schema in order and populates the structure. The first
// failing field aborts the conversion; the structure must then be treated
// as unusable by the caller.
func (r *ToStructConverter) Convert() error {
	for _, field := range r.fields {
		value, ok := r.info.ValueForKey(field.Key)
		if !ok {
			continue
		}

		err := error(nil)
		if field.Type < NumBaseFieldTypes {
			err = r.loadBaseField(field, value)
		} else if r.loadExtension != nil {
			err = r.loadExtension(field, r.member(field), value)
		} else {
			panic(fmt.Sprintf(`csp: no extension hook for field "%s" (type %d)`, field.Key, field.Type))
		}
		if err != nil {
			err := errors.Wrapf(err, `Convert error at field "%s"`, field.Key)
			return err
		}
	}
	return nil
}

// Dependencies lists every resource reference resolved so far, in schema
// order.
func (r *ToStructConverter) Dependencies() []Dependency {
	return r.dependencies
}

func (r *ToStructConverter) member(field Field) reflect.Value {
	value := r.structure.FieldByName(field.Member)
	if !value.IsValid() {
		panic(fmt.Sprintf(`csp: schema member "%s" does not exist on %s`, field.Member, r.structure.Type()))
	}
	return value
}

func (r *ToStructConverter) loadBaseField(field Field, value string) error {
	member := r.member(field)

	switch field.Type {
	case FieldTypeString:
		member.SetString(value)

	case FieldTypeStringMaxStringChars:
		return setStringBuffer(field, member, value, MaxStringChars)

	case FieldTypeStringMaxQPath:
		return setStringBuffer(field, member, value, MaxQPath)

	case FieldTypeStringMaxOSPath:
		return setStringBuffer(field, member, value, MaxOSPath)

	case FieldTypeInt:
		parsed, err := strconv.ParseInt(value, 10, member.Type().Bits())
		if err != nil {
			return err
		}
		member.SetInt(parsed)

	case FieldTypeUint:
		parsed, err := strconv.ParseUint(value, 10, member.Type().Bits())
		if err != nil {
			return err
		}
		member.SetUint(parsed)

	case FieldTypeBool:
		switch value {
		case "1", "true":
			member.SetBool(true)
		case "0", "false":
			member.SetBool(false)
		default:
			return fmt.Errorf(`"%s" is not a boolean token`, value)
		}

	case FieldTypeQBool:
		switch value {
		case "unset":
			member.SetInt(int64(QBoolUnset))
		case "1":
			member.SetInt(1)
		case "0":
			member.SetInt(0)
		default:
			return fmt.Errorf(`"%s" is not a tri-state boolean token`, value)
		}

	case FieldTypeFloat:
		parsed, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return err
		}
		member.SetFloat(parsed)

	case FieldTypeMilliseconds:
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		member.SetInt(int64(math.Round(seconds * 1000)))

	case FieldTypeScriptString:
		if r.internScriptString == nil {
			return errors.New("no script string interner was provided")
		}
		member.SetUint(uint64(r.internScriptString(value)))

	case FieldTypeFX:
		return loadResource(r, field, member, value, DependencyKindFX, r.resolvers.Effect)

	case FieldTypeXModel:
		return loadResource(r, field, member, value, DependencyKindXModel, r.resolvers.Model)

	case FieldTypeMaterial:
		return loadResource(r, field, member, value, DependencyKindMaterial, r.resolvers.Material)

	case FieldTypePhysPreset:
		return loadResource(r, field, member, value, DependencyKindPhysPreset, r.resolvers.PhysPreset)

	case FieldTypeTracer:
		return loadResource(r, field, member, value, DependencyKindTracer, r.resolvers.Tracer)

	case FieldTypeSoundAliasID:
		if value == "" {
			break
		}
		if !strings.HasPrefix(value, "@") {
			// name-to-hash resolution is an asset-specific extension;
			// the base converter only understands the literal form
			return fmt.Errorf(`"%s" is not an @hash sound alias token`, value)
		}
		parsed, err := strconv.ParseUint(value[1:], 10, 32)
		if err != nil {
			return err
		}
		member.SetUint(parsed)

	default:
		panic(fmt.Sprintf(`csp: unknown base field type %d for field "%s"`, field.Type, field.Key))
	}
	return nil
}

func setStringBuffer(field Field, member reflect.Value, value string, capacity int) error {
	// the binary form stores the terminating zero inside the buffer
	if len(value) >= capacity {
		return CapacityError{
			Key:      field.Key,
			Capacity: capacity,
			Length:   len(value),
		}
	}
	member.SetString(value)
	return nil
}

func loadResource[T any](r *ToStructConverter, field Field, member reflect.Value, value string, kind string, resolve func(name string) *T) error {
	// an empty value means "no reference"
	if value == "" {
		return nil
	}
	if resolve == nil {
		return UnresolvedReferenceError{Kind: kind, Name: value}
	}
	resolved := resolve(value)
	if resolved == nil {
		return UnresolvedReferenceError{Kind: kind, Name: value}
	}
	member.Set(reflect.ValueOf(resolved))
	r.dependencies = append(
		r.dependencies,
		Dependency{Kind: kind, Name: value},
	)
	return nil
}
