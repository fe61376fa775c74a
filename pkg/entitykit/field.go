package entitykit

import (
	"reflect"
	"strings"

	"github.com/rengaw83/test-entity/pkg/reflectkit"
	"github.com/rengaw83/test-entity/pkg/stringkit"
)

type fieldSpec struct {
	Field    reflect.StructField
	ReadOnly bool
}

type tagInfo struct {
	Name     string
	ReadOnly bool
	Ignored  bool
}

func parseTag(sf reflect.StructField) (tagInfo, bool) {
	raw, ok := sf.Tag.Lookup(TagKey)
	if !ok {
		return tagInfo{}, false
	}
	parts := strings.Split(raw, ",")
	info := tagInfo{Name: strings.TrimSpace(parts[0])}
	if info.Name == "-" {
		info.Ignored = true
	}
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == "readonly" {
			info.ReadOnly = true
		}
	}
	return info, true
}

func lookupField(typ reflect.Type, name string) (fieldSpec, bool) {
	pascal := stringkit.ToPascal(name)
	usable := func(sf reflect.StructField) bool {
		info, ok := parseTag(sf)
		return !ok || !info.Ignored
	}
	matchers := []func(reflect.StructField) bool{
		func(sf reflect.StructField) bool {
			info, ok := parseTag(sf)
			return ok && info.Name != "" && info.Name == name
		},
		func(sf reflect.StructField) bool { return sf.Name == name },
		func(sf reflect.StructField) bool { return sf.Name == pascal },
		func(sf reflect.StructField) bool { return strings.EqualFold(sf.Name, name) },
	}
	for _, match := range matchers {
		sf, ok := reflectkit.LookupField(typ, func(sf reflect.StructField) bool {
			return usable(sf) && match(sf)
		})
		if !ok {
			continue
		}
		info, _ := parseTag(sf)
		return fieldSpec{Field: sf, ReadOnly: info.ReadOnly}, true
	}
	return fieldSpec{}, false
}

// entityValue returns the pointer value of the entity.
func entityValue(ent any) (reflect.Value, error) {
	rv := reflect.ValueOf(ent)
	if reflectkit.IsValueNil(rv) {
		return reflect.Value{}, ErrEntityNil
	}
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotStruct.F("received %T", ent)
	}
	return rv, nil
}

func lookupProperty(rv reflect.Value, name string) (fieldSpec, error) {
	fld, ok := lookupField(rv.Type(), name)
	if !ok {
		return fieldSpec{}, ErrPropertyNotFound.F("entity %q has no field for property %q",
			reflectkit.SymbolicName(rv.Interface()), name)
	}
	return fld, nil
}

// GetProperty reads the field that belongs to the property,
// regardless of whether the field is exported or promoted from an embedded struct.
func GetProperty(ent any, name string) (any, error) {
	rv, err := entityValue(ent)
	if err != nil {
		return nil, err
	}
	fld, err := lookupProperty(rv, name)
	if err != nil {
		return nil, err
	}
	return getField(rv, fld)
}

func getField(rv reflect.Value, fld fieldSpec) (any, error) {
	field, ok := reflectkit.FieldByIndex(rv, fld.Field.Index, false)
	if !ok { // behind a nil embedded pointer
		return reflect.Zero(fld.Field.Type).Interface(), nil
	}
	field, ok = reflectkit.ToAccessible(field)
	if !ok {
		return nil, ErrPropertyNotFound.F("field %s is not accessible", fld.Field.Name)
	}
	return field.Interface(), nil
}

// SetProperty writes the value into the field that belongs to the property,
// regardless of whether the field is exported or promoted from an embedded struct.
// Nil embedded pointers on the way to the field are allocated.
func SetProperty(ent any, name string, value any) error {
	rv, err := entityValue(ent)
	if err != nil {
		return err
	}
	fld, err := lookupProperty(rv, name)
	if err != nil {
		return err
	}
	return setField(rv, fld, value)
}

func setField(rv reflect.Value, fld fieldSpec, value any) error {
	val, err := normalize(value, fld.Field.Type)
	if err != nil {
		return err
	}
	field, ok := reflectkit.FieldByIndex(rv, fld.Field.Index, true)
	if !ok {
		return ErrPropertyNotFound.F("field %s is not reachable", fld.Field.Name)
	}
	field, ok = reflectkit.ToSettable(field)
	if !ok {
		return ErrPropertyNotFound.F("field %s is not settable", fld.Field.Name)
	}
	field.Set(val)
	return nil
}
