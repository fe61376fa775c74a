package reflectkit

import (
	"reflect"
	"slices"
)

// LookupField searches a struct type for a field that matches the given predicate.
// Promoted fields of embedded structs are included, and just like with the Go selector rules,
// the shallowest match wins. When more than one field matches on the same depth, the lookup is ambiguous and fails.
func LookupField(typ reflect.Type, match func(reflect.StructField) bool) (reflect.StructField, bool) {
	typ = BaseType(typ)
	if typ == nil || typ.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	type node struct {
		Type  reflect.Type
		Index []int
		// Path holds the embedded types leading to Type, to stop at recursive embedding.
		Path []reflect.Type
	}
	var current = []node{{Type: typ, Path: []reflect.Type{typ}}}
	for len(current) != 0 {
		var (
			next  []node
			found []reflect.StructField
		)
		for _, n := range current {
			for i, num := 0, n.Type.NumField(); i < num; i++ {
				sf := n.Type.Field(i)
				sf.Index = append(append([]int{}, n.Index...), i)
				if match(sf) {
					found = append(found, sf)
					continue
				}
				if !sf.Anonymous {
					continue
				}
				et := BaseType(sf.Type)
				if et.Kind() != reflect.Struct || slices.Contains(n.Path, et) {
					continue
				}
				next = append(next, node{
					Type:  et,
					Index: sf.Index,
					Path:  append(append([]reflect.Type{}, n.Path...), et),
				})
			}
		}
		switch len(found) {
		case 0:
			current = next
		case 1:
			return found[0], true
		default:
			return reflect.StructField{}, false
		}
	}
	return reflect.StructField{}, false
}

// FieldByIndex walks the index path of a field returned by LookupField.
// Embedded nil pointers on the path are allocated when alloc is true,
// otherwise the walk reports that the field is unreachable.
func FieldByIndex(rv reflect.Value, index []int, alloc bool) (reflect.Value, bool) {
	rv = BaseValue(rv)
	for i, x := range index {
		if 0 < i {
			for rv.Kind() == reflect.Pointer {
				if rv.IsNil() {
					if !alloc {
						return reflect.Value{}, false
					}
					settable, ok := ToSettable(rv)
					if !ok {
						return reflect.Value{}, false
					}
					settable.Set(reflect.New(rv.Type().Elem()))
					rv = settable
				}
				rv = rv.Elem()
			}
		}
		if rv.Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		rv = rv.Field(x)
	}
	return rv, true
}
