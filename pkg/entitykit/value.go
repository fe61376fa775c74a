package entitykit

import (
	"fmt"
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rengaw83/test-entity/pkg/errorkit"
)

// normalize converts a declared value to the type of its destination.
// Numbers are converted between numeric kinds when no information is lost,
// and values are converted to named types of the same kind.
func normalize(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(typ), nil
		default:
			return reflect.Value{}, ErrValueType.F("nil can't be used as %s", typ.String())
		}
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(typ) {
		return rv, nil
	}
	if isNumeric(rv.Kind()) && isNumeric(typ.Kind()) {
		if isUnsigned(typ.Kind()) && ((rv.CanInt() && rv.Int() < 0) || (rv.CanFloat() && rv.Float() < 0)) {
			return reflect.Value{}, ErrValueType.F("%#v doesn't fit into %s", value, typ.String())
		}
		out := rv.Convert(typ)
		if rv.CanFloat() && math.IsNaN(rv.Float()) {
			if !out.CanFloat() {
				return reflect.Value{}, ErrValueType.F("%#v doesn't fit into %s", value, typ.String())
			}
			return out, nil
		}
		if out.Convert(rv.Type()).Interface() != rv.Interface() {
			return reflect.Value{}, ErrValueType.F("%#v doesn't fit into %s", value, typ.String())
		}
		return out, nil
	}
	if rv.Kind() == typ.Kind() && rv.Type().ConvertibleTo(typ) {
		return rv.Convert(typ), nil
	}
	return reflect.Value{}, ErrValueType.F("%T can't be used as %s", value, typ.String())
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isUnsigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isBool(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.IsValid() && rv.Kind() == reflect.Bool
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// IsSame reports whether the two values are the same.
// The dynamic types must match. Pointers, channels and functions are compared by identity,
// every other value is compared by deep equality including unexported fields,
// with the types' Equal methods honoured. NaN is the same as NaN.
func IsSame(expected, actual any) (same bool) {
	ev, av := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if !ev.IsValid() || !av.IsValid() {
		return ev.IsValid() == av.IsValid()
	}
	if ev.Type() != av.Type() {
		return false
	}
	switch ev.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ev.Pointer() == av.Pointer()
	}
	defer errorkit.RecoverWith(func(any) { same = reflect.DeepEqual(expected, actual) })
	return cmp.Equal(expected, actual, exportAll, cmpopts.EquateNaNs())
}

// format renders a value for error messages.
func format(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%#v", v)
}
