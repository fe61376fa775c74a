package reflectkit

import (
	"fmt"
	"reflect"
)

// TypeOf returns the static type of T.
// Unlike reflect.TypeOf, it works for interface types as well.
func TypeOf[T any](i ...T) reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func BaseTypeOf(i interface{}) reflect.Type {
	return BaseType(reflect.TypeOf(i))
}

func BaseType(typ reflect.Type) reflect.Type {
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

func BaseValueOf(i interface{}) reflect.Value {
	return BaseValue(reflect.ValueOf(i))
}

func BaseValue(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

func SymbolicName(e interface{}) string {
	return BaseTypeOf(e).String()
}

func FullyQualifiedName(e interface{}) string {
	t := BaseTypeOf(e)

	if t.PkgPath() == "" {
		return t.String()
	}

	return fmt.Sprintf("%q.%s", t.PkgPath(), t.Name())
}

func IsValueNil(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	case reflect.Invalid:
		return true
	default:
		return false
	}
}
