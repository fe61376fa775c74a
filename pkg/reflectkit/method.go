package reflectkit

import (
	"reflect"
	"strings"
)

// LookupMethod returns the first method of the value which is named after one of the candidates.
// Exact names are tried first, in order, then a case-insensitive match is attempted.
func LookupMethod(rv reflect.Value, names ...string) (reflect.Value, string, bool) {
	if !rv.IsValid() {
		return reflect.Value{}, "", false
	}
	for _, name := range names {
		if m := rv.MethodByName(name); m.IsValid() {
			return m, name, true
		}
	}
	typ := rv.Type()
	for _, name := range names {
		for i, num := 0, typ.NumMethod(); i < num; i++ {
			if method := typ.Method(i); strings.EqualFold(method.Name, name) {
				return rv.Method(i), method.Name, true
			}
		}
	}
	return reflect.Value{}, "", false
}
