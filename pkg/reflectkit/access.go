package reflectkit

import "reflect"

// ToSettable will make an addressable value settable, even if it was obtained through an unexported struct field.
func ToSettable(rv reflect.Value) (_ reflect.Value, ok bool) {
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	if rv.CanSet() {
		return rv, true
	}
	if rv.CanAddr() {
		if uv := reflect.NewAt(rv.Type(), rv.Addr().UnsafePointer()).Elem(); uv.CanInterface() {
			return uv, true
		}
	}
	return reflect.Value{}, false
}

// ToAccessible returns a value which can be used with reflect.Value#Interface.
func ToAccessible(rv reflect.Value) (reflect.Value, bool) {
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	if rv.CanInterface() {
		return rv, true
	}
	return ToSettable(rv)
}
