package entitykit

import (
	"reflect"

	"github.com/rengaw83/test-entity/pkg/errorkit"
	"github.com/rengaw83/test-entity/pkg/reflectkit"
	"github.com/rengaw83/test-entity/pkg/stringkit"
)

var errorType = reflectkit.TypeOf[error]()

// GetterNames lists the candidate getter method names for a property, in order of preference.
func GetterNames(p Property) []string {
	name := stringkit.ToPascal(p.Name)
	var names []string
	if isBool(p.Value) {
		names = append(names, "Is"+name)
	}
	return append(names, "Get"+name, name)
}

// SetterName is the setter method name of a property.
func SetterName(p Property) string {
	return "Set" + stringkit.ToPascal(p.Name)
}

func lookupGetter(rv reflect.Value, p Property) (reflect.Value, string, bool) {
	return reflectkit.LookupMethod(rv, GetterNames(p)...)
}

func lookupSetter(rv reflect.Value, p Property) (reflect.Value, string, bool) {
	return reflectkit.LookupMethod(rv, SetterName(p))
}

// callGetter accepts getters with the signature of `func() T` or `func() (T, error)`.
func callGetter(name string, getter reflect.Value) (any, error) {
	typ := getter.Type()
	if typ.NumIn() != 0 || typ.NumOut() < 1 || 2 < typ.NumOut() ||
		(typ.NumOut() == 2 && typ.Out(1) != errorType) {
		return nil, ErrAccessorSignature.F("%s has the signature of %s, expected func() T or func() (T, error)",
			name, typ.String())
	}
	out, err := call(name, getter, nil)
	if err != nil {
		return nil, err
	}
	if len(out) == 2 && !out[1].IsNil() {
		return nil, ErrGetterFailed.Wrap(out[1].Interface().(error))
	}
	return out[0].Interface(), nil
}

// callSetter accepts setters that return nothing, the entity itself, an error, or the entity and an error.
// The returned entity must be the very same pointer the setter was called on,
// or the embedded struct's pointer when the setter is promoted from it.
func callSetter(name string, setter reflect.Value, ent reflect.Value, value any) error {
	typ := setter.Type()
	if typ.NumIn() != 1 || typ.IsVariadic() || 2 < typ.NumOut() ||
		(typ.NumOut() == 2 && typ.Out(1) != errorType) {
		return ErrAccessorSignature.F("%s has the signature of %s, expected func(T) with an optional self and error return",
			name, typ.String())
	}
	arg, err := normalize(value, typ.In(0))
	if err != nil {
		return err
	}
	out, err := call(name, setter, []reflect.Value{arg})
	if err != nil {
		return err
	}
	for _, o := range out {
		if o.Type() == errorType {
			if !o.IsNil() {
				return ErrSetterFailed.Wrap(o.Interface().(error))
			}
			continue
		}
		if returned := o.Interface(); !isSelf(ent, returned) {
			return ErrSetterNotFluent.F("%s returned %s instead of the entity itself", name, format(returned))
		}
	}
	return nil
}

func call(name string, fn reflect.Value, in []reflect.Value) (out []reflect.Value, err error) {
	defer errorkit.RecoverWith(func(r any) {
		err = ErrAccessorPanic.F("%s: %v", name, r)
	})
	return fn.Call(in), nil
}

// isSelf reports whether a setter returned the entity itself,
// or the pointer of one of its embedded structs.
func isSelf(ent reflect.Value, returned any) bool {
	rv := reflect.ValueOf(returned)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	if rv.Type() == ent.Type() {
		return rv.Pointer() == ent.Pointer()
	}
	for _, ptr := range embeddedPointers(ent, map[embedded]struct{}{}) {
		if ptr.Type() == rv.Type() && ptr.Pointer() == rv.Pointer() {
			return true
		}
	}
	return false
}

type embedded struct {
	Type    reflect.Type
	Pointer uintptr
}

func embeddedPointers(ptr reflect.Value, seen map[embedded]struct{}) []reflect.Value {
	key := embedded{Type: ptr.Type(), Pointer: ptr.Pointer()}
	if _, ok := seen[key]; ok {
		return nil
	}
	seen[key] = struct{}{}
	var (
		out []reflect.Value
		st  = ptr.Elem()
	)
	for i, num := 0, st.NumField(); i < num; i++ {
		if !st.Type().Field(i).Anonymous {
			continue
		}
		var field = st.Field(i)
		switch {
		case field.Kind() == reflect.Struct:
			field = field.Addr()
		case field.Kind() == reflect.Pointer && !field.IsNil() && field.Elem().Kind() == reflect.Struct:
		default:
			continue
		}
		out = append(out, field)
		out = append(out, embeddedPointers(field, seen)...)
	}
	return out
}
