package entitykit

import (
	"reflect"

	"github.com/rengaw83/test-entity/pkg/reflectkit"
)

// Construct makes a new entity.
//
// Without a constructor, the zero value of the entity is allocated.
// The constructor must be a function that returns the entity or a pointer to it,
// optionally followed by an error.
// The arguments are converted to the constructor's parameter types, and variadic constructors are supported.
// A nil argument is passed as the zero value of its parameter.
func Construct[Entity any](ctor any, args ...any) (*Entity, error) {
	if ctor == nil {
		if len(args) != 0 {
			return nil, ErrConstructor.F("%d argument(s) given without a constructor", len(args))
		}
		return new(Entity), nil
	}
	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func {
		return nil, ErrConstructor.F("constructor is expected to be a function, got %T", ctor)
	}
	in, err := constructorArgs(fn.Type(), args)
	if err != nil {
		return nil, err
	}
	typ := fn.Type()
	if typ.NumOut() < 1 || 2 < typ.NumOut() || (typ.NumOut() == 2 && typ.Out(1) != errorType) {
		return nil, ErrConstructor.F("unexpected constructor signature: %s", typ.String())
	}
	out, err := call(typ.String(), fn, in)
	if err != nil {
		return nil, ErrConstructor.Wrap(err)
	}
	if len(out) == 2 && !out[1].IsNil() {
		return nil, ErrConstructor.Wrap(out[1].Interface().(error))
	}
	switch v := out[0].Interface().(type) {
	case *Entity:
		if v == nil {
			return nil, ErrConstructor.F("constructor returned a nil %T", v)
		}
		return v, nil
	case Entity:
		return &v, nil
	default:
		return nil, ErrConstructor.F("constructor returned %T instead of %s",
			out[0].Interface(), reflectkit.TypeOf[Entity]().String())
	}
}

func constructorArgs(typ reflect.Type, args []any) ([]reflect.Value, error) {
	required := typ.NumIn()
	if typ.IsVariadic() {
		required--
	}
	if len(args) < required || (!typ.IsVariadic() && required < len(args)) {
		return nil, ErrConstructor.F("%s expects %d argument(s), got %d", typ.String(), required, len(args))
	}
	in := make([]reflect.Value, 0, len(args))
	for i, arg := range args {
		var paramType reflect.Type
		if typ.IsVariadic() && required <= i {
			paramType = typ.In(typ.NumIn() - 1).Elem()
		} else {
			paramType = typ.In(i)
		}
		if arg == nil {
			in = append(in, reflect.Zero(paramType))
			continue
		}
		v, err := normalize(arg, paramType)
		if err != nil {
			return nil, ErrConstructor.F("argument #%d: %w", i, err)
		}
		in = append(in, v)
	}
	return in, nil
}
