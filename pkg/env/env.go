// Package env loads configuration values from the process environment.
package env

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rengaw83/test-entity/pkg/errorkit"
	"github.com/rengaw83/test-entity/pkg/reflectkit"
)

const (
	ErrLoadInvalidData errorkit.Error = "ErrLoadInvalidData"
	ErrParse           errorkit.Error = "ErrParse"
)

func Lookup[T any](key string, opts ...LookupOption) (T, bool, error) {
	var conf lookupEnvOptions
	for _, opt := range opts {
		opt.configure(&conf)
	}
	val, ok, err := lookupEnv(reflectkit.TypeOf[T](), key, conf)
	if err != nil || !ok {
		return *new(T), ok, err
	}
	return val.Interface().(T), true, nil
}

type LookupOption interface{ configure(*lookupEnvOptions) }

type funcLookupOption func(*lookupEnvOptions)

func (fn funcLookupOption) configure(options *lookupEnvOptions) { fn(options) }

func DefaultValue(val string) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.DefaultValue = &val
	})
}

func ListSeparator(sep string) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.Separator = sep
	})
}

func Required() LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.IsRequired = true
	})
}

// Load fills the exported fields of a struct that are tagged with `env:"KEY"`.
// Untagged struct fields are visited recursively.
func Load[T any](ptr *T) error {
	if ptr == nil {
		return ErrLoadInvalidData.F("nil value received")
	}
	rv := reflectkit.BaseValue(reflect.ValueOf(ptr))
	if rv.Kind() != reflect.Struct {
		return ErrLoadInvalidData.F("non-struct type received: %s", rv.Type().String())
	}
	return loadVisitStruct(rv)
}

func loadVisitStruct(rStruct reflect.Value) error {
	var errs []error
	for i, numField := 0, rStruct.NumField(); i < numField; i++ {
		rStructField := rStruct.Type().Field(i)
		if !rStructField.IsExported() {
			continue
		}
		field := rStruct.Field(i)

		osEnvKey, ok := rStructField.Tag.Lookup(envTagKey)
		if !ok {
			if field.Kind() == reflect.Struct {
				errs = append(errs, loadVisitStruct(field))
			}
			continue
		}

		opts, err := getLookupEnvOptions(rStructField.Tag)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		val, ok, err := lookupEnv(field.Type(), osEnvKey, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing the value for %s: %w", rStructField.Name, err))
			continue
		}
		if ok {
			field.Set(val)
		}
	}
	return errorkit.Merge(errs...)
}

const envTagKey = "env"

var (
	tagsForDefaultValue = []string{"env-default", "default"}
	tagsForRequired     = []string{"env-required", "required"}
	tagsForSeparator    = []string{"env-separator", "separator"}
)

func getLookupEnvOptions(tag reflect.StructTag) (lookupEnvOptions, error) {
	var opts lookupEnvOptions
	for _, key := range tagsForDefaultValue {
		if value, ok := tag.Lookup(key); ok {
			opts.DefaultValue = &value
			break
		}
	}
	for _, key := range tagsForRequired {
		value, ok := tag.Lookup(key)
		if !ok {
			continue
		}
		isRequired, err := strconv.ParseBool(value)
		if err != nil {
			return opts, err
		}
		opts.IsRequired = isRequired
		break
	}
	for _, key := range tagsForSeparator {
		if value, ok := tag.Lookup(key); ok {
			opts.Separator = value
			break
		}
	}
	return opts, nil
}

type lookupEnvOptions struct {
	DefaultValue *string
	Separator    string
	IsRequired   bool
}

func lookupEnv(typ reflect.Type, key string, opts lookupEnvOptions) (reflect.Value, bool, error) {
	val, ok := os.LookupEnv(key)
	if !ok && opts.DefaultValue != nil {
		ok = true
		val = *opts.DefaultValue
	}
	if !ok {
		if opts.IsRequired {
			return reflect.Value{}, false, fmt.Errorf("missing environment variable: %s", key)
		}
		return reflect.Value{}, false, nil
	}
	sep := opts.Separator
	if sep == "" {
		sep = ","
	}
	rv, err := parse(typ, val, sep)
	if err != nil {
		return reflect.Value{}, false, err
	}
	return rv, true, nil
}

var durationType = reflectkit.TypeOf[time.Duration]()

func parse(typ reflect.Type, raw string, sep string) (reflect.Value, error) {
	out := reflect.New(typ).Elem()
	if typ == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return reflect.Value{}, ErrParse.Wrap(err)
		}
		out.SetInt(int64(d))
		return out, nil
	}
	switch typ.Kind() {
	case reflect.String:
		out.SetString(raw)
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return reflect.Value{}, ErrParse.Wrap(err)
		}
		out.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, ErrParse.Wrap(err)
		}
		out.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, ErrParse.Wrap(err)
		}
		out.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(raw, typ.Bits())
		if err != nil {
			return reflect.Value{}, ErrParse.Wrap(err)
		}
		out.SetFloat(v)
	case reflect.Slice:
		if raw == "" {
			out.Set(reflect.MakeSlice(typ, 0, 0))
			return out, nil
		}
		parts := strings.Split(raw, sep)
		slice := reflect.MakeSlice(typ, 0, len(parts))
		for _, part := range parts {
			elem, err := parse(typ.Elem(), strings.TrimSpace(part), sep)
			if err != nil {
				return reflect.Value{}, err
			}
			slice = reflect.Append(slice, elem)
		}
		out.Set(slice)
	default:
		return reflect.Value{}, ErrParse.F("unsupported type: %s", typ.String())
	}
	return out, nil
}
