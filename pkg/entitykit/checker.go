package entitykit

import (
	"context"
	"slices"
	"strings"

	"github.com/rengaw83/test-entity/pkg/logger"
	"github.com/rengaw83/test-entity/pkg/reflectkit"
)

// Checker verifies the accessors of an entity, one property at a time.
type Checker struct {
	// ReadOnly lists the properties which are read-only in addition to the ones tagged as such.
	ReadOnly []string
	// RequireSetter makes a missing setter an error,
	// instead of writing the property directly.
	RequireSetter bool
	// Logger receives the accessor resolution details.
	// When nil, logger.Default is used.
	Logger *logger.Logger
}

// Getter checks that the property's getter returns the value held by the property.
// The value is written into the field directly before the getter is called.
func (c Checker) Getter(ctx context.Context, ent any, p Property) error {
	rv, err := entityValue(ent)
	if err != nil {
		return err
	}
	fld, err := lookupProperty(rv, p.Name)
	if err != nil {
		return err
	}
	expected, err := normalize(p.Value, fld.Field.Type)
	if err != nil {
		return err
	}
	if err := setField(rv, fld, p.Value); err != nil {
		return err
	}
	var (
		kind       = getterKind(p)
		entityName = reflectkit.SymbolicName(ent)
	)
	getter, name, ok := lookupGetter(rv, p)
	if !ok {
		return ErrGetterNotFound.F("entity %q has no %s for property %q (tried: %s)",
			entityName, kind, p.Name, strings.Join(GetterNames(p), ", "))
	}
	c.logger().Debug(ctx, "getter resolved",
		logger.Field("entity", entityName),
		logger.Field("property", p.Name),
		logger.Field("method", name))

	actual, err := callGetter(name, getter)
	if err != nil {
		return err
	}
	if !IsSame(expected.Interface(), actual) {
		return ErrGetterMismatch.F("the %s %s for property %q of entity %q does not return the value held by the property: expected %s, got %s",
			kind, name, p.Name, entityName, format(expected.Interface()), format(actual))
	}
	return nil
}

// Setter checks that the property's setter stores the value in the property.
// A read-only property results in ErrReadOnly.
// Without a setter method, the value is written directly, unless RequireSetter is set.
func (c Checker) Setter(ctx context.Context, ent any, p Property) error {
	rv, err := entityValue(ent)
	if err != nil {
		return err
	}
	fld, err := lookupProperty(rv, p.Name)
	if err != nil {
		return err
	}
	entityName := reflectkit.SymbolicName(ent)
	if c.isReadOnly(fld, p) {
		return ErrReadOnly.F("property %q of entity %q is read-only", p.Name, entityName)
	}
	expected, err := normalize(p.Value, fld.Field.Type)
	if err != nil {
		return err
	}
	if setter, name, ok := lookupSetter(rv, p); ok {
		c.logger().Debug(ctx, "setter resolved",
			logger.Field("entity", entityName),
			logger.Field("property", p.Name),
			logger.Field("method", name))
		if err := callSetter(name, setter, rv, p.Value); err != nil {
			return err
		}
	} else {
		if c.RequireSetter {
			return ErrSetterNotFound.F("entity %q has no %s method for property %q",
				entityName, SetterName(p), p.Name)
		}
		c.logger().Info(ctx, "setter is missing, the property is written directly",
			logger.Field("entity", entityName),
			logger.Field("property", p.Name))
		if err := setField(rv, fld, p.Value); err != nil {
			return err
		}
	}
	actual, err := getField(rv, fld)
	if err != nil {
		return err
	}
	if !IsSame(expected.Interface(), actual) {
		return ErrSetterMismatch.F("the property %q of entity %q does not contain the correct value after calling the setter: expected %s, got %s",
			p.Name, entityName, format(expected.Interface()), format(actual))
	}
	return nil
}

// IsReadOnly reports whether the property is read-only for the entity.
func (c Checker) IsReadOnly(ent any, p Property) (bool, error) {
	rv, err := entityValue(ent)
	if err != nil {
		return false, err
	}
	fld, err := lookupProperty(rv, p.Name)
	if err != nil {
		return false, err
	}
	return c.isReadOnly(fld, p), nil
}

func (c Checker) isReadOnly(fld fieldSpec, p Property) bool {
	return fld.ReadOnly || slices.Contains(c.ReadOnly, p.Name)
}

func (c Checker) logger() *logger.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return &logger.Default
}

func getterKind(p Property) string {
	if isBool(p.Value) {
		return "isser"
	}
	return "getter"
}
