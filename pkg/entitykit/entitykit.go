// Package entitykit verifies the accessors of data structs.
//
// An entity is a plain struct that holds data behind getter and setter methods.
// entitykit writes and reads the entity's fields directly, even the unexported ones,
// and checks that the accessor methods agree with the field values.
//
// Accessor names are derived from the property name:
//
//	getter: Is<Name> (bool values only), Get<Name>, <Name>
//	setter: Set<Name>
//
// Fields are found by the `entity:"<name>"` struct tag first, then by field name.
// A field tagged with `entity:",readonly"` is not expected to have a working setter.
package entitykit

import (
	"github.com/rengaw83/test-entity/pkg/errorkit"
)

// TagKey is the struct tag key used to map and flag entity fields.
const TagKey = "entity"

const (
	ErrEntityNil         errorkit.Error = "entity is nil"
	ErrNotStruct         errorkit.Error = "entity is not a pointer to a struct"
	ErrPropertyNotFound  errorkit.Error = "property not found"
	ErrInvalidProperties errorkit.Error = "invalid properties"
	ErrValueType         errorkit.Error = "value type mismatch"
	ErrReadOnly          errorkit.Error = "read-only property"
	ErrGetterNotFound    errorkit.Error = "getter not found"
	ErrSetterNotFound    errorkit.Error = "setter not found"
	ErrAccessorSignature errorkit.Error = "unexpected accessor signature"
	ErrAccessorPanic     errorkit.Error = "accessor panicked"
	ErrGetterFailed      errorkit.Error = "getter failed"
	ErrSetterFailed      errorkit.Error = "setter failed"
	ErrGetterMismatch    errorkit.Error = "getter mismatch"
	ErrSetterNotFluent   errorkit.Error = "setter is not fluent"
	ErrSetterMismatch    errorkit.Error = "setter mismatch"
	ErrConstructor       errorkit.Error = "constructor failed"
)
