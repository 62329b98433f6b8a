package validator

import (
	"errors"
	"fmt"

	"volumetrico/internal/domain"
)

// Field declares the expected runtime type of one key in a Schema. When
// Bounded is set the value must also construct as that numeric type.
type Field struct {
	Key     string
	Type    ValueType
	Bounded *Bounded
}

// Schema is an ordered, partial type table for a JSON object.
type Schema []Field

// TypeError describes the first mismatch found by ValidateDictType.
type TypeError struct {
	Kind    domain.ErrorKind
	Key     string
	Message string
}

// ValidateDictType checks the values of candidate against schema and returns
// the first mismatch, or nil. Keys not declared in schema are ignored, and
// null values are left to the missing-key checks.
func ValidateDictType(candidate map[string]any, schema Schema) *TypeError {
	for _, f := range schema {
		v, ok := Present(candidate, f.Key)
		if !ok {
			continue
		}
		if f.Bounded != nil {
			if _, err := f.Bounded.Construct(v); err != nil {
				kind := domain.KindTypeMismatch
				var be *BoundedError
				if errors.As(err, &be) && be.OutOfRange {
					kind = domain.KindRange
				}
				return &TypeError{
					Kind:    kind,
					Key:     f.Key,
					Message: fmt.Sprintf("Error: Clave %s no usa la definición %s, %s", f.Key, f.Bounded.Name, err),
				}
			}
			continue
		}
		if !f.Type.Matches(v) {
			return &TypeError{
				Kind:    domain.KindTypeMismatch,
				Key:     f.Key,
				Message: fmt.Sprintf("Error: Clave %s no es de tipo %s", f.Key, f.Type),
			}
		}
	}
	return nil
}

// Money declares a CantidadMonetaria field.
func Money(key string) Field {
	return Field{Key: key, Type: Number, Bounded: &CantidadMonetaria}
}

// Typed declares a plain typed field.
func Typed(key string, t ValueType) Field {
	return Field{Key: key, Type: t}
}

// BoundedField declares a field backed by a bounded numeric type.
func BoundedField(key string, b *Bounded) Field {
	return Field{Key: key, Type: Number, Bounded: b}
}

// CheckTypes runs ValidateDictType over obj until no mismatch is left,
// recording each one under source. It returns the keys that failed so the
// rule checks that follow can skip them.
func (a *Accumulator) CheckTypes(obj map[string]any, schema Schema, source string) map[string]bool {
	failed := make(map[string]bool)
	for {
		pending := make(Schema, 0, len(schema))
		for _, f := range schema {
			if !failed[f.Key] {
				pending = append(pending, f)
			}
		}
		te := ValidateDictType(obj, pending)
		if te == nil {
			return failed
		}
		failed[te.Key] = true
		a.TypeError(te, Join(source, te.Key))
	}
}
