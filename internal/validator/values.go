package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ValueType is the runtime shape a report value is expected to have.
type ValueType int

const (
	String ValueType = iota
	Integer
	Number
	List
	Object
	Bool
)

// String returns the type name used in messages.
func (t ValueType) String() string {
	switch t {
	case String:
		return "str"
	case Integer:
		return "int"
	case Number:
		return "float"
	case List:
		return "list"
	case Object:
		return "dict"
	case Bool:
		return "bool"
	}
	return "unknown"
}

// Matches reports whether v has runtime type t. Integers are accepted where a
// float is expected.
func (t ValueType) Matches(v any) bool {
	switch t {
	case String:
		_, ok := v.(string)
		return ok
	case Integer:
		return IsInteger(v)
	case Number:
		_, ok := ToDecimal(v)
		return ok
	case List:
		_, ok := v.([]any)
		return ok
	case Object:
		_, ok := v.(map[string]any)
		return ok
	case Bool:
		_, ok := v.(bool)
		return ok
	}
	return false
}

// ToDecimal converts a decoded JSON number to a decimal. Booleans and strings
// are not numbers.
func ToDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	}
	return decimal.Decimal{}, false
}

// IsInteger reports whether v is a whole JSON number written without a
// fraction or exponent.
func IsInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		s := n.String()
		if strings.ContainsAny(s, ".eE") {
			return false
		}
		_, err := n.Int64()
		return err == nil
	case float64:
		return n == math.Trunc(n) && !math.IsInf(n, 0)
	case int, int32, int64:
		return true
	}
	return false
}

// ToInt64 returns v as an int64 when it is an integer.
func ToInt64(v any) (int64, bool) {
	if !IsInteger(v) {
		return 0, false
	}
	d, ok := ToDecimal(v)
	if !ok {
		return 0, false
	}
	return d.IntPart(), true
}

// AsObject returns v as a JSON object.
func AsObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// AsList returns v as a JSON array.
func AsList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// AsString returns v as a string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Present returns obj[key] when it is declared with a non-null value.
func Present(obj map[string]any, key string) (any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// FormatValue renders a value the way it appears in messages.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case decimal.Decimal:
		return x.String()
	case bool:
		if x {
			return "True"
		}
		return "False"
	}
	if d, ok := ToDecimal(v); ok {
		return d.String()
	}
	return fmt.Sprint(v)
}
