package complement

import (
	"regexp"

	"volumetrico/internal/validator"
)

// field pairs the type declaration of a key with the rule checked on it.
type field struct {
	rule validator.Rule
	typ  validator.Field
}

type fields []field

func (fs fields) schema() validator.Schema {
	out := make(validator.Schema, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.typ)
	}
	return out
}

func (fs fields) rules() []validator.Rule {
	out := make([]validator.Rule, 0, len(fs))
	for _, f := range fs {
		if f.rule.Key == "" {
			continue
		}
		out = append(out, f.rule)
	}
	return out
}

func text(key string) field {
	return field{rule: validator.Rule{Key: key}, typ: validator.Typed(key, validator.String)}
}

// money declares a CantidadMonetaria amount whose lower bound is min (0 or 1
// depending on the field) and upper bound 1e12.
func money(key, min string) field {
	return field{
		rule: validator.Rule{Key: key, Range: validator.Between(min, "1e12")},
		typ:  validator.Money(key),
	}
}

// amount declares a bounded numeric with an explicit range.
func amount(key string, b *validator.Bounded, min, max string) field {
	return field{
		rule: validator.Rule{Key: key, Range: validator.Between(min, max)},
		typ:  validator.BoundedField(key, b),
	}
}

// shapeOnly declares a key checked for type but handled by its own section.
func shapeOnly(key string, t validator.ValueType) field {
	return field{typ: validator.Typed(key, t)}
}

func (f field) required() field {
	f.rule.Required = true
	return f
}

func (f field) pattern(re *regexp.Regexp) field {
	f.rule.Pattern = re
	return f
}

func (f field) length(min, max int) field {
	f.rule.Length = validator.Len(min, max)
	return f
}

func (f field) oneOf(fn func(string) bool) field {
	f.rule.OneOf = fn
	return f
}
