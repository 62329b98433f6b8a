package validator

import (
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// LenRange is an inclusive string length bound counted in characters.
type LenRange struct {
	Min, Max int
}

// Range is an inclusive numeric bound.
type Range struct {
	Min, Max decimal.Decimal
}

// Len builds a LenRange.
func Len(min, max int) *LenRange {
	return &LenRange{Min: min, Max: max}
}

// Between builds a Range from decimal literals such as "0" and "1e12".
func Between(min, max string) *Range {
	return &Range{Min: decimal.RequireFromString(min), Max: decimal.RequireFromString(max)}
}

// Rule describes the checks applied to one key of a JSON object. Every
// configured check runs independently once the value is present.
type Rule struct {
	Key      string
	Required bool
	Pattern  *regexp.Regexp
	Length   *LenRange
	Range    *Range
	OneOf    func(string) bool
}

// Apply runs rules against obj, recording failures under source.
func (a *Accumulator) Apply(obj map[string]any, source string, rules ...Rule) {
	for _, r := range rules {
		a.applyRule(obj, source, r)
	}
}

// ApplyExcept runs rules like Apply but skips the keys in skip, typically the
// keys CheckTypes already reported.
func (a *Accumulator) ApplyExcept(obj map[string]any, source string, skip map[string]bool, rules ...Rule) {
	for _, r := range rules {
		if skip[r.Key] {
			continue
		}
		a.applyRule(obj, source, r)
	}
}

func (a *Accumulator) applyRule(obj map[string]any, source string, r Rule) {
	path := Join(source, r.Key)
	v, ok := Present(obj, r.Key)
	if !ok {
		if r.Required {
			a.MissingKey(r.Key, path)
		}
		return
	}

	if r.Range != nil {
		a.CheckRange(r.Key, v, r.Range, path)
	}
	if r.Pattern == nil && r.Length == nil && r.OneOf == nil {
		return
	}
	s, ok := AsString(v)
	if !ok {
		a.WrongType(r.Key, String, path)
		return
	}
	if r.Pattern != nil && !r.Pattern.MatchString(s) {
		a.RegexMismatch(r.Key, s, r.Pattern.String(), path)
	}
	if r.Length != nil {
		a.CheckLength(r.Key, s, r.Length, path)
	}
	if r.OneOf != nil && !r.OneOf(s) {
		a.InvalidValue(r.Key, s, path)
	}
}

// CheckRange records a range error when v is numeric and outside rng, and a
// type error when v is not numeric. It reports whether v passed.
func (a *Accumulator) CheckRange(key string, v any, rng *Range, path string) bool {
	d, ok := ToDecimal(v)
	if !ok {
		a.WrongType(key, Number, path)
		return false
	}
	if d.LessThan(rng.Min) || d.GreaterThan(rng.Max) {
		a.OutOfRange(key, d, rng.Min, rng.Max, path)
		return false
	}
	return true
}

// CheckLength records a length error when s is outside lr.
func (a *Accumulator) CheckLength(key, s string, lr *LenRange, path string) bool {
	n := utf8.RuneCountInString(s)
	if n < lr.Min || n > lr.Max {
		a.BadLength(key, s, lr.Min, lr.Max, path)
		return false
	}
	return true
}
