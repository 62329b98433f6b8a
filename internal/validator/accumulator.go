package validator

import (
	"fmt"

	"volumetrico/internal/domain"
)

// Accumulator collects validation failures in the order they are found.
// It never fails: every check appends and moves on.
type Accumulator struct {
	records []domain.ErrorRecord
	last    map[domain.ErrorKind]string
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{last: make(map[domain.ErrorKind]string)}
}

// CatchError appends a record and indexes its message under its kind.
func (a *Accumulator) CatchError(kind domain.ErrorKind, message, source string) {
	a.records = append(a.records, domain.ErrorRecord{Kind: kind, Error: message, Source: source})
	a.last[kind] = message
}

// MissingKey records a required element that was not declared.
func (a *Accumulator) MissingKey(key, source string) {
	a.CatchError(domain.KindMissingKey, fmt.Sprintf("Error: Elemento '%s' no declarado.", key), source)
}

// OutOfRange records a numeric value outside [min, max].
func (a *Accumulator) OutOfRange(key string, value any, min, max any, source string) {
	a.CatchError(domain.KindRange, fmt.Sprintf("Error: clave %s con valor %s no tiene el valor min %s ó max %s.",
		key, FormatValue(value), FormatValue(min), FormatValue(max)), source)
}

// BadLength records a string whose length falls outside [min, max].
func (a *Accumulator) BadLength(key string, value any, min, max int, source string) {
	a.CatchError(domain.KindLength, fmt.Sprintf("Error: clave %s con valor %s no tiene una longitud min %d ó max %d.",
		key, FormatValue(value), min, max), source)
}

// RegexMismatch records a string that does not match its pattern.
func (a *Accumulator) RegexMismatch(key string, value any, pattern, source string) {
	a.CatchError(domain.KindRegex, fmt.Sprintf("Error: clave %s con valor %s no cumple con el patrón %s",
		key, FormatValue(value), pattern), source)
}

// InvalidValue records a value outside its closed value set.
func (a *Accumulator) InvalidValue(key string, value any, source string) {
	a.CatchError(domain.KindInvalidValue, fmt.Sprintf("Error: valor '%s' en clave %s no válido.", FormatValue(value), key), source)
}

// WrongType records a value whose runtime type does not match.
func (a *Accumulator) WrongType(key string, expected ValueType, source string) {
	a.CatchError(domain.KindTypeMismatch, fmt.Sprintf("Error: Clave %s no es de tipo %s", key, expected), source)
}

// TypeError records a descriptor returned by ValidateDictType.
func (a *Accumulator) TypeError(te *TypeError, source string) {
	a.CatchError(te.Kind, te.Message, source)
}

// Records returns the accumulated records in order.
func (a *Accumulator) Records() []domain.ErrorRecord {
	return a.records
}

// Errors returns the last message recorded for each kind.
func (a *Accumulator) Errors() map[domain.ErrorKind]string {
	return a.last
}

// Has reports whether at least one record of kind was collected.
func (a *Accumulator) Has(kind domain.ErrorKind) bool {
	_, ok := a.last[kind]
	return ok
}

// Len returns the number of records.
func (a *Accumulator) Len() int {
	return len(a.records)
}

// Merge appends records collected by a nested validator, prefixing their
// source paths with prefix.
func (a *Accumulator) Merge(prefix string, records []domain.ErrorRecord) {
	for _, r := range records {
		r.Source = Join(prefix, r.Source)
		a.CatchError(r.Kind, r.Error, r.Source)
	}
}

// Join builds a dotted source path, skipping empty segments.
func Join(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out == "" {
			out = p
			continue
		}
		out += "." + p
	}
	return out
}

// Index renders a list element path segment such as "Nacional[1]".
func Index(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}
