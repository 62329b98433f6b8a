// Package complement validates the Complemento sub-documents attached to the
// receptions and deliveries of a monthly volume report.
//
// Every complement type shares one traversal: each item of the list gets a
// fresh accumulator, runs its variant's battery of sections in a fixed order,
// and its records are merged into the list's accumulator under
// "Complemento[i]". Sections never stop each other; a panic inside one item is
// turned into a SystemError record and the next item is still validated.
package complement

import (
	"fmt"
	"log"

	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

// Complement validates a list of Complemento items of one declared type.
type Complement interface {
	Type() domain.ComplementType
	Validate()
	Records() []domain.ErrorRecord
	Errors() map[domain.ErrorKind]string
}

// section is one step of a variant's battery.
type section func(it *item)

// builder holds the traversal shared by every variant.
type builder struct {
	kind    domain.ComplementType
	items   []any
	battery []section
	acc     *validator.Accumulator
}

func newBuilder(kind domain.ComplementType, items []any, battery ...section) *builder {
	return &builder{
		kind:    kind,
		items:   items,
		battery: battery,
		acc:     validator.NewAccumulator(),
	}
}

// Type returns the complement type this variant validates.
func (b *builder) Type() domain.ComplementType { return b.kind }

// Records returns the accumulated records, prefixed with "Complemento[i]".
func (b *builder) Records() []domain.ErrorRecord { return b.acc.Records() }

// Errors returns the last message recorded per kind.
func (b *builder) Errors() map[domain.ErrorKind]string { return b.acc.Errors() }

// Validate runs the battery over every item, in list order.
func (b *builder) Validate() {
	for i, raw := range b.items {
		b.validateItem(i, raw)
	}
}

func (b *builder) validateItem(i int, raw any) {
	it := &item{index: i, acc: validator.NewAccumulator(), reported: make(map[string]bool)}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("complement.%s: recovered panic in item %d: %v", b.kind, i, r)
			it.acc.CatchError(domain.KindInternal,
				fmt.Sprintf("Error: falla interna al validar Complemento[%d]: %v", i, r), "")
		}
		b.acc.Merge(validator.Index("Complemento", i), it.acc.Records())
	}()

	data, ok := validator.AsObject(raw)
	if !ok {
		it.acc.WrongType("Complemento", validator.Object, "")
		return
	}
	it.data = data
	for _, s := range b.battery {
		s(it)
	}
}

// item is the state of one Complemento while its battery runs. Sources
// recorded here are relative to the item.
type item struct {
	index    int
	data     map[string]any
	acc      *validator.Accumulator
	reported map[string]bool
}

// shape records every type mismatch of obj and marks the mismatching keys as
// reported so the rule checks that follow skip them.
func (it *item) shape(obj map[string]any, fs fields, path string) {
	for key := range it.acc.CheckTypes(obj, fs.schema(), path) {
		it.reported[validator.Join(path, key)] = true
	}
}

// apply runs the rules of fs on obj, skipping keys whose shape was already
// reported.
func (it *item) apply(obj map[string]any, fs fields, path string) {
	for _, r := range fs.rules() {
		if it.reported[validator.Join(path, r.Key)] {
			continue
		}
		it.acc.Apply(obj, path, r)
	}
}

// wrongType records a shape error once per path.
func (it *item) wrongType(key string, want validator.ValueType, path string) {
	if it.reported[path] {
		return
	}
	it.reported[path] = true
	it.acc.WrongType(key, want, path)
}

// object fetches parent[key] as a nested object described by fs and applies
// its rules. It returns the object whenever parent[key] is one, so nested
// sections are still visited after a type error on a sibling key.
func (it *item) object(parent map[string]any, key, source string, required bool, fs fields) (map[string]any, bool) {
	path := validator.Join(source, key)
	v, ok := validator.Present(parent, key)
	if !ok {
		if required {
			it.acc.MissingKey(key, path)
		}
		return nil, false
	}
	obj, ok := validator.AsObject(v)
	if !ok {
		it.wrongType(key, validator.Object, path)
		return nil, false
	}
	it.shape(obj, fs, path)
	it.apply(obj, fs, path)
	return obj, true
}

// list fetches parent[key] as a JSON array.
func (it *item) list(parent map[string]any, key, source string, required bool) ([]any, bool) {
	path := validator.Join(source, key)
	v, ok := validator.Present(parent, key)
	if !ok {
		if required {
			it.acc.MissingKey(key, path)
		}
		return nil, false
	}
	l, ok := validator.AsList(v)
	if !ok {
		it.wrongType(key, validator.List, path)
		return nil, false
	}
	return l, true
}

// each applies fn to every object element of list, reporting non-object
// elements as type errors.
func (it *item) each(list []any, name, source string, fn func(obj map[string]any, path string)) {
	for i, raw := range list {
		path := validator.Join(source, validator.Index(name, i))
		obj, ok := validator.AsObject(raw)
		if !ok {
			it.wrongType(name, validator.Object, path)
			continue
		}
		fn(obj, path)
	}
}
