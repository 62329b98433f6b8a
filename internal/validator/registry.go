package validator

// Registry maps section keys to Validator implementations and remembers the
// order in which they were registered.
type Registry struct {
	validators map[string]Validator
	order      []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[string]Validator)}
}

// Register adds a validator to the registry. Registering a key twice
// replaces the validator but keeps its original position.
func (r *Registry) Register(v Validator) {
	if _, ok := r.validators[v.Key()]; !ok {
		r.order = append(r.order, v.Key())
	}
	r.validators[v.Key()] = v
}

// Get returns the validator for a given key, or nil if not found.
func (r *Registry) Get(key string) Validator {
	return r.validators[key]
}

// All returns all registered validators in registration order.
func (r *Registry) All() []Validator {
	out := make([]Validator, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.validators[k])
	}
	return out
}
