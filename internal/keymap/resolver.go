package keymap

import "slices"

// Resolver maps key strings to actions, optionally restricted to a set of
// binding contexts.
type Resolver struct {
	bindings map[string]Binding // key -> last binding using it
}

// NewResolver creates a resolver from bindings. A key bound twice resolves
// to its last binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{bindings: make(map[string]Binding)}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key].Action
}

// ResolveIn is Resolve limited to bindings from the given contexts. While a
// scrub is in progress only global and index keys apply.
func (r *Resolver) ResolveIn(key string, contexts ...string) Action {
	b, ok := r.bindings[key]
	if !ok || !slices.Contains(contexts, b.Context) {
		return ""
	}
	return b.Action
}
