// Package registry holds the process-wide global variable namespace. It
// unifies a fixed static tier, whose key set is declared by the embedding
// environment at construction, with a dynamic tier of variables introduced
// at run time, behind one concurrency-safe lookup surface.
package registry

import (
	"sort"
	"sync"
)

// Tier identifies which half of the namespace a variable lives in.
type Tier int

const (
	// TierStatic marks variables pre-declared by the embedding environment.
	// Their key set is fixed; only their values change.
	TierStatic Tier = iota
	// TierDynamic marks variables introduced at run time by loading
	// profiles or direct entries.
	TierDynamic
)

func (t Tier) String() string {
	switch t {
	case TierStatic:
		return "static"
	case TierDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// StaticVar declares one entry of the static schema. HasValue distinguishes
// a key declared with an initial value from one that starts unresolved.
type StaticVar struct {
	Name     string
	Value    any
	HasValue bool
}

// Entry is a single (name, value) pair for ordered bulk writes.
type Entry struct {
	Name  string
	Value any
}

// WriteResult describes where a write landed and whether it created a new
// variable.
type WriteResult struct {
	Tier    Tier
	Created bool
}

// Registry is the process-wide namespace. A name lives in at most one tier:
// writes to a static name always update the static tier and never shadow it
// with a dynamic duplicate. All operations are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	staticSet map[string]struct{}
	static    map[string]any
	dynamic   map[string]any
}

// New builds a Registry from the static schema. The schema's key set is
// fixed for the lifetime of the registry; duplicate schema names are
// last-wins.
func New(schema []StaticVar) *Registry {
	r := &Registry{
		staticSet: make(map[string]struct{}, len(schema)),
		static:    make(map[string]any, len(schema)),
		dynamic:   make(map[string]any),
	}

	for _, v := range schema {
		r.staticSet[v.Name] = struct{}{}
		if v.HasValue {
			r.static[v.Name] = v.Value
		} else {
			delete(r.static, v.Name)
		}
	}

	return r
}

// Get returns the current value of a variable. The dynamic tier is
// consulted first; by the write-routing invariant a name only ever lives in
// one tier, so the ordering is defensive rather than load-bearing.
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if v, ok := r.dynamic[name]; ok {
		return v, true
	}
	if v, ok := r.static[name]; ok {
		return v, true
	}

	return nil, false
}

// Set writes a value. Static names have their value updated in place;
// anything else is validated against the dynamic naming rules and upserted
// into the dynamic tier. On an invalid name the registry is unchanged and
// the error is a *InvalidNameError.
func (r *Registry) Set(name string, value any) (WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.staticSet[name]; ok {
		r.static[name] = value
		return WriteResult{Tier: TierStatic, Created: false}, nil
	}

	if err := ValidateName(name); err != nil {
		return WriteResult{}, err
	}

	_, existed := r.dynamic[name]
	r.dynamic[name] = value

	return WriteResult{Tier: TierDynamic, Created: !existed}, nil
}

// SetMany applies Set to each entry in order and returns the number of
// entries written. A failing entry aborts the sequence; earlier writes
// remain committed.
func (r *Registry) SetMany(entries []Entry) (int, error) {
	for i, entry := range entries {
		if _, err := r.Set(entry.Name, entry.Value); err != nil {
			return i, err
		}
	}

	return len(entries), nil
}

// Clear empties the dynamic tier. Static values are untouched. Idempotent.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dynamic = make(map[string]any)
}

// StaticKeys returns the declared static key set in sorted order,
// including keys that currently have no resolvable value.
func (r *Registry) StaticKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.staticSet)
}

// DynamicKeys returns the dynamic key set in sorted order.
func (r *Registry) DynamicKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.dynamic)
}

// Keys returns the union of both tiers' key sets in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	union := make(map[string]struct{}, len(r.staticSet)+len(r.dynamic))
	for k := range r.staticSet {
		union[k] = struct{}{}
	}
	for k := range r.dynamic {
		union[k] = struct{}{}
	}

	return sortedKeys(union)
}

// Snapshot returns a copy of every currently resolvable variable across
// both tiers. Static keys without a value are omitted rather than reported
// as null. The copy is detached: later registry writes do not affect it.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[string]any, len(r.static)+len(r.dynamic))
	for k, v := range r.static {
		snap[k] = v
	}
	for k, v := range r.dynamic {
		snap[k] = v
	}

	return snap
}

// StaticAsMap returns a copy of the static tier's resolvable values.
func (r *Registry) StaticAsMap() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyValues(r.static)
}

// DynamicAsMap returns a copy of the dynamic tier.
func (r *Registry) DynamicAsMap() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyValues(r.dynamic)
}

func copyValues(m map[string]any) map[string]any {
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return cp
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
