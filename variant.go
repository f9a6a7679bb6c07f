// variant.go - pluggable hash function variants
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package strhash

import (
	"fmt"
	"strings"
)

// HashFunc maps a string to a 32-bit value. It must be deterministic:
// equal inputs always produce equal outputs.
type HashFunc func(s string) uint32

// Variant is one named hash function under comparison
type Variant struct {
	Name string
	Fn   HashFunc
}

// Registry holds named variants in registration order. It is not safe
// for concurrent mutation; the harness never needs that.
type Registry struct {
	names []string
	m     map[string]HashFunc
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	r := &Registry{
		m: make(map[string]HashFunc),
	}
	return r
}

// Register adds a new variant called 'nm'
func (r *Registry) Register(nm string, fn HashFunc) error {
	if len(nm) == 0 || fn == nil {
		return ErrEmptyVariantName
	}
	if _, ok := r.m[nm]; ok {
		return fmt.Errorf("%s: %w", nm, ErrDuplicateVariant)
	}

	r.m[nm] = fn
	r.names = append(r.names, nm)
	return nil
}

// Lookup returns the variant called 'nm'
func (r *Registry) Lookup(nm string) (Variant, error) {
	fn, ok := r.m[nm]
	if !ok {
		return Variant{}, fmt.Errorf("%s: %w (have %s)", nm, ErrUnknownVariant,
			strings.Join(r.names, ", "))
	}
	return Variant{Name: nm, Fn: fn}, nil
}

// Select returns the named variants in the order given. A name may not
// appear twice.
func (r *Registry) Select(names ...string) ([]Variant, error) {
	if len(names) == 0 {
		return nil, ErrNoVariants
	}

	seen := make(map[string]struct{}, len(names))
	vs := make([]Variant, 0, len(names))
	for _, nm := range names {
		if _, ok := seen[nm]; ok {
			return nil, fmt.Errorf("%s: %w", nm, ErrDuplicateVariant)
		}
		seen[nm] = struct{}{}

		v, err := r.Lookup(nm)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Names returns the registered names in registration order
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Variants returns every registered variant in registration order
func (r *Registry) Variants() []Variant {
	vs := make([]Variant, 0, len(r.names))
	for _, nm := range r.names {
		vs = append(vs, Variant{Name: nm, Fn: r.m[nm]})
	}
	return vs
}

// Len returns number of registered variants
func (r *Registry) Len() int {
	return len(r.names)
}
