package palette

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the read-only catalog of palettes, keyed by
// (name, k, legacy). Build it once with NewRegistry; lookups never
// mutate it.
type Registry struct {
	palettes map[registryKey]*Palette
}

type registryKey struct {
	name   string
	k      int
	legacy bool
}

// NewRegistry builds a registry from the given palettes. Duplicate
// (name, k, legacy) combinations are a construction error.
func NewRegistry(palettes ...*Palette) (*Registry, error) {
	r := &Registry{palettes: make(map[registryKey]*Palette, len(palettes))}
	for _, p := range palettes {
		key := registryKey{name: p.Name, k: p.K, legacy: p.Legacy}
		if _, dup := r.palettes[key]; dup {
			return nil, fmt.Errorf("duplicate palette %q (k=%d, legacy=%v)", p.Name, p.K, p.Legacy)
		}
		r.palettes[key] = p
	}
	return r, nil
}

// Lookup returns the palette registered under name for dimension k,
// preferring the current variant over a legacy one. An absent name
// yields UnknownPaletteError; a name that exists only at another
// dimension yields DimensionMismatchError naming the stored dimension.
func (r *Registry) Lookup(name string, k int) (*Palette, error) {
	if p, ok := r.palettes[registryKey{name: name, k: k, legacy: false}]; ok {
		return p, nil
	}
	if p, ok := r.palettes[registryKey{name: name, k: k, legacy: true}]; ok {
		return p, nil
	}
	return nil, r.missError(name, k)
}

// LookupVariant selects a specific legacy or current variant. A family
// that exists at k only in the other variant yields an
// UnknownPaletteError naming the missing variant.
func (r *Registry) LookupVariant(name string, k int, legacy bool) (*Palette, error) {
	if p, ok := r.palettes[registryKey{name: name, k: k, legacy: legacy}]; ok {
		return p, nil
	}
	if _, ok := r.palettes[registryKey{name: name, k: k, legacy: !legacy}]; ok {
		variant := "current"
		if legacy {
			variant = "legacy"
		}
		return nil, &UnknownPaletteError{Name: name, Variant: variant}
	}
	return nil, r.missError(name, k)
}

func (r *Registry) missError(name string, k int) error {
	for key := range r.palettes {
		if key.name == name && key.k != k {
			return &DimensionMismatchError{Name: name, Want: k, Have: key.k}
		}
	}
	return &UnknownPaletteError{Name: name}
}

// All returns every registered palette, sorted by name, dimension and
// variant for stable listings.
func (r *Registry) All() []*Palette {
	out := make([]*Palette, 0, len(r.palettes))
	for _, p := range r.palettes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		if out[i].K != out[j].K {
			return out[i].K < out[j].K
		}
		return !out[i].Legacy && out[j].Legacy
	})
	return out
}

// Names returns the sorted distinct family names.
func (r *Registry) Names() []string {
	seen := map[string]bool{}
	for key := range r.palettes {
		seen[key.name] = true
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry of built-in palettes,
// built on first use and read-only afterward.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(builtinPalettes()...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
