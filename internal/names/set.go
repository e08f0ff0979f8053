package names

import "decl-check/internal/sortutil"

// Set is a deduplicated collection of declared identifiers.
type Set map[string]struct{}

// New returns a set holding the given names.
func New(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name; empty names are ignored.
func (s Set) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s Set) Len() int { return len(s) }

// Union merges o into s in place.
func (s Set) Union(o Set) {
	for k := range o {
		s[k] = struct{}{}
	}
}

// Minus returns a new set with the names of s that are not in o.
func (s Set) Minus(o Set) Set {
	r := make(Set)
	for k := range s {
		if !o.Has(k) {
			r[k] = struct{}{}
		}
	}
	return r
}

// Sorted returns the names in ascending order.
func (s Set) Sorted() []string {
	return sortutil.Keys(s)
}
