// Package syscalls provides the set of syscall names shared by the
// allowlist extractor, the trace parser and the gap reporter.
package syscalls

import "sort"

// Set stores unique syscall names
type Set map[string]struct{}

// NewSet creates a new Set containing names
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	s.AddRange(names)
	return s
}

// Add adds single syscall name to the Set, empty names are ignored
func (s Set) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// AddRange adds multiple syscall names to the Set
func (s Set) AddRange(names []string) {
	for _, n := range names {
		s.Add(n)
	}
}

// Has returns whether name is inside the Set
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns number of names in the Set
func (s Set) Len() int {
	return len(s)
}

// Difference returns names in s but not in other
func (s Set) Difference(other Set) Set {
	rt := make(Set)
	for n := range s {
		if !other.Has(n) {
			rt[n] = struct{}{}
		}
	}
	return rt
}

// Sorted returns the names in lexicographical order
func (s Set) Sorted() []string {
	rt := make([]string, 0, len(s))
	for n := range s {
		rt = append(rt, n)
	}
	sort.Strings(rt)
	return rt
}
