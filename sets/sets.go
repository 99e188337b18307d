// Package sets provides the string-set operations shared by the automaton
// and grammar packages.
package sets

import "sort"

// Set is a set of strings. The zero value is not usable; use New.
type Set map[string]struct{}

func New(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

func (s Set) Add(member string) {
	s[member] = struct{}{}
}

func (s Set) Contains(member string) bool {
	_, ok := s[member]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Empty() bool {
	return len(s) == 0
}

func (s Set) Clone() Set {
	c := make(Set, len(s))
	for m := range s {
		c[m] = struct{}{}
	}
	return c
}

func (s Set) Union(other Set) Set {
	u := s.Clone()
	for m := range other {
		u[m] = struct{}{}
	}
	return u
}

func (s Set) Intersect(other Set) Set {
	i := New()
	for m := range s {
		if other.Contains(m) {
			i[m] = struct{}{}
		}
	}
	return i
}

// Diff returns the members of s that are not members of other.
func (s Set) Diff(other Set) Set {
	d := New()
	for m := range s {
		if !other.Contains(m) {
			d[m] = struct{}{}
		}
	}
	return d
}

func (s Set) SubsetOf(other Set) bool {
	for m := range s {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Members returns the members of s in lexicographic order.
func (s Set) Members() []string {
	ms := make([]string, 0, len(s))
	for m := range s {
		ms = append(ms, m)
	}
	sort.Strings(ms)
	return ms
}
