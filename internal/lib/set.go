package lib

import "golang.org/x/exp/slices"

type Set map[string]struct{}

func NewSet() Set {
	return make(Set)
}

func NewSetFromSlice(slice []string) Set {
	s := make(Set, len(slice))
	for _, v := range slice {
		s[v] = struct{}{}
	}
	return s
}

func (s Set) Add(value ...string) {
	for _, v := range value {
		s[v] = struct{}{}
	}
}

func (s Set) Remove(value string) bool {
	_, c := s[value]
	delete(s, value)
	return c
}

func (s Set) Contains(value string) bool {
	_, c := s[value]
	return c
}

// ContainsAll reports whether every value is a member of the set.
func (s Set) ContainsAll(values []string) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members as a new sorted slice.
func (s Set) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
