package codec

// Set is an insertion-ordered set of codec names. The zero value is an
// empty set ready to use; a nil *Set behaves as an empty set for every
// read-only method.
type Set struct {
	order []Name
	index map[Name]struct{}
}

// NewSet returns a set holding the normalized form of each name, in order.
// Empty names and duplicates are dropped.
func NewSet(names ...string) *Set {
	s := &Set{}
	for _, n := range names {
		s.Add(Normalize(n))
	}
	return s
}

// Add inserts n unless it is empty or already present. It reports whether
// the set changed. Re-adding keeps the first position.
func (s *Set) Add(n Name) bool {
	if n == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[Name]struct{})
	}
	if _, ok := s.index[n]; ok {
		return false
	}
	s.index[n] = struct{}{}
	s.order = append(s.order, n)
	return true
}

// Has reports whether n is in the set.
func (s *Set) Has(n Name) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[n]
	return ok
}

// Len returns the number of names in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Names returns a copy of the members in insertion order.
func (s *Set) Names() []Name {
	if s == nil {
		return nil
	}
	out := make([]Name, len(s.order))
	copy(out, s.order)
	return out
}

// Strings is Names as plain strings.
func (s *Set) Strings() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	for i, n := range s.order {
		out[i] = string(n)
	}
	return out
}

// Intersect returns the members of s that are also in other, in s order.
func (s *Set) Intersect(other *Set) *Set {
	out := &Set{}
	for _, n := range s.Names() {
		if other.Has(n) {
			out.Add(n)
		}
	}
	return out
}

// Difference returns the members of s that are not in other, in s order.
func (s *Set) Difference(other *Set) *Set {
	out := &Set{}
	for _, n := range s.Names() {
		if !other.Has(n) {
			out.Add(n)
		}
	}
	return out
}
