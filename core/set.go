package core

// Set is an unordered collection of distinct comparable values.
//
// Sets returned by Graph methods are fresh copies owned by the caller.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding the given items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts x; adding an existing element is a no-op.
func (s Set[T]) Add(x T) { s[x] = struct{}{} }

// Has reports whether x is in s. A nil Set contains nothing.
func (s Set[T]) Has(x T) bool {
	_, ok := s[x]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s) }

// Intersect returns a new Set with the elements present in both s and o.
// It iterates the smaller operand.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set[T])
	for x := range small {
		if large.Has(x) {
			out[x] = struct{}{}
		}
	}

	return out
}

// SubsetOf reports whether every element of s is also in o.
func (s Set[T]) SubsetOf(o Set[T]) bool {
	if len(s) > len(o) {
		return false
	}
	for x := range s {
		if !o.Has(x) {
			return false
		}
	}

	return true
}

// Slice returns the elements in unspecified order.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for x := range s {
		out = append(out, x)
	}

	return out
}

// clone returns a shallow copy; nil in, empty out.
func (s Set[T]) clone() Set[T] {
	out := make(Set[T], len(s))
	for x := range s {
		out[x] = struct{}{}
	}

	return out
}
