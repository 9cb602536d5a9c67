package aa

// Set is a compact bitset over the 20 residues plus Gap (bit 20); Unknown
// cannot be a set member, mirroring AminoAcid.HasIndex.
type Set uint32

// EmptySet returns the zero-value set.
func EmptySet() Set { return 0 }

// Singleton returns a set containing only a, silently ignoring Unknown.
func Singleton(a AminoAcid) Set {
	var s Set
	s.MaybeInsert(a)
	return s
}

// Insert adds a to the set. Panics if a is Unknown (has no index); use
// MaybeInsert to no-op instead.
func (s *Set) Insert(a AminoAcid) {
	idx, err := a.Index()
	if err != nil {
		panic(err)
	}
	*s |= 1 << uint(idx)
}

// MaybeInsert adds a to the set, silently ignoring Unknown.
func (s *Set) MaybeInsert(a AminoAcid) {
	if a.HasIndex() {
		idx, _ := a.Index()
		*s |= 1 << uint(idx)
	}
}

// Remove clears a from the set.
func (s *Set) Remove(a AminoAcid) {
	if a.HasIndex() {
		idx, _ := a.Index()
		*s &^= 1 << uint(idx)
	}
}

// Contains reports set membership.
func (s Set) Contains(a AminoAcid) bool {
	if !a.HasIndex() {
		return false
	}
	idx, _ := a.Index()
	return s&(1<<uint(idx)) != 0
}

// Len returns the number of members.
func (s Set) Len() int {
	count := 0
	for v := uint32(s); v != 0; v &= v - 1 {
		count++
	}
	return count
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool { return s == 0 }

// Union returns the union of s and other.
func (s Set) Union(other Set) Set { return s | other }

// Intersection returns the intersection of s and other.
func (s Set) Intersection(other Set) Set { return s & other }

// Members returns the set's elements in ascending index order.
func (s Set) Members() []AminoAcid {
	out := make([]AminoAcid, 0, s.Len())
	for v := s; v != 0; {
		next := trailingZeros32(uint32(v))
		out = append(out, FromIndex(next))
		v &^= 1 << uint(next)
	}
	return out
}

func trailingZeros32(v uint32) int {
	if v == 0 {
		return 32
	}
	n := 0
	for v&1 == 0 {
		v >>= 1
		n++
	}
	return n
}
