package aa

// Map is a fixed 21-slot array keyed by residue or Gap (Unknown has no
// slot), replacing a general-purpose map[AminoAcid]V for the closed,
// tiny key domain this package defines.
type Map[V any] [Count + 1]V

// NewMap builds a Map by evaluating f for every indexable symbol (the 20
// residues plus Gap).
func NewMap[V any](f func(AminoAcid) V) Map[V] {
	var m Map[V]
	for i := 0; i <= Count; i++ {
		m[i] = f(FromIndex(i))
	}
	return m
}

// Get returns the value stored for a.
func (m *Map[V]) Get(a AminoAcid) V {
	idx, err := a.Index()
	if err != nil {
		panic(err)
	}
	return m[idx]
}

// Set stores value for a.
func (m *Map[V]) Set(a AminoAcid, value V) {
	idx, err := a.Index()
	if err != nil {
		panic(err)
	}
	m[idx] = value
}

// Each calls f for every (symbol, value) pair in index order.
func (m *Map[V]) Each(f func(AminoAcid, V)) {
	for i := 0; i <= Count; i++ {
		f(FromIndex(i), m[i])
	}
}
