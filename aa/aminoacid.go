package aa

import "fmt"

// AminoAcid is a symbol from the 20 standard residues plus Gap and Unknown.
// Standard residues are indexed 0..19 in the order below; Gap is index 20.
// Unknown has no index and is never emitted by structural moves.
type AminoAcid uint8

// Standard residues, in PAML row/column order (Ala..Val), followed by the
// two non-indexable-or-special symbols.
const (
	Ala AminoAcid = iota
	Arg
	Asn
	Asp
	Cys
	Gln
	Glu
	Gly
	His
	Ile
	Leu
	Lys
	Met
	Phe
	Pro
	Ser
	Thr
	Trp
	Tyr
	Val

	Gap
	Unknown
)

// Count is the number of standard residues (20). Gap sits at index Count.
const Count = 20

var letterToAcid = map[byte]AminoAcid{
	'A': Ala, 'R': Arg, 'N': Asn, 'D': Asp, 'C': Cys,
	'Q': Gln, 'E': Glu, 'G': Gly, 'H': His, 'I': Ile,
	'L': Leu, 'K': Lys, 'M': Met, 'F': Phe, 'P': Pro,
	'S': Ser, 'T': Thr, 'W': Trp, 'Y': Tyr, 'V': Val,
	'X': Unknown, '-': Gap,
}

var acidToLetter = [...]byte{
	'A', 'R', 'N', 'D', 'C', 'Q', 'E', 'G', 'H', 'I',
	'L', 'K', 'M', 'F', 'P', 'S', 'T', 'W', 'Y', 'V',
	'-', 'X',
}

// FromByte maps a FASTA residue byte to its AminoAcid, or ErrUnrecognizedByte
// for anything outside ACDEFGHIKLMNPQRSTVWY, X, and -.
func FromByte(letter byte) (AminoAcid, error) {
	acid, ok := letterToAcid[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedByte, letter)
	}
	return acid, nil
}

// Byte renders the symbol back to its FASTA letter.
func (a AminoAcid) Byte() byte {
	return acidToLetter[a]
}

// IsResidue reports whether a is one of the 20 standard residues (excludes
// Gap and Unknown).
func (a AminoAcid) IsResidue() bool {
	return a < Gap
}

// HasIndex reports whether a can appear as an array index: the 20 standard
// residues plus Gap.
func (a AminoAcid) HasIndex() bool {
	return a <= Gap
}

// Index returns a's position in a 21-wide (residues + Gap) array.
func (a AminoAcid) Index() (int, error) {
	if !a.HasIndex() {
		return 0, fmt.Errorf("%w: %v", ErrNoIndex, a)
	}
	return int(a), nil
}

// FromIndex is the inverse of Index, valid for 0..Count inclusive (Count is Gap).
func FromIndex(index int) AminoAcid {
	if index < 0 || index > Count {
		panic("aa: invalid amino acid index")
	}
	return AminoAcid(index)
}

// All iterates the 20 standard residues in PAML order.
func All() []AminoAcid {
	out := make([]AminoAcid, Count)
	for i := range out {
		out[i] = AminoAcid(i)
	}
	return out
}

func (a AminoAcid) String() string {
	switch a {
	case Gap:
		return "Gap"
	case Unknown:
		return "Unknown"
	default:
		return string(a.Byte())
	}
}
