// Package boxkit implements the two table-driven byte bijections of an SPN
// cipher stage: a nibble-wise substitution (S-box) and a bit-wise permutation
// (P-box), each with an exact inverse derived from its forward table.
package boxkit

const (
	// SBoxLen is the number of entries in a substitution table, one per nibble value.
	SBoxLen = 16

	// PBoxLen is the number of entries in a permutation table, one per bit position.
	PBoxLen = 8
)

// DefaultSBoxTable is a reference nibble substitution table.
var DefaultSBoxTable = [SBoxLen]byte{
	0xE, 0x4, 0xD, 0x1,
	0x2, 0xF, 0xB, 0x8,
	0x3, 0xA, 0x6, 0xC,
	0x5, 0x9, 0x0, 0x7,
}

// DefaultPBoxTable is a reference bit permutation table.
var DefaultPBoxTable = [PBoxLen]byte{1, 5, 2, 0, 3, 7, 4, 6}
