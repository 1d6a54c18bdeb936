package boxkit

// SBox applies a nibble-wise bijective substitution to single bytes. Both
// tables are frozen at construction, so a value is safe for unsynchronized
// concurrent use.
type SBox struct {
	table   [SBoxLen]byte
	inverse [SBoxLen]byte
}

// NewSBox validates that table is a bijection on {0..15}, derives its inverse
// and returns the ready substitution engine. A table with an out-of-range or
// duplicate entry yields a *ConfigError.
func NewSBox(table [SBoxLen]byte) (*SBox, error) {
	inv, err := invertTable("s-box", table[:])
	if err != nil {
		return nil, err
	}
	s := &SBox{table: table}
	copy(s.inverse[:], inv)
	return s, nil
}

// Forward substitutes both nibbles of b through the forward table. The high
// nibble stays in bits 4-7, the low nibble in bits 0-3.
func (s *SBox) Forward(b byte) byte {
	return s.table[b>>4]<<4 | s.table[b&0x0F]
}

// Inverse undoes Forward using the derived inverse table, so
// s.Inverse(s.Forward(b)) == b for every byte value.
func (s *SBox) Inverse(b byte) byte {
	return s.inverse[b>>4]<<4 | s.inverse[b&0x0F]
}

// Table returns a copy of the forward substitution table.
func (s *SBox) Table() [SBoxLen]byte {
	return s.table
}

// InverseTable returns a copy of the derived inverse table.
func (s *SBox) InverseTable() [SBoxLen]byte {
	return s.inverse
}
