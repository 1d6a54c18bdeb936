package boxkit

// PBox remaps the bit positions of single bytes according to a bijective
// permutation table. Like SBox, a constructed value is immutable and safe for
// unsynchronized concurrent use.
type PBox struct {
	table   [PBoxLen]byte
	inverse [PBoxLen]byte
}

// NewPBox validates that table is a bijection on {0..7}, derives its inverse
// and returns the ready permutation engine. A table with an out-of-range or
// duplicate entry yields a *ConfigError.
func NewPBox(table [PBoxLen]byte) (*PBox, error) {
	inv, err := invertTable("p-box", table[:])
	if err != nil {
		return nil, err
	}
	p := &PBox{table: table}
	copy(p.inverse[:], inv)
	return p, nil
}

// Forward gathers bits of b through the forward table: output bit i is input
// bit table[i]. The table fully determines the mapping, this is not a rotation.
func (p *PBox) Forward(b byte) byte {
	return permute(b, &p.table)
}

// Inverse undoes Forward using the derived inverse table, so
// p.Inverse(p.Forward(b)) == b for every byte value.
func (p *PBox) Inverse(b byte) byte {
	return permute(b, &p.inverse)
}

// Table returns a copy of the forward permutation table.
func (p *PBox) Table() [PBoxLen]byte {
	return p.table
}

// InverseTable returns a copy of the derived inverse table.
func (p *PBox) InverseTable() [PBoxLen]byte {
	return p.inverse
}

func permute(b byte, table *[PBoxLen]byte) byte {
	var out byte
	for i, src := range table {
		out |= (b >> src & 1) << i
	}
	return out
}
