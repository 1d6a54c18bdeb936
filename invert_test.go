package boxkit

import "testing"

func TestInvertTableSBoxDerivation(t *testing.T) {
	s, err := NewSBox(DefaultSBoxTable)
	if err != nil {
		t.Fatal(err)
	}
	table, inv := s.Table(), s.InverseTable()
	for i := range table {
		if inv[table[i]] != byte(i) {
			t.Fatalf("inv[table[%d]] = %d, want %d", i, inv[table[i]], i)
		}
	}
}

func TestInvertTableDoubleInverseSBox(t *testing.T) {
	s, err := NewSBox(DefaultSBoxTable)
	if err != nil {
		t.Fatal(err)
	}
	back, err := NewSBox(s.InverseTable())
	if err != nil {
		t.Fatal(err)
	}
	if back.InverseTable() != DefaultSBoxTable {
		t.Fatal("inverting the inverse did not reproduce the original table")
	}
}

func TestInvertTableDoubleInversePBox(t *testing.T) {
	p, err := NewPBox(DefaultPBoxTable)
	if err != nil {
		t.Fatal(err)
	}
	back, err := NewPBox(p.InverseTable())
	if err != nil {
		t.Fatal(err)
	}
	if back.InverseTable() != DefaultPBoxTable {
		t.Fatal("inverting the inverse did not reproduce the original table")
	}
}
