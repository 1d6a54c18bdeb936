package boxkit

import (
	"errors"
	"testing"
)

func TestSBoxRoundTrip(t *testing.T) {
	s, err := NewSBox(DefaultSBoxTable)
	if err != nil {
		t.Fatal(err)
	}
	for b := 0; b < 256; b++ {
		if got := s.Inverse(s.Forward(byte(b))); got != byte(b) {
			t.Fatalf("inverse(forward(%#x)) = %#x", b, got)
		}
		if got := s.Forward(s.Inverse(byte(b))); got != byte(b) {
			t.Fatalf("forward(inverse(%#x)) = %#x", b, got)
		}
	}
}

func TestSBoxKnownVector(t *testing.T) {
	s, err := NewSBox(DefaultSBoxTable)
	if err != nil {
		t.Fatal(err)
	}
	// 10110011 substitutes nibble-wise to 11000001.
	if got := s.Forward(179); got != 193 {
		t.Fatalf("forward(179) = %d, want 193", got)
	}
	if got := s.Inverse(193); got != 179 {
		t.Fatalf("inverse(193) = %d, want 179", got)
	}
}

func TestNewSBoxRejectsDuplicate(t *testing.T) {
	table := DefaultSBoxTable
	table[5] = table[2]
	_, err := NewSBox(table)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cerr.Kind != "s-box" || cerr.Index != 5 || cerr.Value != table[2] || cerr.Reason != "duplicate" {
		t.Fatalf("unexpected error detail: %+v", cerr)
	}
}

func TestNewSBoxRejectsOutOfRange(t *testing.T) {
	table := DefaultSBoxTable
	table[9] = 16
	_, err := NewSBox(table)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cerr.Kind != "s-box" || cerr.Index != 9 || cerr.Value != 16 || cerr.Reason != "out of range" {
		t.Fatalf("unexpected error detail: %+v", cerr)
	}
}

func TestSBoxTableCopies(t *testing.T) {
	s, err := NewSBox(DefaultSBoxTable)
	if err != nil {
		t.Fatal(err)
	}
	table := s.Table()
	table[0] ^= 0xF
	if s.Table() != DefaultSBoxTable {
		t.Fatal("mutating the returned table changed the engine")
	}
}
