package boxkit

import "testing"

func TestGenerateSBoxDeterministic(t *testing.T) {
	a, err := GenerateSBox([]byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateSBox([]byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Table() != b.Table() {
		t.Fatal("same seed produced different tables")
	}
	c, err := GenerateSBox([]byte("other seed"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Table() == c.Table() {
		t.Fatal("different seeds produced the same table")
	}
}

func TestGeneratePBoxDeterministic(t *testing.T) {
	a, err := GeneratePBox([]byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GeneratePBox([]byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Table() != b.Table() {
		t.Fatal("same seed produced different tables")
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	s, err := GenerateSBox([]byte("round trip"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := GeneratePBox([]byte("round trip"))
	if err != nil {
		t.Fatal(err)
	}
	for b := 0; b < 256; b++ {
		if got := s.Inverse(s.Forward(byte(b))); got != byte(b) {
			t.Fatalf("generated s-box failed round trip at %#x", b)
		}
		if got := p.Inverse(p.Forward(byte(b))); got != byte(b) {
			t.Fatalf("generated p-box failed round trip at %#x", b)
		}
	}
}
