package main

import (
	"fmt"

	"github.com/malivvan/boxkit"
)

// Applies one substitution and one permutation layer to a byte and undoes
// them again, the way a caller would compose an SPN stage from boxkit.
func main() {
	sbox, err := boxkit.NewSBox(boxkit.DefaultSBoxTable)
	if err != nil {
		panic(err)
	}
	pbox, err := boxkit.NewPBox(boxkit.DefaultPBoxTable)
	if err != nil {
		panic(err)
	}

	b := byte(0b10110011)
	fmt.Printf("input:   %08b\n", b)

	enc := pbox.Forward(sbox.Forward(b))
	fmt.Printf("encoded: %08b\n", enc)

	dec := sbox.Inverse(pbox.Inverse(enc))
	fmt.Printf("decoded: %08b\n", dec)
}
