package boxkit

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// GenerateSBox derives a random bijective substitution table from seed and
// returns it as a ready engine. The same seed always yields the same table.
func GenerateSBox(seed []byte) (*SBox, error) {
	var table [SBoxLen]byte
	if err := generateTable(seed, "boxkit-sbox", table[:]); err != nil {
		return nil, err
	}
	return NewSBox(table)
}

// GeneratePBox derives a random bijective permutation table from seed and
// returns it as a ready engine. The same seed always yields the same table.
func GeneratePBox(seed []byte) (*PBox, error) {
	var table [PBoxLen]byte
	if err := generateTable(seed, "boxkit-pbox", table[:]); err != nil {
		return nil, err
	}
	return NewPBox(table)
}

// generateTable fills table with a Fisher-Yates shuffled identity mapping,
// driven by a ChaCha20 keystream keyed from a BLAKE2b hash of the seed. The
// label separates the s-box and p-box streams for identical seeds.
func generateTable(seed []byte, label string, table []byte) error {
	ks, err := newKeystream(seed, label)
	if err != nil {
		return err
	}
	for i := range table {
		table[i] = byte(i)
	}
	for i := len(table) - 1; i > 0; i-- {
		j := ks.intn(i + 1)
		table[i], table[j] = table[j], table[i]
	}
	return nil
}

type keystream struct {
	cipher *chacha20.Cipher
	buf    [32]byte
	pos    int
}

func newKeystream(seed []byte, label string) (*keystream, error) {
	key := blake2b.Sum256(append([]byte(label), seed...))
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, err
	}
	return &keystream{cipher: cipher, pos: len(key)}, nil
}

func (k *keystream) next() byte {
	if k.pos == len(k.buf) {
		for i := range k.buf {
			k.buf[i] = 0
		}
		k.cipher.XORKeyStream(k.buf[:], k.buf[:])
		k.pos = 0
	}
	b := k.buf[k.pos]
	k.pos++
	return b
}

// intn returns an unbiased value in [0,n) by rejecting keystream bytes that
// would wrap unevenly.
func (k *keystream) intn(n int) int {
	limit := 256 - 256%n
	for {
		if b := int(k.next()); b < limit {
			return b % n
		}
	}
}
