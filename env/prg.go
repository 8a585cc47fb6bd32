//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

type seededReader struct {
	cipher *chacha20.Cipher
}

// NewSeededReader creates a deterministic entropy source from the
// seed. The stream is the ChaCha20 keystream under a key holding the
// big-endian seed and a zero nonce.
func NewSeededReader(seed uint64) (io.Reader, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	binary.BigEndian.PutUint64(key[:], seed)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &seededReader{
		cipher: c,
	}, nil
}

func (r *seededReader) Read(p []byte) (int, error) {
	// Keystream XOR zeros.
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
