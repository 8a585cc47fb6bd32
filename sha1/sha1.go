//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 word primitives needed to fold the
// input-independent parts of rounds 0-4 into per-round constants. It
// is not a hash implementation: there is no padding and no block
// processing.
package sha1

import (
	"math/bits"
)

// Initialization vector.
const (
	IV0 = 0x67452301
	IV1 = 0xEFCDAB89
	IV2 = 0x98BADCFE
	IV3 = 0x10325476
	IV4 = 0xC3D2E1F0
)

// K00 is the additive constant of rounds 0-19.
const K00 = 0x5A827999

// Folded round constants of rounds 0-4, reduced modulo 2^32.
const (
	RoundConstant00 = 0x9FB498B3
	RoundConstant01 = 0x66B0CD0D
	RoundConstant02 = 0xF33D5697
	RoundConstant03 = 0xD675E47B
	RoundConstant04 = 0xB453C259
)

// RoundConstants returns the folded round constants as an array.
func RoundConstants() [5]uint32 {
	return [5]uint32{
		RoundConstant00,
		RoundConstant01,
		RoundConstant02,
		RoundConstant03,
		RoundConstant04,
	}
}

// State holds the working variables a, b, c, d, and e.
type State [5]uint32

// IV returns the initial state.
func IV() State {
	return State{IV0, IV1, IV2, IV3, IV4}
}

// LeftRotate rotates the 32-bit word left by n bits. The rotation
// count is taken modulo 32.
func LeftRotate(word uint32, n int) uint32 {
	return bits.RotateLeft32(word, n&31)
}

// F00 is the boolean function of rounds 0-19.
func F00(b, c, d uint32) uint32 {
	return d ^ (b & (c ^ d))
}
