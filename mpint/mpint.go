//
// mpint.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package mpint implements arbitrary-precision sums of 32-bit words.
package mpint

import (
	"math/big"
)

var mask32 = big.NewInt(0xffffffff)

// FromUint32 creates a new integer with the value v.
func FromUint32(v uint32) *big.Int {
	return big.NewInt(0).SetUint64(uint64(v))
}

// Add returns a new integer a+b.
func Add(a, b *big.Int) *big.Int {
	return big.NewInt(0).Add(a, b)
}

// Sum returns the sum of the words without 32-bit wraparound.
func Sum(words ...uint32) *big.Int {
	result := big.NewInt(0)
	for _, w := range words {
		result.Add(result, FromUint32(w))
	}
	return result
}

// Low32 returns the value modulo 2^32.
func Low32(x *big.Int) uint32 {
	return uint32(big.NewInt(0).And(x, mask32).Uint64())
}

// High returns the bits above the low 32 bits.
func High(x *big.Int) *big.Int {
	return big.NewInt(0).Rsh(x, 32)
}

// Hex returns x as lowercase hexadecimal with the 0x prefix.
func Hex(x *big.Int) string {
	return "0x" + x.Text(16)
}
