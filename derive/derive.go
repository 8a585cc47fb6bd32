//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package derive computes the SHA-1 round constants of the initial
// step optimization. Each constant collects the parts of rounds 0-4
// that do not depend on the message: the IV words, the rotations, the
// round function, and K00.
package derive

import (
	"math/big"

	"github.com/markkurossi/sha1rc/env"
	"github.com/markkurossi/sha1rc/mpint"
	"github.com/markkurossi/sha1rc/sha1"
)

// Constants holds the round constants of rounds 0-4. The values are
// not reduced modulo 2^32.
type Constants [5]*big.Int

// Derive computes the round constants by applying rounds 0-4 to the
// IV with all message words taken as zero.
func Derive(config *env.Config) Constants {
	log := config.GetLog()

	a, b, c, d, e := uint32(sha1.IV0), uint32(sha1.IV1), uint32(sha1.IV2),
		uint32(sha1.IV3), uint32(sha1.IV4)
	log.Debugf("state0: a=%08x b=%08x c=%08x d=%08x e=%08x", a, b, c, d, e)

	rc0 := mpint.Sum(sha1.LeftRotate(a, 5), sha1.F00(b, c, d), e, sha1.K00)

	// Round 1. The new a depends on the message word and is not
	// used by any later constant.
	b1, c1, d1, e1 := a, sha1.LeftRotate(b, 30), c, d
	log.Debugf("state1: b=%08x c=%08x d=%08x e=%08x", b1, c1, d1, e1)

	rc1 := mpint.Sum(sha1.F00(b1, c1, d1), e1, sha1.K00)

	// Round 2.
	c2, d2, e2 := sha1.LeftRotate(b1, 30), c1, d1
	log.Debugf("state2: c=%08x d=%08x e=%08x", c2, d2, e2)

	rc2 := mpint.Sum(e2, sha1.K00)

	// Round 3.
	d3, e3 := c2, d2
	log.Debugf("state3: d=%08x e=%08x", d3, e3)

	rc3 := mpint.Sum(e3, sha1.K00)

	// Round 4.
	e4 := d3
	log.Debugf("state4: e=%08x", e4)

	rc4 := mpint.Sum(e4, sha1.K00)

	return Constants{rc0, rc1, rc2, rc3, rc4}
}

// Truncated returns the constants reduced modulo 2^32.
func (c Constants) Truncated() [5]uint32 {
	var result [5]uint32
	for i, v := range c {
		result[i] = mpint.Low32(v)
	}
	return result
}
