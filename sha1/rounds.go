//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

// Round00 applies one round 0-19 step with the message word w.
func Round00(s State, w uint32) State {
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]

	t := LeftRotate(a, 5) + F00(b, c, d) + e + w + K00
	return State{t, a, LeftRotate(b, 30), c, d}
}

// Rounds00 applies Round00 once for each message word.
func Rounds00(s State, w []uint32) State {
	for _, word := range w {
		s = Round00(s, word)
	}
	return s
}

// FoldedRounds computes rounds 0-4 starting from the IV using the
// folded round constants rc. The result equals Rounds00(IV(), w[:])
// when rc holds the constants returned by RoundConstants.
func FoldedRounds(rc [5]uint32, w [5]uint32) State {
	a := LeftRotate(IV0, 30)
	b := LeftRotate(IV1, 30)

	t0 := rc[0] + w[0]
	t1 := rc[1] + LeftRotate(t0, 5) + w[1]

	r0 := LeftRotate(t0, 30)
	t2 := rc[2] + LeftRotate(t1, 5) + F00(t0, a, b) + w[2]

	r1 := LeftRotate(t1, 30)
	t3 := rc[3] + LeftRotate(t2, 5) + F00(t1, r0, a) + w[3]

	r2 := LeftRotate(t2, 30)
	t4 := rc[4] + LeftRotate(t3, 5) + F00(t2, r1, r0) + w[4]

	return State{t4, t3, r2, r1, r0}
}
