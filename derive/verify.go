//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package derive

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/markkurossi/sha1rc/env"
	"github.com/markkurossi/sha1rc/sha1"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

// Verify checks the constants against the known folded round
// constants and checks that rounds 0-4 computed with the folded
// constants match the reference rounds for samples random message
// prefixes.
func Verify(config *env.Config, c Constants, samples int) error {
	out := config.GetOutput()
	log := config.GetLog()

	rc := c.Truncated()
	known := sha1.RoundConstants()
	for i := range rc {
		if rc[i] != known[i] {
			failColor.Fprintf(out, "FAIL")
			fmt.Fprintf(out, " round constant %d\n", i)
			return fmt.Errorf("round constant %d: got 0x%08x, expected 0x%08x",
				i, rc[i], known[i])
		}
	}
	okColor.Fprintf(out, "ok")
	fmt.Fprintf(out, "   round constants\n")

	rand := config.GetRandom()
	var buf [5 * 4]byte
	for n := 0; n < samples; n++ {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return err
		}
		var w [5]uint32
		for i := range w {
			w[i] = binary.BigEndian.Uint32(buf[i*4:])
		}
		folded := sha1.FoldedRounds(rc, w)
		expected := sha1.Rounds00(sha1.IV(), w[:])
		log.Debugf("sample %d: w=%08x folded=%08x", n, w, folded)
		if folded != expected {
			failColor.Fprintf(out, "FAIL")
			fmt.Fprintf(out, " folded rounds\n")
			return fmt.Errorf("folded rounds for w=%08x: got %08x, expected %08x",
				w, folded, expected)
		}
	}
	okColor.Fprintf(out, "ok")
	fmt.Fprintf(out, "   folded rounds (%d samples)\n", samples)

	return nil
}
