//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package derive

import (
	"fmt"
	"io"

	"github.com/markkurossi/sha1rc/mpint"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Print prints the constants, one labeled line per round.
func (c Constants) Print(w io.Writer) error {
	for i, v := range c {
		_, err := fmt.Fprintf(w, "Round Constant %d: %s\n", i, mpint.Hex(v))
		if err != nil {
			return err
		}
	}
	return nil
}

// Table prints the constants as a table with the full value, the
// value modulo 2^32, its bit length, and the carry above 32 bits.
func (c Constants) Table(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Round").SetAlign(tabulate.MR)
	tab.Header("Constant").SetAlign(tabulate.MR)
	tab.Header(fmt.Sprintf("mod 2%s", superscript.Itoa(32))).
		SetAlign(tabulate.MR)
	tab.Header("Bits").SetAlign(tabulate.MR)
	tab.Header("Carry").SetAlign(tabulate.MR)

	for i, v := range c {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", i))
		row.Column(mpint.Hex(v))
		row.Column(fmt.Sprintf("0x%08x", mpint.Low32(v)))
		row.Column(fmt.Sprintf("%d", v.BitLen()))
		row.Column(mpint.High(v).String())
	}
	tab.Print(w)
}
