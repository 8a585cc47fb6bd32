//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package derive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/markkurossi/sha1rc/env"
	"github.com/markkurossi/sha1rc/mpint"
	"github.com/markkurossi/sha1rc/sha1"
	"github.com/sirupsen/logrus"
)

const expectedOutput = `Round Constant 0: 0x29fb498b3
Round Constant 1: 0x166b0cd0d
Round Constant 2: 0xf33d5697
Round Constant 3: 0xd675e47b
Round Constant 4: 0xb453c259
`

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := Derive(nil).Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.String() != expectedOutput {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s",
			buf.String(), expectedOutput)
	}
}

func TestIdempotent(t *testing.T) {
	var first, second bytes.Buffer

	c1 := Derive(nil)
	c2 := Derive(nil)
	c1.Print(&first)
	c2.Print(&second)

	if first.String() != second.String() {
		t.Errorf("outputs differ:\n%s\n%s", first.String(), second.String())
	}
	for i := range c1 {
		if c1[i] == c2[i] {
			t.Errorf("constant %d shared between derivations", i)
		}
	}
}

func TestWideConstant(t *testing.T) {
	c := Derive(nil)
	if c[0].BitLen() != 34 {
		t.Errorf("constant 0: bit length %d, expected 34", c[0].BitLen())
	}
	if mpint.High(c[0]).Int64() != 2 {
		t.Errorf("constant 0: carry %s, expected 2", mpint.High(c[0]))
	}
	if c[1].BitLen() != 33 {
		t.Errorf("constant 1: bit length %d, expected 33", c[1].BitLen())
	}
}

func TestTruncated(t *testing.T) {
	got := Derive(nil).Truncated()
	if got != sha1.RoundConstants() {
		t.Errorf("Truncated()=%08x, expected %08x", got, sha1.RoundConstants())
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Derive(nil).Table(&buf)
	out := buf.String()

	for _, s := range []string{
		"0x29fb498b3", "0x9fb498b3",
		"0x166b0cd0d", "0x66b0cd0d",
		"0xf33d5697", "0xd675e47b", "0xb453c259",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("table does not contain %s:\n%s", s, out)
		}
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	Derive(&env.Config{
		Log: log,
	})
	if !strings.Contains(buf.String(), "state4: e=59d148c0") {
		t.Errorf("missing state trace:\n%s", buf.String())
	}
}

func newConfig(t *testing.T, out *bytes.Buffer) *env.Config {
	rand, err := env.NewSeededReader(1)
	if err != nil {
		t.Fatalf("NewSeededReader: %v", err)
	}
	return &env.Config{
		Rand:   rand,
		Output: out,
	}
}

func TestVerify(t *testing.T) {
	var out bytes.Buffer
	err := Verify(newConfig(t, &out), Derive(nil), 1000)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if strings.Contains(out.String(), "FAIL") {
		t.Errorf("unexpected failure report:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "1000 samples") {
		t.Errorf("missing sample report:\n%s", out.String())
	}
}

func TestVerifyCorrupted(t *testing.T) {
	c := Derive(nil)
	c[3] = mpint.Add(c[3], mpint.FromUint32(1))

	var out bytes.Buffer
	err := Verify(newConfig(t, &out), c, 10)
	if err == nil {
		t.Fatalf("corrupted constant not detected")
	}
	if !strings.Contains(err.Error(), "round constant 3") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "FAIL") {
		t.Errorf("missing failure report:\n%s", out.String())
	}
}
