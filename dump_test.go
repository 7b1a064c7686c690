package deriv

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	n, err := ParseString[float64]("x^2 + sin(y)")
	if err != nil {
		t.Fatalf("error parsing: %v", err)
	}
	got := n.Dump()
	for _, want := range []string{"+", "^", "x", "2", "sin", "y"} {
		if !strings.Contains(got, want) {
			t.Errorf("dump is missing %q:\n%s", want, got)
		}
	}
	if lines := strings.Count(strings.TrimRight(got, "\n"), "\n") + 1; lines != 7 {
		// Root marker plus one line per node.
		t.Errorf("dump has %d lines, want 7:\n%s", lines, got)
	}
}

func TestDumpLeaf(t *testing.T) {
	got := Const(-2.5).Dump()
	if !strings.Contains(got, "(-2.5)") {
		t.Errorf("dump is missing the constant:\n%s", got)
	}
}
