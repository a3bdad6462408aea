package paramio

import (
	"testing"

	"github.com/csgedit/csgedit/internal/geom/vecmat"
)

func TestLinesTolerantOfCRLF(t *testing.T) {
	got := Lines("a\r\nb\r\nc\r\n")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Lines: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestStripLabelIgnoresPrefix(t *testing.T) {
	if got := StripLabel("Vertex: 1 2 3"); got != "1 2 3" {
		t.Errorf("StripLabel: got %q", got)
	}
	if got := StripLabel("extra: prefix: label: 4 5 6"); got != "4 5 6" {
		t.Errorf("StripLabel with multiple colons: got %q", got)
	}
}

func TestParseVec3RoundTrip(t *testing.T) {
	v := vecmat.Vec3{X: 1.5, Y: -2.25, Z: 3}
	line := WriteVec3("Vertex", v)
	got, err := ParseVec3(line, 1.0)
	if err != nil {
		t.Fatalf("ParseVec3: %v", err)
	}
	if !vecmat.Equal(got, v, 1e-9) {
		t.Errorf("round trip: got %v want %v", got, v)
	}
}

func TestParseFloatsBadArity(t *testing.T) {
	if _, err := ParseFloats("Vertex: 1 2", 3); err == nil {
		t.Fatal("expected error for wrong field count")
	}
}
