package scalar

import (
	"math"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/paramio"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Tor is a torus: center V, unit axis H, major radius Ra (ring
// radius) and minor radius Rh (tube radius). The type invariant
// Rh <= Ra (spec §3.5) is preserved by clamping rather than
// rejecting, matching spec §8 scenario S2.
type Tor struct {
	V, H   vecmat.Vec3
	Ra, Rh float64
}

// TypeName implements primitive.Primitive.
func (t *Tor) TypeName() string { return "TOR" }

// Keypoint implements primitive.Primitive.
func (t *Tor) Keypoint() vecmat.Vec3 { return t.V }

// ApplyMatrix implements primitive.Primitive. V and H are
// transformed, H is re-unitized, and both radii are multiplied by the
// ratio of H's transformed length to its original length, so
// translations and rotations leave them unchanged and a uniform scale
// matrix scales them.
func (t *Tor) ApplyMatrix(m vecmat.Mat4) error {
	oldLen := vecmat.Magnitude(t.H)
	t.V = vecmat.TransformPoint(m, t.V)
	newH := vecmat.TransformVec(m, t.H)
	newLen := vecmat.Magnitude(newH)
	if unit, ok := vecmat.Unitize(newH); ok {
		t.H = unit
	}
	if oldLen > 1e-20 {
		ratio := newLen / oldLen
		t.Ra *= ratio
		t.Rh *= ratio
	}
	return nil
}

// Fields builds the TOR scalar-scale table (§4.9): R1 scales the
// major radius, R2 scales the minor radius and clamps it to the
// major radius (spec §8 S2: r_h = min(r_a, r_h*scale)).
func (t *Tor) Fields() Fields {
	return Fields{
		editflag.TorR1: {Name: "r_a", Scale: func(factor float64) error {
			t.Ra *= factor
			if t.Rh > t.Ra {
				t.Rh = t.Ra
			}
			return nil
		}},
		editflag.TorR2: {Name: "r_h", Scale: func(factor float64) error {
			t.Rh = math.Min(t.Ra, t.Rh*factor)
			return nil
		}},
	}
}

// Menu builds TOR's edit menu.
func (t *Tor) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	return primitive.Menu{
		{Label: "TORUS MENU", Handler: nil},
		{Label: "Set radius 1 (r_a)", Handler: func() error { setFlag(editflag.TorR1); return nil }},
		{Label: "Set radius 2 (r_h)", Handler: func() error { setFlag(editflag.TorR2); return nil }},
	}
}

// WriteParams renders the round-trip text form (spec §6.2): Vertex,
// Normal, radius_1, radius_2.
func (t *Tor) WriteParams(base2local float64) string {
	out := paramio.WriteVec3("Vertex", vecmat.Scale(t.V, base2local)) + "\n"
	out += paramio.WriteVec3("Normal", t.H) + "\n"
	out += paramio.WriteScalar("radius_1", t.Ra*base2local) + "\n"
	out += paramio.WriteScalar("radius_2", t.Rh*base2local) + "\n"
	return out
}

// ReadTorParams parses TOR's round-trip text form, unitizing the
// normal on read (spec §6.2).
func ReadTorParams(text string, local2base float64) (*Tor, error) {
	lines := paramio.Lines(text)
	if err := paramio.Require(lines, 4); err != nil {
		return nil, err
	}
	v, err := paramio.ParseVec3(lines[0], local2base)
	if err != nil {
		return nil, err
	}
	h, err := paramio.ParseVec3(lines[1], 1.0)
	if err != nil {
		return nil, err
	}
	unitH, ok := vecmat.Unitize(h)
	if !ok {
		return nil, primitive.Newf(primitive.GeometryRejected, "torus normal has zero length")
	}
	ra, err := paramio.ParseScalar(lines[2], local2base)
	if err != nil {
		return nil, err
	}
	rh, err := paramio.ParseScalar(lines[3], local2base)
	if err != nil {
		return nil, err
	}
	return &Tor{V: v, H: unitH, Ra: ra, Rh: rh}, nil
}
