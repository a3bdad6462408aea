package scalar

import (
	"math"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/paramio"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Eto is an elliptical torus: center V, axis of revolution N, semi-
// major axis vector C of the elliptical cross-section, semi-minor
// length Rd, and distance R from V to the cross-section's center.
// The type invariant Rd <= |C| (spec §3.5) is clamped, mirroring
// TOR's minor/major radius clamp.
type Eto struct {
	V, N, C vecmat.Vec3
	R, Rd   float64
}

// TypeName implements primitive.Primitive.
func (e *Eto) TypeName() string { return "ETO" }

// Keypoint implements primitive.Primitive.
func (e *Eto) Keypoint() vecmat.Vec3 { return e.V }

// ApplyMatrix implements primitive.Primitive.
func (e *Eto) ApplyMatrix(m vecmat.Mat4) error {
	e.V = vecmat.TransformPoint(m, e.V)
	e.N = vecmat.TransformVec(m, e.N)
	e.C = vecmat.TransformVec(m, e.C)
	return nil
}

// Fields builds the ETO scalar-scale table (§4.9).
func (e *Eto) Fields() Fields {
	return Fields{
		editflag.EtoR: {Name: "r", Scale: func(factor float64) error {
			e.R *= factor
			return nil
		}},
		editflag.EtoRd: {Name: "r_d", Scale: func(factor float64) error {
			e.Rd = math.Min(vecmat.Magnitude(e.C), e.Rd*factor)
			return nil
		}},
		editflag.EtoScaleC: {Name: "C", Scale: func(factor float64) error {
			if vecmat.IsZero(e.C, 1e-20) {
				return primitive.Newf(primitive.GeometryRejected, "C is degenerate and cannot be scaled")
			}
			e.C = vecmat.Scale(e.C, factor)
			if e.Rd > vecmat.Magnitude(e.C) {
				e.Rd = vecmat.Magnitude(e.C)
			}
			return nil
		}},
	}
}

// Menu builds ETO's edit menu.
func (e *Eto) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	return primitive.Menu{
		{Label: "ETO MENU", Handler: nil},
		{Label: "Set r", Handler: func() error { setFlag(editflag.EtoR); return nil }},
		{Label: "Set r_d", Handler: func() error { setFlag(editflag.EtoRd); return nil }},
		{Label: "Scale C", Handler: func() error { setFlag(editflag.EtoScaleC); return nil }},
	}
}

// WriteParams renders the round-trip text form: Vertex, Normal, C,
// r, r_d.
func (e *Eto) WriteParams(base2local float64) string {
	out := paramio.WriteVec3("Vertex", vecmat.Scale(e.V, base2local)) + "\n"
	out += paramio.WriteVec3("Normal", e.N) + "\n"
	out += paramio.WriteVec3("C", vecmat.Scale(e.C, base2local)) + "\n"
	out += paramio.WriteScalar("r", e.R*base2local) + "\n"
	out += paramio.WriteScalar("r_d", e.Rd*base2local) + "\n"
	return out
}

// ReadEtoParams parses ETO's round-trip text form.
func ReadEtoParams(text string, local2base float64) (*Eto, error) {
	lines := paramio.Lines(text)
	if err := paramio.Require(lines, 5); err != nil {
		return nil, err
	}
	v, err := paramio.ParseVec3(lines[0], local2base)
	if err != nil {
		return nil, err
	}
	n, err := paramio.ParseVec3(lines[1], 1.0)
	if err != nil {
		return nil, err
	}
	c, err := paramio.ParseVec3(lines[2], local2base)
	if err != nil {
		return nil, err
	}
	r, err := paramio.ParseScalar(lines[3], local2base)
	if err != nil {
		return nil, err
	}
	rd, err := paramio.ParseScalar(lines[4], local2base)
	if err != nil {
		return nil, err
	}
	return &Eto{V: v, N: n, C: c, R: r, Rd: rd}, nil
}
