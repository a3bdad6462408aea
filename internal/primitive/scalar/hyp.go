package scalar

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/paramio"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Hyp is a hyperboloid of revolution: apex V, axis H, semi-major
// vector A at the base, semi-minor magnitude B at the base, and
// neck-to-base ratio C in (0, 1].
type Hyp struct {
	V, H, A vecmat.Vec3
	B, C    float64
}

// TypeName implements primitive.Primitive.
func (h *Hyp) TypeName() string { return "HYP" }

// Keypoint implements primitive.Primitive.
func (h *Hyp) Keypoint() vecmat.Vec3 { return h.V }

// ApplyMatrix implements primitive.Primitive.
func (h *Hyp) ApplyMatrix(m vecmat.Mat4) error {
	h.V = vecmat.TransformPoint(m, h.V)
	h.H = vecmat.TransformVec(m, h.H)
	h.A = vecmat.TransformVec(m, h.A)
	return nil
}

// Fields builds the HYP scalar-scale table (§4.9). HypC multiplies
// the neck-to-base ratio c by the factor like the other fields; it
// rejects results outside (0, 1].
func (h *Hyp) Fields() Fields {
	return Fields{
		editflag.HypScaleA: {Name: "A", Scale: func(factor float64) error {
			if vecmat.IsZero(h.A, 1e-20) {
				return primitive.Newf(primitive.GeometryRejected, "A is degenerate and cannot be scaled")
			}
			h.A = vecmat.Scale(h.A, factor)
			return nil
		}},
		editflag.HypScaleB: {Name: "b", Scale: func(factor float64) error {
			h.B *= factor
			return nil
		}},
		editflag.HypC: {Name: "c", Scale: func(factor float64) error {
			newC := h.C * factor
			if newC <= 0 || newC > 1 {
				return primitive.Newf(primitive.OutOfRange, "neck-to-base ratio c must be in (0, 1]")
			}
			h.C = newC
			return nil
		}},
	}
}

// Menu builds HYP's edit menu.
func (h *Hyp) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	return primitive.Menu{
		{Label: "HYP MENU", Handler: nil},
		{Label: "Scale A", Handler: func() error { setFlag(editflag.HypScaleA); return nil }},
		{Label: "Scale b", Handler: func() error { setFlag(editflag.HypScaleB); return nil }},
		{Label: "Set neck ratio c", Handler: func() error { setFlag(editflag.HypC); return nil }},
	}
}

// WriteParams renders the round-trip text form: Vertex, Height, A, b, c.
func (h *Hyp) WriteParams(base2local float64) string {
	out := paramio.WriteVec3("Vertex", vecmat.Scale(h.V, base2local)) + "\n"
	out += paramio.WriteVec3("Height", vecmat.Scale(h.H, base2local)) + "\n"
	out += paramio.WriteVec3("A", vecmat.Scale(h.A, base2local)) + "\n"
	out += paramio.WriteScalar("b", h.B*base2local) + "\n"
	out += paramio.WriteScalar("c", h.C) + "\n"
	return out
}

// ReadHypParams parses HYP's round-trip text form; c is
// dimensionless and is not scaled by local2base.
func ReadHypParams(text string, local2base float64) (*Hyp, error) {
	lines := paramio.Lines(text)
	if err := paramio.Require(lines, 5); err != nil {
		return nil, err
	}
	v, err := paramio.ParseVec3(lines[0], local2base)
	if err != nil {
		return nil, err
	}
	height, err := paramio.ParseVec3(lines[1], local2base)
	if err != nil {
		return nil, err
	}
	a, err := paramio.ParseVec3(lines[2], local2base)
	if err != nil {
		return nil, err
	}
	b, err := paramio.ParseScalar(lines[3], local2base)
	if err != nil {
		return nil, err
	}
	c, err := paramio.ParseScalar(lines[4], 1.0)
	if err != nil {
		return nil, err
	}
	return &Hyp{V: v, H: height, A: a, B: b, C: c}, nil
}
