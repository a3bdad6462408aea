package scalar

import (
	"fmt"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/paramio"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Superell is a superellipsoid: center V, three semi-axis vectors A,
// B, C, and two shape exponents N (north-south) and E (east-west).
type Superell struct {
	V, A, B, C vecmat.Vec3
	N, E       float64
}

// TypeName implements primitive.Primitive.
func (s *Superell) TypeName() string { return "SUPERELL" }

// Keypoint implements primitive.Primitive.
func (s *Superell) Keypoint() vecmat.Vec3 { return s.V }

// ApplyMatrix implements primitive.Primitive.
func (s *Superell) ApplyMatrix(m vecmat.Mat4) error {
	s.V = vecmat.TransformPoint(m, s.V)
	s.A = vecmat.TransformVec(m, s.A)
	s.B = vecmat.TransformVec(m, s.B)
	s.C = vecmat.TransformVec(m, s.C)
	return nil
}

// Fields builds the SUPERELL scalar-scale table (§4.9): independent
// A/B/C scale plus the N/E exponent sub-ops, which set the exponent
// directly (it is dimensionless) rather than multiplying it.
func (s *Superell) Fields() Fields {
	scaleVec := func(v *vecmat.Vec3, name string) Field {
		return Field{Name: name, Scale: func(factor float64) error {
			if vecmat.IsZero(*v, 1e-20) {
				return primitive.Newf(primitive.GeometryRejected, "%s is degenerate and cannot be scaled", name)
			}
			*v = vecmat.Scale(*v, factor)
			return nil
		}}
	}
	setExp := func(e *float64, name string) Field {
		return Field{Name: name, Scale: func(factor float64) error {
			*e = factor
			return nil
		}}
	}
	return Fields{
		editflag.SuperellScaleA: scaleVec(&s.A, "A"),
		editflag.SuperellScaleB: scaleVec(&s.B, "B"),
		editflag.SuperellScaleC: scaleVec(&s.C, "C"),
		editflag.SuperellSetN:   setExp(&s.N, "n"),
		editflag.SuperellSetE:   setExp(&s.E, "e"),
	}
}

// Menu builds SUPERELL's edit menu.
func (s *Superell) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	return primitive.Menu{
		{Label: "SUPERELLIPSOID MENU", Handler: nil},
		{Label: "Scale A", Handler: func() error { setFlag(editflag.SuperellScaleA); return nil }},
		{Label: "Scale B", Handler: func() error { setFlag(editflag.SuperellScaleB); return nil }},
		{Label: "Scale C", Handler: func() error { setFlag(editflag.SuperellScaleC); return nil }},
		{Label: "Set exponent n", Handler: func() error { setFlag(editflag.SuperellSetN); return nil }},
		{Label: "Set exponent e", Handler: func() error { setFlag(editflag.SuperellSetE); return nil }},
	}
}

// WriteParams renders the round-trip text form (spec §6.2): four
// vectors plus a final "<n, e>" line with two floats.
func (s *Superell) WriteParams(base2local float64) string {
	out := paramio.WriteVec3("Vertex", vecmat.Scale(s.V, base2local)) + "\n"
	out += paramio.WriteVec3("A", vecmat.Scale(s.A, base2local)) + "\n"
	out += paramio.WriteVec3("B", vecmat.Scale(s.B, base2local)) + "\n"
	out += paramio.WriteVec3("C", vecmat.Scale(s.C, base2local)) + "\n"
	out += fmt.Sprintf("<n, e>: %.12g %.12g\n", s.N, s.E)
	return out
}

// ReadSuperellParams parses SUPERELL's round-trip text form. N/E are
// dimensionless shape exponents and are not scaled by local2base.
func ReadSuperellParams(text string, local2base float64) (*Superell, error) {
	lines := paramio.Lines(text)
	if err := paramio.Require(lines, 5); err != nil {
		return nil, err
	}
	v, err := paramio.ParseVec3(lines[0], local2base)
	if err != nil {
		return nil, err
	}
	a, err := paramio.ParseVec3(lines[1], local2base)
	if err != nil {
		return nil, err
	}
	b, err := paramio.ParseVec3(lines[2], local2base)
	if err != nil {
		return nil, err
	}
	c, err := paramio.ParseVec3(lines[3], local2base)
	if err != nil {
		return nil, err
	}
	ne, err := paramio.ParseFloats(lines[4], 2)
	if err != nil {
		return nil, err
	}
	return &Superell{V: v, A: a, B: b, C: c, N: ne[0], E: ne[1]}, nil
}
