package scalar

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/paramio"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Ell is a general ellipsoid: center V plus three semi-axis vectors
// A, B, C (not necessarily orthogonal for the most general form, but
// orthogonal for the common case this editor targets).
type Ell struct {
	V, A, B, C vecmat.Vec3
}

// TypeName implements primitive.Primitive.
func (e *Ell) TypeName() string { return "ELL" }

// Keypoint implements primitive.Primitive: the center V.
func (e *Ell) Keypoint() vecmat.Vec3 { return e.V }

// ApplyMatrix implements primitive.Primitive.
func (e *Ell) ApplyMatrix(m vecmat.Mat4) error {
	e.V = vecmat.TransformPoint(m, e.V)
	e.A = vecmat.TransformVec(m, e.A)
	e.B = vecmat.TransformVec(m, e.B)
	e.C = vecmat.TransformVec(m, e.C)
	return nil
}

// Fields builds the ELL scalar-scale table (§4.9): A, B, C each scale
// independently, direction preserved.
func (e *Ell) Fields() Fields {
	scaleVec := func(v *vecmat.Vec3, name string) Field {
		return Field{Name: name, Scale: func(factor float64) error {
			if vecmat.IsZero(*v, 1e-20) {
				return primitive.Newf(primitive.GeometryRejected, "%s is degenerate and cannot be scaled", name)
			}
			*v = vecmat.Scale(*v, factor)
			return nil
		}}
	}
	return Fields{
		editflag.EllScaleA: scaleVec(&e.A, "A"),
		editflag.EllScaleB: scaleVec(&e.B, "B"),
		editflag.EllScaleC: scaleVec(&e.C, "C"),
	}
}

// Menu builds ELL's edit menu (spec §3.2): independent A/B/C scale
// plus the generic uniform scale every primitive falls through to.
func (e *Ell) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	return primitive.Menu{
		{Label: "ELL MENU", Handler: nil},
		{Label: "Scale A", Handler: func() error { setFlag(editflag.EllScaleA); return nil }},
		{Label: "Scale B", Handler: func() error { setFlag(editflag.EllScaleB); return nil }},
		{Label: "Scale C", Handler: func() error { setFlag(editflag.EllScaleC); return nil }},
		{Label: "Scale A,B,C (uniform)", Handler: func() error { setFlag(editflag.GenericScale); return nil }},
	}
}

// WriteParams renders the round-trip text form (spec §6.2): four
// lines, Vertex/A/B/C, values scaled by base2local.
func (e *Ell) WriteParams(base2local float64) string {
	lines := []string{
		paramio.WriteVec3("Vertex", vecmat.Scale(e.V, base2local)),
		paramio.WriteVec3("A", vecmat.Scale(e.A, base2local)),
		paramio.WriteVec3("B", vecmat.Scale(e.B, base2local)),
		paramio.WriteVec3("C", vecmat.Scale(e.C, base2local)),
	}
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}

// ReadEllParams parses the ELL round-trip text form, scaling by
// local2base.
func ReadEllParams(text string, local2base float64) (*Ell, error) {
	lines := paramio.Lines(text)
	if err := paramio.Require(lines, 4); err != nil {
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
	return &Ell{V: v, A: a, B: b, C: c}, nil
}
