// Package tgc implements the truncated general cone editor (spec
// §4.5), grounded in BRL-CAD's edtgc.c: a base ellipse at V spanned by
// A and B, a top ellipse at V+H spanned by C and D, independent and
// coupled scaling of the six defining vectors, rotation of H or of the
// A/B/C/D cross-section, and the two "move end of H" variants.
package tgc

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/paramio"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Tgc is a truncated general cone: base vertex V, height vector H,
// base-ellipse semi-axes A and B, top-ellipse semi-axes C and D.
type Tgc struct {
	V, H, A, B, C, D vecmat.Vec3
}

// TypeName implements primitive.Primitive.
func (t *Tgc) TypeName() string { return "TGC" }

// Keypoint implements primitive.Primitive.
func (t *Tgc) Keypoint() vecmat.Vec3 { return t.V }

// ApplyMatrix implements primitive.Primitive.
func (t *Tgc) ApplyMatrix(m vecmat.Mat4) error {
	t.V = vecmat.TransformPoint(m, t.V)
	t.H = vecmat.TransformVec(m, t.H)
	t.A = vecmat.TransformVec(m, t.A)
	t.B = vecmat.TransformVec(m, t.B)
	t.C = vecmat.TransformVec(m, t.C)
	t.D = vecmat.TransformVec(m, t.D)
	return nil
}

// Menu builds TGC's edit menu (rt_solid_edit_menu_item tgc_menu).
func (t *Tgc) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	set := func(op editflag.SubOp) func() error {
		return func() error { setFlag(op); return nil }
	}
	return primitive.Menu{
		{Label: "TGC MENU", Handler: nil},
		{Label: "Scale H", Handler: set(editflag.TgcScaleH)},
		{Label: "Scale A", Handler: set(editflag.TgcScaleA)},
		{Label: "Scale B", Handler: set(editflag.TgcScaleB)},
		{Label: "Scale C", Handler: set(editflag.TgcScaleC)},
		{Label: "Scale D", Handler: set(editflag.TgcScaleD)},
		{Label: "Scale A,B", Handler: set(editflag.TgcScaleAB)},
		{Label: "Scale C,D", Handler: set(editflag.TgcScaleCD)},
		{Label: "Scale A,B,C,D", Handler: set(editflag.TgcScaleABCD)},
		{Label: "Scale H, move V", Handler: set(editflag.TgcScaleHV)},
		{Label: "Scale H, adjust C,D", Handler: set(editflag.TgcScaleHCD)},
		{Label: "Scale H, move V, adjust A,B", Handler: set(editflag.TgcScaleHVAB)},
		{Label: "Rotate H", Handler: set(editflag.TgcRotH)},
		{Label: "Rotate A,B,C,D", Handler: set(editflag.TgcRotAB)},
		{Label: "Move end H(rt)", Handler: set(editflag.TgcMoveHRegenAB)},
		{Label: "Move end H", Handler: set(editflag.TgcMoveHFixedAB)},
	}
}

// WriteParams renders the round-trip text form (spec §6.2): Vertex,
// Height, A, B, C, D.
func (t *Tgc) WriteParams(base2local float64) string {
	out := paramio.WriteVec3("Vertex", vecmat.Scale(t.V, base2local)) + "\n"
	out += paramio.WriteVec3("Height", vecmat.Scale(t.H, base2local)) + "\n"
	out += paramio.WriteVec3("A", vecmat.Scale(t.A, base2local)) + "\n"
	out += paramio.WriteVec3("B", vecmat.Scale(t.B, base2local)) + "\n"
	out += paramio.WriteVec3("C", vecmat.Scale(t.C, base2local)) + "\n"
	out += paramio.WriteVec3("D", vecmat.Scale(t.D, base2local)) + "\n"
	return out
}

// ReadParams parses TGC's round-trip text form.
func ReadParams(text string, local2base float64) (*Tgc, error) {
	lines := paramio.Lines(text)
	if err := paramio.Require(lines, 6); err != nil {
		return nil, err
	}
	v, err := paramio.ParseVec3(lines[0], local2base)
	if err != nil {
		return nil, err
	}
	h, err := paramio.ParseVec3(lines[1], local2base)
	if err != nil {
		return nil, err
	}
	a, err := paramio.ParseVec3(lines[2], local2base)
	if err != nil {
		return nil, err
	}
	b, err := paramio.ParseVec3(lines[3], local2base)
	if err != nil {
		return nil, err
	}
	c, err := paramio.ParseVec3(lines[4], local2base)
	if err != nil {
		return nil, err
	}
	d, err := paramio.ParseVec3(lines[5], local2base)
	if err != nil {
		return nil, err
	}
	return &Tgc{V: v, H: h, A: a, B: b, C: c, D: d}, nil
}
