// Package extrude implements the linear-extrusion editor (spec
// §4.6), grounded in BRL-CAD's edextrude.c. An extrusion's actual
// cross-section lives in a referenced sketch; this editor only
// touches the extrusion's own V/H geometry and the sketch reference
// name, matching the scope edextrude.c itself edits (the sketch's
// own points are edited by a separate sketch editor, out of scope
// here).
package extrude

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Extrude is a sketch swept along H from base point V
// (struct rt_extrude_internal, trimmed to the fields this editor
// touches).
type Extrude struct {
	V, H   vecmat.Vec3
	Sketch string
}

// TypeName implements primitive.Primitive.
func (e *Extrude) TypeName() string { return "EXTRUDE" }

// Keypoint implements primitive.Primitive
// (rt_solid_edit_extrude_keypoint, simplified: the original falls
// back to the sketch's first vertex when one is referenced; this
// editor doesn't own sketch geometry, so it always returns V).
func (e *Extrude) Keypoint() vecmat.Vec3 { return e.V }

// ApplyMatrix implements primitive.Primitive.
func (e *Extrude) ApplyMatrix(m vecmat.Mat4) error {
	e.V = vecmat.TransformPoint(m, e.V)
	e.H = vecmat.TransformVec(m, e.H)
	return nil
}

// Menu builds EXTRUDE's edit menu (extr_menu).
func (e *Extrude) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	set := func(op editflag.SubOp) func() error {
		return func() error { setFlag(op); return nil }
	}
	return primitive.Menu{
		{Label: "EXTRUSION MENU", Handler: nil},
		{Label: "Set H", Handler: set(editflag.ExtrScaleH)},
		{Label: "Move End H", Handler: set(editflag.ExtrMoveH)},
		{Label: "Rotate H", Handler: set(editflag.ExtrRotH)},
		{Label: "Referenced Sketch", Handler: set(editflag.ExtrSketch)},
	}
}
