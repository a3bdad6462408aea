// Package metaball implements the metaball control-point editor
// (spec §4.7), grounded in BRL-CAD's edmetaball.c. The original's
// doubly linked wdb_metaball_pnt list is replaced by a plain slice;
// "select," "next," and "delete" become index operations instead of
// BU_LIST pointer surgery.
package metaball

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Point is one control point: its position, field strength, and
// "goo" (sweat) blending value (struct wdb_metaball_pnt).
type Point struct {
	Coord         vecmat.Vec3
	FldStr, Sweat float64
}

// Metaball is an ordered list of control points plus the two
// whole-solid scalars (struct rt_metaball_internal, trimmed to the
// fields this editor touches).
type Metaball struct {
	Points    []Point
	Threshold float64
	Method    float64
}

// TypeName implements primitive.Primitive.
func (m *Metaball) TypeName() string { return "METABALL" }

// Keypoint implements primitive.Primitive
// (rt_solid_edit_metaball_keypoint, without the selected-point
// override the session layer applies itself from SubState).
func (m *Metaball) Keypoint() vecmat.Vec3 { return vecmat.Vec3{} }

// ApplyMatrix implements primitive.Primitive, transforming every
// control point's coordinates. The point selection, kept in the
// session's SubState, is not changed here.
func (m *Metaball) ApplyMatrix(mat vecmat.Mat4) error {
	for i := range m.Points {
		m.Points[i].Coord = vecmat.TransformPoint(mat, m.Points[i].Coord)
	}
	return nil
}

// EditState is the metaball sub-state allocated into
// Session.SubState (struct rt_metaball_edit): the selected control
// point's index.
type EditState struct {
	Selected  int
	HasSelect bool
}

// Menu builds METABALL's edit menu (metaball_menu).
func (m *Metaball) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	set := func(op editflag.SubOp) func() error {
		return func() error { setFlag(op); return nil }
	}
	return primitive.Menu{
		{Label: "METABALL MENU", Handler: nil},
		{Label: "Set Threshold", Handler: set(editflag.MetaballSetThreshold)},
		{Label: "Set Render Method", Handler: set(editflag.MetaballSetMethod)},
		{Label: "Select Point", Handler: set(editflag.MetaballSelect)},
		{Label: "Next Point", Handler: set(editflag.MetaballNextPt)},
		{Label: "Previous Point", Handler: set(editflag.MetaballPrevPt)},
		{Label: "Move Point", Handler: set(editflag.MetaballMovePt)},
		{Label: "Scale Point fldstr", Handler: set(editflag.MetaballScaleStr)},
		{Label: "Scale Point \"goo\" value", Handler: set(editflag.MetaballScaleGoo)},
		{Label: "Delete Point", Handler: set(editflag.MetaballDelPt)},
		{Label: "Add Point", Handler: set(editflag.MetaballAddPt)},
	}
}
