// Package ars implements the arbitrary rectangular solid editor (spec
// §4.4), grounded in BRL-CAD's edars.c. An ARS is a grid of points,
// ncurves rows of pts_per_curve columns each; the original's
// flat fastf_t** arrays become a [][]vecmat.Vec3 here.
package ars

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Ars is a grid of ncurves curves (rows) of pts_per_curve points
// (columns) each (struct rt_ars_internal, flattened curves array).
type Ars struct {
	Curves [][]vecmat.Vec3
}

// TypeName implements primitive.Primitive.
func (a *Ars) TypeName() string { return "ARS" }

// Keypoint implements primitive.Primitive
// (rt_solid_edit_ars_keypoint): the origin until a point is selected,
// at which point the session layer substitutes the selected point
// itself (mirrored here as the zero vector, since selection state
// lives in the session's EditState, not on Ars).
func (a *Ars) Keypoint() vecmat.Vec3 { return vecmat.Vec3{} }

// ApplyMatrix implements primitive.Primitive, transforming every grid
// point in place.
func (a *Ars) ApplyMatrix(m vecmat.Mat4) error {
	for i := range a.Curves {
		for j := range a.Curves[i] {
			a.Curves[i][j] = vecmat.TransformPoint(m, a.Curves[i][j])
		}
	}
	return nil
}

// NCurves returns the number of rows.
func (a *Ars) NCurves() int { return len(a.Curves) }

// PtsPerCurve returns the number of columns, 0 for an empty grid.
func (a *Ars) PtsPerCurve() int {
	if len(a.Curves) == 0 {
		return 0
	}
	return len(a.Curves[0])
}

// EditState is the ARS sub-state allocated into Session.SubState
// (struct rt_ars_edit): the selected (curve, column) pair and a copy
// of its coordinates. Crv/Col hold NilSel (-1) until a point is
// picked, matching es_ars_crv/es_ars_col's initial values.
type EditState struct {
	Crv, Col int
	Pt       vecmat.Vec3
}

// NilSel is the "nothing selected yet" sentinel for EditState's
// Crv/Col fields (the original's es_ars_crv/es_ars_col == -1).
const NilSel = -1

// Menu builds ARS's edit menu (ars_menu, with ars_pick_menu's entries
// folded flat alongside it rather than nested, since this kernel has
// no notion of a sub-menu push/pop).
func (a *Ars) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	set := func(op editflag.SubOp) func() error {
		return func() error { setFlag(op); return nil }
	}
	return primitive.Menu{
		{Label: "ARS MENU", Handler: nil},
		{Label: "Pick Vertex", Handler: set(editflag.ArsPick)},
		{Label: "Next Vertex", Handler: set(editflag.ArsNextPt)},
		{Label: "Prev Vertex", Handler: set(editflag.ArsPrevPt)},
		{Label: "Next Curve", Handler: set(editflag.ArsNextCrv)},
		{Label: "Prev Curve", Handler: set(editflag.ArsPrevCrv)},
		{Label: "Move Point", Handler: set(editflag.ArsMovePt)},
		{Label: "Move Curve", Handler: set(editflag.ArsMoveCrv)},
		{Label: "Move Column", Handler: set(editflag.ArsMoveCol)},
		{Label: "Dup Curve", Handler: set(editflag.ArsDupCrv)},
		{Label: "Delete Curve", Handler: set(editflag.ArsDelCrv)},
		{Label: "Dup Column", Handler: set(editflag.ArsDupCol)},
		{Label: "Delete Column", Handler: set(editflag.ArsDelCol)},
	}
}
