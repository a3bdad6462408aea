// Package engine implements the generic scale/translate/rotate edit
// operations every primitive falls through to, and the mouse-to-
// parameter mapping that drives them interactively, grounded on the
// teacher's original edit_generic/edit_generic_xy pair (spec §4.1).
package engine

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
)

// View carries the viewport state the engine needs to map between
// model, view and object-view space. It has no relation to any
// rendering surface; it is purely the small set of matrices and
// scalars the original view_state struct contributed to editing.
type View struct {
	// View2Model and Model2View convert between view and model space.
	View2Model vecmat.Mat4
	Model2View vecmat.Mat4

	// Model2ObjView additionally factors in the current instance's
	// placement, used by translate-drag mapping in matrix-edit mode.
	Model2ObjView vecmat.Mat4

	// Scale is the current view scale (gv_scale), used to normalise
	// absolute-translate deltas.
	Scale float64

	// RotateAbout selects SROT's rotation pivot.
	RotateAbout editflag.RotatePivot
}

// rotPoint resolves the model-space pivot point for an SROT rotation
// given the view's selected pivot mode and a session keypoint.
func (v View) rotPoint(keypoint vecmat.Vec3) vecmat.Vec3 {
	switch v.RotateAbout {
	case editflag.PivotViewCenter:
		return vecmat.TransformPoint(v.View2Model, vecmat.Vec3{})
	case editflag.PivotEye:
		return vecmat.TransformPoint(v.View2Model, vecmat.Vec3{Z: 1})
	case editflag.PivotModelOrigin:
		return vecmat.Vec3{}
	default: // PivotKeypoint
		return keypoint
	}
}
