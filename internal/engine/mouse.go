package engine

import (
	"math"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

// mouseFactor implements the "1 + |Δy|, or its reciprocal" mapping
// shared by every mouse-driven scale gesture: a 1:4 ratio for
// parameter-mode drags, 1:1 for matrix-mode drags (edit_sscale_xy /
// edit_mscale_xy use different coefficients on the same shape).
func mouseFactor(dy, coeff float64) float64 {
	f := 1.0 + coeff*math.Abs(dy)
	if dy <= 0 {
		f = 1.0 / f
	}
	return f
}

// ApplyXY runs the generic mouse-driven edit named by sess.EditFlag.Op
// against the (mousex, mousey) pair in normalised view coordinates
// (edit_generic_xy).
func ApplyXY(sess *session.Session, view View, mousex, mousey float64) error {
	switch sess.EditFlag.Op {
	case editflag.GenericScale:
		sscaleXY(sess, mousey)
		return nil
	case editflag.GenericTranslate:
		posView := straXY(sess, view, mousex, mousey)
		absTra(sess, view, posView)
		return nil
	case editflag.MatrixScale, editflag.MatrixScaleX, editflag.MatrixScaleY, editflag.MatrixScaleZ:
		return mscaleXY(sess, mousey)
	case editflag.MatrixTransView, editflag.MatrixTransViewX, editflag.MatrixTransViewY:
		posView := traXY(sess, view, mousex, mousey)
		absTra(sess, view, posView)
		return nil
	default:
		return primitive.Newf(primitive.BadArity, "%s: (XY) edit flag %q is not a generic edit", sess.Form.TypeName(), sess.EditFlag.Op)
	}
}

// sscaleXY derives a scale ratio from the mouse's Y motion and
// accumulates it into AccScSol (edit_sscale_xy).
func sscaleXY(sess *session.Session, mousey float64) {
	sess.EsScale = mouseFactor(mousey, 0.25)
	if sess.AccScSol == 0 {
		sess.AccScSol = 1
	}
	sess.AccScSol *= sess.EsScale
}

// straXY projects the current axes position into view space,
// substitutes the mouse X,Y, and unprojects back to model space,
// returning the view-space position for the absolute-slider update
// (edit_stra_xy).
func straXY(sess *session.Session, view View, mousex, mousey float64) vecmat.Vec3 {
	posView := vecmat.TransformPoint(view.Model2View, sess.AxesPos)
	posView.X, posView.Y = mousex, mousey
	pt := vecmat.TransformPoint(view.View2Model, posView)

	rawMp := vecmat.TransformPoint(sess.EInvMat, pt)
	rawKp := vecmat.TransformPoint(sess.EInvMat, sess.AxesPos)
	delta := vecmat.Sub(rawKp, rawMp)

	mat := vecmat.TranslationNeg(delta)
	_ = sess.Form.ApplyMatrix(mat)
	return posView
}

// mscaleXY applies the incoming mouse-derived scale to model_changes
// rather than to the primitive's own vertices, pivoting about the
// keypoint (edit_mscale_xy).
func mscaleXY(sess *session.Session, mousey float64) error {
	scale := mouseFactor(mousey, 1.0)

	var incr vecmat.Mat4
	switch sess.EditFlag.Op {
	case editflag.MatrixScale:
		incr = vecmat.Identity()
		incr[15] = 1.0 / scale
		if sess.AccScObj == 0 {
			sess.AccScObj = 1
		}
		sess.AccScObj /= incr[15]
	case editflag.MatrixScaleX:
		incr = vecmat.AxisScale(scale, 1, 1)
		sess.AccSc[0] *= scale
	case editflag.MatrixScaleY:
		incr = vecmat.AxisScale(1, scale, 1)
		sess.AccSc[1] *= scale
	case editflag.MatrixScaleZ:
		incr = vecmat.AxisScale(1, 1, scale)
		sess.AccSc[2] *= scale
	default:
		return primitive.Newf(primitive.BadArity, "mscale_xy: incorrect matrix edit flag %q", sess.EditFlag.Op)
	}

	posModel := vecmat.TransformPoint(sess.ModelChanges, sess.Keypoint)
	xform := vecmat.XformAboutPoint(incr, posModel)
	sess.ModelChanges = vecmat.Mul(xform, sess.ModelChanges)
	return nil
}

// traXY substitutes the mouse X and/or Y (per axis-constrained
// variant) for the keypoint's object-view projection and defers to
// mtra to fold the resulting model-space delta into model_changes
// (edit_tra_xy).
func traXY(sess *session.Session, view View, mousex, mousey float64) vecmat.Vec3 {
	posView := vecmat.TransformPoint(view.Model2ObjView, sess.Keypoint)

	switch sess.EditFlag.Op {
	case editflag.MatrixTransViewX:
		posView.X = mousex
	case editflag.MatrixTransViewY:
		posView.Y = mousey
	default:
		posView.X, posView.Y = mousex, mousey
	}

	posModel := vecmat.TransformPoint(view.View2Model, posView)
	mtra(sess, posModel)
	return posView
}

// mtra folds the model-space delta between the keypoint (as carried
// by model_changes) and posModel into model_changes (edit_mtra).
func mtra(sess *session.Session, posModel vecmat.Vec3) {
	trTemp := vecmat.TransformPoint(sess.ModelChanges, sess.Keypoint)
	delta := vecmat.Sub(posModel, trTemp)
	incr := vecmat.Translation(delta)
	sess.ModelChanges = vecmat.Mul(incr, sess.ModelChanges)
}

// absTra recomputes the absolute-translate sliders from a completed
// drag so keyboard/slider controls stay in sync (edit_abs_tra).
func absTra(sess *session.Session, view View, posView vecmat.Vec3) {
	if view.Scale == 0 {
		return
	}
	invViewscale := 1 / view.Scale
	modelPos := vecmat.TransformPoint(view.View2Model, posView)
	diff := vecmat.Sub(modelPos, sess.AxesPos)
	sess.MParam = vecmat.Scale(diff, invViewscale)
}
