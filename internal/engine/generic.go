package engine

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

// Apply runs the generic parameter-mode edit named by sess.EditFlag.Op
// against sess, applying the resulting matrix through sess.Form's
// ApplyMatrix hook (edit_generic).
func Apply(sess *session.Session, view View) error {
	switch sess.EditFlag.Op {
	case editflag.GenericScale:
		return sscale(sess)
	case editflag.GenericTranslate:
		return stra(sess)
	case editflag.GenericRotate:
		return srot(sess, view)
	case editflag.MatrixScale, editflag.MatrixScaleX, editflag.MatrixScaleY, editflag.MatrixScaleZ:
		sess.Logf("matrix-mode scaling is not available from parameter entry")
		return primitive.Newf(primitive.BadArity, "matrix-mode scale has no parameter-entry form")
	case editflag.MatrixTransView, editflag.MatrixTransViewX, editflag.MatrixTransViewY:
		sess.Logf("matrix-mode translation is not available from parameter entry")
		return primitive.Newf(primitive.BadArity, "matrix-mode translate has no parameter-entry form")
	default:
		return primitive.Newf(primitive.BadArity, "%s: edit flag %q is not a generic edit", sess.Form.TypeName(), sess.EditFlag.Op)
	}
}

// sscale uniformly scales the solid about its keypoint (edit_sscale).
func sscale(sess *session.Session) error {
	if sess.NumParams > 1 {
		sess.ClearParams()
		return primitive.Newf(primitive.BadArity, "only one argument needed")
	}

	if sess.ParamValid && sess.NumParams == 1 {
		if sess.Params[0] <= 0 {
			return primitive.Newf(primitive.OutOfRange, "scale factor must be positive")
		}
		if sess.AccScSol == 0 {
			sess.AccScSol = 1
		}
		sess.EsScale = sess.Params[0] / sess.AccScSol
		sess.AccScSol = sess.Params[0]
	}

	scaleMat := vecmat.ScaleAboutPoint(sess.Keypoint, sess.EsScale)
	mat := vecmat.MulChain(sess.EInvMat, scaleMat, sess.EMat)
	if err := sess.Form.ApplyMatrix(mat); err != nil {
		return err
	}

	sess.EsScale = 1
	return nil
}

// stra translates the solid so its keypoint lands at the supplied
// parameters, in model units or world units under mv_context
// (edit_stra).
func stra(sess *session.Session) error {
	if !sess.ParamValid || sess.NumParams == 0 {
		return nil
	}

	p := vecmat.Vec3{
		X: sess.Params[0] * sess.Local2Base,
		Y: sess.Params[1] * sess.Local2Base,
		Z: sess.Params[2] * sess.Local2Base,
	}

	var delta vecmat.Vec3
	if sess.MVContext {
		rawPara := vecmat.TransformPoint(sess.EInvMat, p)
		rawKp := vecmat.TransformPoint(sess.EInvMat, sess.Keypoint)
		delta = vecmat.Sub(rawKp, rawPara)
	} else {
		rawKp := vecmat.TransformPoint(sess.EInvMat, sess.Keypoint)
		delta = vecmat.Sub(rawKp, p)
	}

	mat := vecmat.TranslationNeg(delta)
	return sess.Form.ApplyMatrix(mat)
}

// srot applies an absolute Euler rotation about the configured pivot,
// cancelling any prior accumulated rotation first (edit_srot).
func srot(sess *session.Session, view View) error {
	if sess.ParamValid && sess.NumParams > 0 {
		invSolR, ok := vecmat.Inverse(sess.AccRotSol)
		if !ok {
			return primitive.Newf(primitive.InternalInvariant, "accumulated rotation is singular")
		}
		newRot := vecmat.AnglesDeg(sess.Params[0], sess.Params[1], sess.Params[2])
		sess.IncrChange = vecmat.Mul(newRot, invSolR)
		sess.AccRotSol = newRot
	}

	rotPoint := view.rotPoint(sess.Keypoint)

	var mat vecmat.Mat4
	if sess.MVContext {
		edit := vecmat.XformAboutPoint(sess.IncrChange, rotPoint)
		mat = vecmat.MulChain(sess.EInvMat, edit, sess.EMat)
	} else {
		work := vecmat.TransformPoint(sess.EInvMat, rotPoint)
		mat = vecmat.XformAboutPoint(sess.IncrChange, work)
	}

	if err := sess.Form.ApplyMatrix(mat); err != nil {
		return err
	}
	sess.ResetIncrChange()
	return nil
}
