package extrude

import (
	"github.com/csgedit/csgedit/internal/callback"
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

// Apply runs the EXTRUDE sub-operation named by sess.EditFlag.Op.
// sketchName is only consulted by ExtrSketch, supplied by the
// dispatch layer from whatever callback collects the new sketch's
// name (ecmd_extr_skt_name's reference swap).
func Apply(sess *session.Session, e *Extrude, sketchName string) error {
	switch sess.EditFlag.Op {
	case editflag.ExtrSketch:
		return setSketch(sess, e, sketchName)
	case editflag.ExtrMoveH:
		return moveH(sess, e)
	case editflag.ExtrScaleH:
		return scaleH(sess, e)
	case editflag.ExtrRotH:
		return rotH(sess, e)
	default:
		return primitive.Newf(primitive.BadArity, "EXTRUDE: edit flag %q is not an EXTRUDE sub-operation", sess.EditFlag.Op)
	}
}

// setSketch swaps in the named sketch reference (ecmd_extr_skt_name),
// notifying the host via ECMD_EXTR_SKT_NAME (spec §6.1) that a new
// sketch has been bound.
func setSketch(sess *session.Session, e *Extrude, name string) error {
	if name == "" {
		return primitive.Newf(primitive.BadArity, "EXTRUDE: a sketch name is required")
	}
	e.Sketch = name
	sess.Callbacks.InvokeDuring(callback.ExtrSktName, name)
	sess.NotifyReplot()
	return nil
}

// resetH sets H to +Z, the original's fallback whenever a computed H
// would be degenerate (ecmd_extr_mov_h's "Zero H vector not allowed"
// diagnostic).
func resetH(e *Extrude) { e.H = vecmat.Vec3{Z: 1} }

// moveH moves the tip of H to the resolved keyboard target V+H
// (ecmd_extr_mov_h's e_inpara path). A zero-length result resets H to
// +Z and is reported as an error, though the reset itself still
// takes effect, matching the original's "diagnostic, but not a no-op"
// behavior.
func moveH(sess *session.Session, e *Extrude) error {
	if sess.ParamValid && sess.NumParams != 0 {
		if sess.NumParams != 3 {
			return primitive.Newf(primitive.BadArity, "EXTRUDE: three arguments needed")
		}
		p := vecmat.Vec3{X: sess.Params[0] * sess.Local2Base, Y: sess.Params[1] * sess.Local2Base, Z: sess.Params[2] * sess.Local2Base}
		if sess.MVContext {
			p = vecmat.TransformPoint(sess.EInvMat, p)
			e.H = vecmat.Sub(p, e.V)
		} else {
			e.H = vecmat.Sub(p, e.V)
		}
	}

	if vecmat.Magnitude(e.H) <= 1e-10 {
		sess.Logf("Zero H vector not allowed, resetting to +Z\n")
		sess.FlushLog()
		resetH(e)
		return primitive.Newf(primitive.GeometryRejected, "zero H vector not allowed, reset to +Z")
	}
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// scaleH scales H in place by the pending scalar factor, folding in
// the leaf-path scale factor (ecmd_extr_scale_h, unified with the
// rest of this codebase's "the parameter is a multiplicative factor"
// reading, spec §8 S2, rather than porting the original's
// divide-by-current-magnitude absolute-length convention verbatim).
func scaleH(sess *session.Session, e *Extrude) error {
	if sess.NumParams != 1 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "EXTRUDE: only one argument needed")
	}
	factor := sess.Params[0]
	if factor <= 0 {
		return primitive.Newf(primitive.OutOfRange, "EXTRUDE: scale factor must be positive")
	}
	if vecmat.IsZero(e.H, 1e-20) {
		return primitive.Newf(primitive.GeometryRejected, "H is degenerate and cannot be scaled")
	}
	e.H = vecmat.Scale(e.H, factor*sess.EMat.LeafScaleFactor())
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// rotH applies an absolute Euler rotation to H, the same
// cancel-then-install accumulated-rotation bookkeeping as
// internal/engine/generic.go's srot and TGC's rotAbsolute
// (ecmd_extr_rot_h).
func rotH(sess *session.Session, e *Extrude) error {
	if !sess.ParamValid || sess.NumParams == 0 {
		return nil
	}
	if sess.NumParams != 3 {
		return primitive.Newf(primitive.BadArity, "EXTRUDE: three arguments needed")
	}
	invSolR, ok := vecmat.Inverse(sess.AccRotSol)
	if !ok {
		return primitive.Newf(primitive.InternalInvariant, "accumulated rotation is singular")
	}
	newRot := vecmat.AnglesDeg(sess.Params[0], sess.Params[1], sess.Params[2])
	incr := vecmat.Mul(newRot, invSolR)
	sess.AccRotSol = newRot

	if sess.MVContext {
		edit := vecmat.XformAboutPoint(incr, sess.Keypoint)
		mat := vecmat.MulChain(sess.EInvMat, edit, sess.EMat)
		e.H = vecmat.TransformVec(mat, e.H)
	} else {
		e.H = vecmat.TransformVec(incr, e.H)
	}
	sess.ResetIncrChange()
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}
