// Package editflag defines the tagged-sum replacement for the
// original flat edit_flag integer (spec §9 design note): a
// PrimitiveKind identifying which backend owns the session, and a
// SubOp naming the operation within that backend's own namespace.
// Generic operations shared by every primitive (scale/translate/
// rotate) carry the zero PrimitiveKind and one of the Generic* SubOps.
package editflag

// PrimitiveKind identifies which typed variant an edit session holds.
type PrimitiveKind string

const (
	KindGeneric   PrimitiveKind = ""
	KindARB       PrimitiveKind = "arb"
	KindNMG       PrimitiveKind = "nmg"
	KindARS       PrimitiveKind = "ars"
	KindTGC       PrimitiveKind = "tgc"
	KindExtrude   PrimitiveKind = "extrude"
	KindMetaball  PrimitiveKind = "metaball"
	KindEBM       PrimitiveKind = "ebm"
	KindVOL       PrimitiveKind = "vol"
	KindDSP       PrimitiveKind = "dsp"
	KindHF        PrimitiveKind = "hf"
	KindELL       PrimitiveKind = "ell"
	KindTOR       PrimitiveKind = "tor"
	KindPART      PrimitiveKind = "part"
	KindETO       PrimitiveKind = "eto"
	KindHYP       PrimitiveKind = "hyp"
	KindSUPERELL  PrimitiveKind = "superell"
)

// SubOp names an operation within a PrimitiveKind's own namespace
// (the small per-primitive ranges like ECMD_TGC_* and ECMD_ARB_* in
// the original source, now just strings scoped by PrimitiveKind).
type SubOp string

// Generic sub-ops, valid for every PrimitiveKind (spec §4.1).
const (
	GenericScale     SubOp = "SSCALE"
	GenericTranslate SubOp = "STRA"
	GenericRotate    SubOp = "SROT"
	// Matrix-mode variants operate on model_changes rather than the
	// primitive's own vertices (spec §4.1 "Matrix-mode scaling").
	MatrixScale      SubOp = "MATRIX_EDIT_SCALE"
	MatrixScaleX     SubOp = "MATRIX_EDIT_SCALE_X"
	MatrixScaleY     SubOp = "MATRIX_EDIT_SCALE_Y"
	MatrixScaleZ     SubOp = "MATRIX_EDIT_SCALE_Z"
	MatrixTransView  SubOp = "MATRIX_EDIT_TRANS_VIEW_XY"
	MatrixTransViewX SubOp = "MATRIX_EDIT_TRANS_VIEW_X"
	MatrixTransViewY SubOp = "MATRIX_EDIT_TRANS_VIEW_Y"
)

// Flag is the full tagged sum: which primitive owns the session, and
// which operation (generic or primitive-specific) is active.
type Flag struct {
	Kind PrimitiveKind
	Op   SubOp
}

// IsGeneric reports whether this flag names one of the shared
// scale/translate/rotate/matrix-mode operations that every primitive
// falls through to when it doesn't claim the flag itself.
func (f Flag) IsGeneric() bool {
	switch f.Op {
	case GenericScale, GenericTranslate, GenericRotate,
		MatrixScale, MatrixScaleX, MatrixScaleY, MatrixScaleZ,
		MatrixTransView, MatrixTransViewX, MatrixTransViewY:
		return true
	default:
		return false
	}
}

// RotatePivot selects which point an SROT rotation pivots about
// (the vp->gv_rotate_about switch in edit_srot).
type RotatePivot int

const (
	PivotKeypoint RotatePivot = iota
	PivotViewCenter
	PivotEye
	PivotModelOrigin
)
