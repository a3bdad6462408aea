package gridprim

import (
	"github.com/csgedit/csgedit/internal/callback"
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

// Apply runs the grid sub-operation named by sess.EditFlag.Op
// (spec §4.8). Every sub-operation is idempotent on rejection: a
// failed validation leaves g entirely unchanged.
func Apply(sess *session.Session, g *Grid) error {
	switch sess.EditFlag.Op {
	case editflag.GridSetFile:
		return setFile(sess, g)
	case editflag.GridSetDims:
		return setDims(sess, g)
	case editflag.GridSetCell:
		return setCell(sess, g)
	case editflag.GridSetScl:
		return setScale(sess, g)
	default:
		return primitive.Newf(primitive.BadArity, "%s: edit flag %q is not a grid sub-operation", g.TypeName(), sess.EditFlag.Op)
	}
}

// setFile binds a new data-source filename, requesting it from the
// host via ECMD_GET_FILENAME, then validates the file both exists and
// is already large enough for the grid's current dimensions
// (ecmd_ebm_fname / ecmd_dsp_fname).
func setFile(sess *session.Session, g *Grid) error {
	name, invoked := sess.Callbacks.InvokeDuring(callback.GetFilename, g.FileName)
	fname, ok := name.(string)
	if !invoked || !ok || fname == "" {
		return nil
	}

	size, err := statFn(g)(fname)
	if err != nil {
		sess.Logf("Cannot get status of file %s", fname)
		sess.FlushLog()
		return primitive.Wrap(primitive.MissingResource, err, "stat %s", fname)
	}
	if need := requiredBytes(g); size < need {
		sess.Logf("File (%s) is too small, adjust the file size parameters first", fname)
		sess.FlushLog()
		return primitive.Newf(primitive.MissingResource, "%s: file %s is %d bytes, need %d", g.TypeName(), fname, size, need)
	}
	g.FileName = fname
	sess.NotifyReplot()
	return nil
}

// setDims validates the newly requested dimensions are large enough
// for the already-bound file before committing them
// (ecmd_ebm_fsize / the VOL equivalent).
func setDims(sess *session.Session, g *Grid) error {
	want := 2
	if g.Kind == editflag.KindVOL {
		want = 3
	}
	if sess.NumParams != want || !sess.ParamValid {
		sess.ClearParams()
		return primitive.Newf(primitive.BadArity, "%s: need %d dimension arguments", g.TypeName(), want)
	}
	for i := 0; i < want; i++ {
		if sess.Params[i] <= 0 {
			sess.ClearParams()
			return primitive.Newf(primitive.OutOfRange, "%s: dimension %d must be positive", g.TypeName(), i)
		}
	}

	candidate := *g
	candidate.XDim = int(sess.Params[0])
	candidate.YDim = int(sess.Params[1])
	if want == 3 {
		candidate.ZDim = int(sess.Params[2])
	}

	if g.FileName != "" {
		size, err := statFn(g)(g.FileName)
		if err != nil {
			sess.Logf("Cannot get status of data source %s", g.FileName)
			sess.FlushLog()
			return primitive.Wrap(primitive.MissingResource, err, "stat %s", g.FileName)
		}
		if need := requiredBytes(&candidate); size < need {
			sess.Logf("File (%s) is too small, set data source name first", g.FileName)
			sess.FlushLog()
			return primitive.Newf(primitive.MissingResource, "%s: file %s is %d bytes, need %d", g.TypeName(), g.FileName, size, need)
		}
	}

	g.XDim, g.YDim, g.ZDim = candidate.XDim, candidate.YDim, candidate.ZDim
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// setCell records up to three per-axis cell/voxel sizes.
func setCell(sess *session.Session, g *Grid) error {
	if sess.NumParams < 1 || sess.NumParams > 3 || !sess.ParamValid {
		sess.ClearParams()
		return primitive.Newf(primitive.BadArity, "%s: cell size needs 1-3 arguments", g.TypeName())
	}
	for i := 0; i < sess.NumParams; i++ {
		if sess.Params[i] <= 0 {
			sess.ClearParams()
			return primitive.Newf(primitive.OutOfRange, "%s: cell size must be positive", g.TypeName())
		}
	}
	vals := [3]float64{g.CellSize.X, g.CellSize.Y, g.CellSize.Z}
	for i := 0; i < sess.NumParams; i++ {
		vals[i] = sess.Params[i] * sess.Local2Base
	}
	g.CellSize.X, g.CellSize.Y, g.CellSize.Z = vals[0], vals[1], vals[2]
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// setScale applies EBM/HF's single extrusion-height factor or
// DSP/VOL's per-axis scale factor, each read as a multiplicative
// factor on the current value (ecmd_ebm_height / ecmd_dsp_scale_{x,y,alt}).
func setScale(sess *session.Session, g *Grid) error {
	if sess.NumParams != 1 || !sess.ParamValid {
		sess.ClearParams()
		return primitive.Newf(primitive.BadArity, "%s: scale needs exactly one argument", g.TypeName())
	}
	factor := sess.Params[0]
	if factor <= 0 {
		sess.ClearParams()
		return primitive.Newf(primitive.OutOfRange, "%s: scale factor must be positive", g.TypeName())
	}

	switch g.Kind {
	case editflag.KindEBM, editflag.KindHF:
		g.Height *= factor
	default:
		// DSP/VOL: which axis is being scaled rides on a previously
		// selected axis the menu handler stashes in SubState, since
		// spec §4.8 shares one sub-op across X/Y/Alt variants.
		axis, _ := sess.SubState.(*EditState)
		if axis == nil {
			axis = &EditState{}
		}
		switch axis.Axis {
		case AxisX:
			g.CellSize.X *= factor
		case AxisY:
			g.CellSize.Y *= factor
		default:
			g.CellSize.Z *= factor
		}
	}
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// EditState is the grid sub-state allocated into Session.SubState:
// which axis a pending GridSetScl targets on DSP/VOL (EBM/HF ignore
// it, since they have only one scale target).
type EditState struct {
	Axis Axis
}

// Axis names the axis a DSP/VOL scale sub-operation targets.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisAlt
)
