// Package dispatch implements the menu & callback dispatch layer of
// spec §4.10: given a session whose Form and EditFlag are set, it
// looks up the primitive's concrete type, hands the event to that
// primitive's own edit function if it claims the current sub-op, and
// otherwise falls through to the generic scale/translate/rotate
// engine. A parallel XY entry point does the same for mouse-driven
// events. Grounded in the teacher's dispatcher/handler table pattern
// (internal/dispatcher/dispatcher.go's type-keyed handler lookup),
// adapted from keystorm's command-name keys to this system's
// (PrimitiveKind, SubOp) tagged sum.
package dispatch

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/engine"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/primitive/arb"
	"github.com/csgedit/csgedit/internal/primitive/ars"
	"github.com/csgedit/csgedit/internal/primitive/extrude"
	"github.com/csgedit/csgedit/internal/primitive/gridprim"
	"github.com/csgedit/csgedit/internal/primitive/metaball"
	"github.com/csgedit/csgedit/internal/primitive/nmg"
	"github.com/csgedit/csgedit/internal/primitive/scalar"
	"github.com/csgedit/csgedit/internal/primitive/tgc"
	"github.com/csgedit/csgedit/internal/session"
)

// Context carries the event-specific inputs the various
// primitive-specific edit functions need beyond the session itself:
// the viewport state the generic engine and mouse mapping use, a
// model-space picking ray for the pick-by-nearest-point backends
// (NMG, ARS, metaball), the view's look direction (NMG edge move/
// split), and a pending sketch name (extrude). Callers populate only
// the fields relevant to the event they are forwarding; backends that
// don't consult a field simply ignore its zero value.
type Context struct {
	View              engine.View
	RayOrigin, RayDir vecmat.Vec3
	ViewDir           vecmat.Vec3
	SketchName        string
}

type scalarPrimitive interface {
	TypeName() string
	Fields() scalar.Fields
}

// Dispatch runs the sub-operation named by sess.EditFlag against
// sess.Form, the parameter-entry path (spec §4.10 steps 1-3): the
// primitive's own backend claims its specific sub-ops; anything else,
// including every IsGeneric() flag, falls through to the generic
// engine.
func Dispatch(sess *session.Session, ctx Context) error {
	if !sess.EditFlag.IsGeneric() {
		handled, err := dispatchSpecific(sess, ctx)
		if handled {
			return err
		}
	}
	return engine.Apply(sess, ctx.View)
}

// DispatchXY is Dispatch's mouse-driven counterpart: primitive
// backends in this core do not define their own XY handlers (spec
// §4.1 "primitive backends fall through to [the generic engine] when
// their sub-operation is generic" — none of the ported backends
// define a distinct XY path beyond that), so every XY event routes
// through the generic mouse mapping.
func DispatchXY(sess *session.Session, ctx Context, mousex, mousey float64) error {
	return engine.ApplyXY(sess, ctx.View, mousex, mousey)
}

// dispatchSpecific looks up sess.Form's concrete type and, if it owns
// a primitive-specific backend, calls it. The bool return reports
// whether a backend claimed the event at all; when true, its error
// (nil or not) is Dispatch's final answer. When false, Dispatch falls
// through to the generic engine.
func dispatchSpecific(sess *session.Session, ctx Context) (bool, error) {
	switch f := sess.Form.(type) {
	case *arb.ARB:
		return true, arb.Apply(sess)
	case *nmg.Nmg:
		return true, nmg.Apply(sess, f, ctx.RayOrigin, ctx.RayDir, ctx.ViewDir)
	case *ars.Ars:
		return true, ars.Apply(sess, f, ctx.RayOrigin, ctx.RayDir)
	case *tgc.Tgc:
		return true, tgc.Apply(sess, f)
	case *extrude.Extrude:
		return true, extrude.Apply(sess, f, ctx.SketchName)
	case *metaball.Metaball:
		return true, metaball.Apply(sess, f, ctx.RayOrigin, ctx.RayDir)
	case *gridprim.Grid:
		return true, gridprim.Apply(sess, f)
	case scalarPrimitive:
		return true, scalar.Apply(sess, f.Fields(), f.TypeName())
	default:
		return false, primitive.Newf(primitive.BadArity, "dispatch: unrecognized primitive type %T", sess.Form)
	}
}

// BuildMenu installs the menu table for the session's current Form
// via session.InstallMenu (ECMD_MENU_SET, spec §6.1), the way the
// original opens every solid edit by calling its s_menu_item before
// the first view hits the screen. setFlag closes over sess so a menu
// item's Handler only needs to name the sub-op it arms; ARB's two-
// level MAIN_MENU/SPECIFIC_MENU structure additionally needs sess (to
// install its second-level menu) and its own sub-state (to record
// which edge/point/face a leaf item selects), so it is special-cased
// rather than squeezed into the single-argument signature every other
// primitive's Menu uses.
func BuildMenu(sess *session.Session) error {
	setFlag := func(op editflag.SubOp) {
		sess.EditFlag = editflag.Flag{Kind: sess.Kind, Op: op}
	}

	switch f := sess.Form.(type) {
	case *arb.ARB:
		st, ok := sess.SubState.(*arb.EditState)
		if !ok {
			return primitive.Newf(primitive.InternalInvariant, "session has no ARB sub-state")
		}
		sess.InstallMenu(f.Menu(sess, st, setFlag))
	case *nmg.Nmg:
		sess.InstallMenu(f.Menu(setFlag))
	case *ars.Ars:
		sess.InstallMenu(f.Menu(setFlag))
	case *tgc.Tgc:
		sess.InstallMenu(f.Menu(setFlag))
	case *extrude.Extrude:
		sess.InstallMenu(f.Menu(setFlag))
	case *metaball.Metaball:
		sess.InstallMenu(f.Menu(setFlag))
	case *gridprim.Grid:
		sess.InstallMenu(f.Menu(setFlag))
	case *scalar.Ell:
		sess.InstallMenu(f.Menu(setFlag))
	case *scalar.Tor:
		sess.InstallMenu(f.Menu(setFlag))
	case *scalar.Part:
		sess.InstallMenu(f.Menu(setFlag))
	case *scalar.Eto:
		sess.InstallMenu(f.Menu(setFlag))
	case *scalar.Hyp:
		sess.InstallMenu(f.Menu(setFlag))
	case *scalar.Superell:
		sess.InstallMenu(f.Menu(setFlag))
	default:
		return primitive.Newf(primitive.BadArity, "dispatch: unrecognized primitive type %T", sess.Form)
	}
	return nil
}

// KindOf reports the PrimitiveKind a session's current Form
// corresponds to, for sessions that want to re-derive it rather than
// trust a stored editflag.PrimitiveKind.
func KindOf(form any) editflag.PrimitiveKind {
	switch f := form.(type) {
	case *arb.ARB:
		return editflag.KindARB
	case *nmg.Nmg:
		return editflag.KindNMG
	case *ars.Ars:
		return editflag.KindARS
	case *tgc.Tgc:
		return editflag.KindTGC
	case *extrude.Extrude:
		return editflag.KindExtrude
	case *metaball.Metaball:
		return editflag.KindMetaball
	case *gridprim.Grid:
		return f.Kind
	case *scalar.Ell:
		return editflag.KindELL
	case *scalar.Tor:
		return editflag.KindTOR
	case *scalar.Part:
		return editflag.KindPART
	case *scalar.Eto:
		return editflag.KindETO
	case *scalar.Hyp:
		return editflag.KindHYP
	case *scalar.Superell:
		return editflag.KindSUPERELL
	}
	return editflag.KindGeneric
}
