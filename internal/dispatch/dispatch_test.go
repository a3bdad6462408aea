package dispatch

import (
	"testing"

	"github.com/csgedit/csgedit/internal/callback"
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/engine"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive/arb"
	"github.com/csgedit/csgedit/internal/primitive/gridprim"
	"github.com/csgedit/csgedit/internal/primitive/scalar"
	"github.com/csgedit/csgedit/internal/session"
)

func cubePts() [8]vecmat.Vec3 {
	return [8]vecmat.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
}

func defaultView() engine.View {
	return engine.View{
		View2Model:    vecmat.Identity(),
		Model2View:    vecmat.Identity(),
		Model2ObjView: vecmat.Identity(),
		Scale:         1,
	}
}

func TestDispatchRoutesARBSpecificOp(t *testing.T) {
	a, err := arb.New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("arb.New: %v", err)
	}
	sess := session.New(a, editflag.KindARB, nil, nil)
	st := arb.NewState(a)
	st.EdgePt1, st.EdgePt2 = 0, 1
	sess.SubState = st
	sess.EditFlag = editflag.Flag{Kind: editflag.KindARB, Op: editflag.ARBEdge}
	sess.SetParams(0, 0, 0)

	err = Dispatch(sess, Context{View: defaultView()})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
}

func TestDispatchFallsThroughToGenericEngineForGenericFlag(t *testing.T) {
	e := &scalar.Ell{A: vecmat.Vec3{X: 1}, B: vecmat.Vec3{Y: 1}, C: vecmat.Vec3{Z: 1}}
	sess := session.New(e, editflag.KindELL, nil, nil)
	sess.EMat = vecmat.Identity()
	sess.EditFlag = editflag.Flag{Kind: editflag.KindGeneric, Op: editflag.GenericScale}
	sess.SetParams(2)

	if err := Dispatch(sess, Context{View: defaultView()}); err != nil {
		t.Fatalf("Dispatch (generic fallthrough): %v", err)
	}
}

func TestDispatchRoutesScalarPrimitiveOp(t *testing.T) {
	e := &scalar.Ell{A: vecmat.Vec3{X: 1}, B: vecmat.Vec3{Y: 1}, C: vecmat.Vec3{Z: 1}}
	sess := session.New(e, editflag.KindELL, nil, nil)
	sess.EMat = vecmat.Identity()
	sess.EditFlag = editflag.Flag{Kind: editflag.KindELL, Op: editflag.EllScaleA}
	sess.SetParams(2)

	if err := Dispatch(sess, Context{View: defaultView()}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if e.A != (vecmat.Vec3{X: 2}) {
		t.Errorf("A = %+v, want {2 0 0}", e.A)
	}
}

func TestBuildMenuInstallsScalarPrimitiveMenu(t *testing.T) {
	e := &scalar.Ell{A: vecmat.Vec3{X: 1}, B: vecmat.Vec3{Y: 1}, C: vecmat.Vec3{Z: 1}}
	cb := callback.NewRegistry()
	var installed any
	cb.Set(callback.MenuSet, callback.During, func(arg any) any {
		installed = arg
		return nil
	})
	sess := session.New(e, editflag.KindELL, cb, nil)

	if err := BuildMenu(sess); err != nil {
		t.Fatalf("BuildMenu: %v", err)
	}
	if sess.Menu == nil {
		t.Fatal("sess.Menu was not installed")
	}
	if installed == nil {
		t.Fatal("ECMD_MENU_SET callback was not invoked")
	}
	if sess.Menu.Title() == "" {
		t.Error("installed menu has no title")
	}
}

func TestBuildMenuInstallsARBMenuAndLeafSetsEditState(t *testing.T) {
	a, err := arb.New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("arb.New: %v", err)
	}
	sess := session.New(a, editflag.KindARB, nil, nil)
	st := arb.NewState(a)
	sess.SubState = st

	if err := BuildMenu(sess); err != nil {
		t.Fatalf("BuildMenu: %v", err)
	}
	if len(sess.Menu) < 4 {
		t.Fatalf("ARB main menu has %d items, want at least 4 (title + 3 categories)", len(sess.Menu))
	}

	// Drill into "Move edge", which installs a second-level menu.
	if err := sess.Menu[1].Handler(); err != nil {
		t.Fatalf("Move edge handler: %v", err)
	}
	if sess.EditFlag.Op != editflag.ARBSpecificMenu {
		t.Errorf("EditFlag.Op = %v, want ARBSpecificMenu", sess.EditFlag.Op)
	}
	if len(sess.Menu) < 2 {
		t.Fatalf("ARB edge sub-menu has %d items, want at least 2", len(sess.Menu))
	}

	if err := sess.Menu[1].Handler(); err != nil {
		t.Fatalf("move edge leaf handler: %v", err)
	}
	if sess.EditFlag.Op != editflag.ARBEdge {
		t.Errorf("EditFlag.Op = %v, want ARBEdge", sess.EditFlag.Op)
	}
	if st.EdgePt1 == st.EdgePt2 {
		t.Errorf("EdgePt1/EdgePt2 were not set by the leaf handler")
	}
}

func TestKindOfReportsPrimitiveKinds(t *testing.T) {
	a, _ := arb.New(cubePts(), vecmat.DefaultTol)
	if got := KindOf(a); got != editflag.KindARB {
		t.Errorf("KindOf(ARB) = %v, want %v", got, editflag.KindARB)
	}
	g := &gridprim.Grid{Kind: editflag.KindDSP}
	if got := KindOf(g); got != editflag.KindDSP {
		t.Errorf("KindOf(Grid DSP) = %v, want %v", got, editflag.KindDSP)
	}
	e := &scalar.Ell{}
	if got := KindOf(e); got != editflag.KindELL {
		t.Errorf("KindOf(Ell) = %v, want %v", got, editflag.KindELL)
	}
}
