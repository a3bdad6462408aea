package metaball

import (
	"testing"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/session"
)

func newSess(m *Metaball) *session.Session {
	return session.New(m, editflag.KindMetaball, nil, nil)
}

func threePts() *Metaball {
	return &Metaball{Points: []Point{
		{Coord: vecmat.Vec3{X: 0}, FldStr: 1},
		{Coord: vecmat.Vec3{X: 1}, FldStr: 1},
		{Coord: vecmat.Vec3{X: 2}, FldStr: 1},
	}}
}

func TestSetThreshold(t *testing.T) {
	m := &Metaball{}
	sess := newSess(m)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballSetThreshold}
	sess.SetParams(0.5)
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{}); err != nil {
		t.Fatalf("setThreshold: %v", err)
	}
	if m.Threshold != 0.5 {
		t.Errorf("Threshold = %v, want 0.5", m.Threshold)
	}
}

func TestPickSelectsNearestPoint(t *testing.T) {
	m := threePts()
	sess := newSess(m)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballSelect}
	sess.SetParams(1, 0, 0)
	origin := vecmat.Vec3{X: 1, Y: -5}
	dir := vecmat.Vec3{Y: 1}
	if err := Apply(sess, m, origin, dir); err != nil {
		t.Fatalf("pick: %v", err)
	}
	st := sess.SubState.(*EditState)
	if !st.HasSelect || st.Selected != 1 {
		t.Errorf("selected = %v (hasSelect=%v), want 1", st.Selected, st.HasSelect)
	}
}

func TestPickRejectsEmptyMetaball(t *testing.T) {
	m := &Metaball{}
	sess := newSess(m)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballSelect}
	sess.SetParams(0, 0, 0)
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{Y: 1}); err == nil {
		t.Fatal("expected rejection with no control points")
	}
}

func TestNextRefusesPastLastPoint(t *testing.T) {
	m := threePts()
	sess := newSess(m)
	sess.SubState = &EditState{Selected: 2, HasSelect: true}
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballNextPt}
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{}); err == nil {
		t.Fatal("expected rejection stepping past the last point")
	}
}

func TestPrevRefusesPastFirstPoint(t *testing.T) {
	m := threePts()
	sess := newSess(m)
	sess.SubState = &EditState{Selected: 0, HasSelect: true}
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballPrevPt}
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{}); err == nil {
		t.Fatal("expected rejection stepping before the first point")
	}
}

func TestMoveTranslatesSelectedPoint(t *testing.T) {
	m := threePts()
	sess := newSess(m)
	sess.SubState = &EditState{Selected: 1, HasSelect: true}
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballMovePt}
	sess.SetParams(1, 2, 3)
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := m.Points[1].Coord; got != (vecmat.Vec3{X: 2, Y: 2, Z: 3}) {
		t.Errorf("coord = %+v, want {2 2 3}", got)
	}
}

func TestScaleStrRejectsNonPositiveFactor(t *testing.T) {
	m := threePts()
	sess := newSess(m)
	sess.SubState = &EditState{Selected: 0, HasSelect: true}
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballScaleStr}
	sess.SetParams(0)
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{}); err == nil {
		t.Fatal("expected rejection of a non-positive scale factor")
	}
}

func TestDelReselectsPredecessor(t *testing.T) {
	m := threePts()
	sess := newSess(m)
	sess.SubState = &EditState{Selected: 2, HasSelect: true}
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballDelPt}
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{}); err != nil {
		t.Fatalf("del: %v", err)
	}
	if len(m.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(m.Points))
	}
	st := sess.SubState.(*EditState)
	if st.Selected != 1 || !st.HasSelect {
		t.Errorf("selected = %v (hasSelect=%v), want 1", st.Selected, st.HasSelect)
	}
}

func TestDelLastPointClearsSelectionAndWarns(t *testing.T) {
	m := &Metaball{Points: []Point{{Coord: vecmat.Vec3{}, FldStr: 1}}}
	sess := newSess(m)
	sess.SubState = &EditState{Selected: 0, HasSelect: true}
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballDelPt}
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{}); err != nil {
		t.Fatalf("del: %v", err)
	}
	if len(m.Points) != 0 {
		t.Fatalf("len(Points) = %d, want 0", len(m.Points))
	}
	st := sess.SubState.(*EditState)
	if st.HasSelect {
		t.Error("HasSelect should be false after deleting the last point")
	}
}

func TestAddAppendsAndSelectsNewPoint(t *testing.T) {
	m := threePts()
	sess := newSess(m)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindMetaball, Op: editflag.MetaballAddPt}
	sess.SetParams(9, 9, 9)
	if err := Apply(sess, m, vecmat.Vec3{}, vecmat.Vec3{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(m.Points) != 4 {
		t.Fatalf("len(Points) = %d, want 4", len(m.Points))
	}
	if got := m.Points[3]; got.Coord != (vecmat.Vec3{X: 9, Y: 9, Z: 9}) || got.FldStr != 1.0 {
		t.Errorf("new point = %+v, want coord {9 9 9} fldstr 1.0", got)
	}
	st := sess.SubState.(*EditState)
	if st.Selected != 3 || !st.HasSelect {
		t.Errorf("selected = %v (hasSelect=%v), want 3", st.Selected, st.HasSelect)
	}
}
