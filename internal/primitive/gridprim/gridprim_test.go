package gridprim

import (
	"fmt"
	"testing"

	"github.com/csgedit/csgedit/internal/callback"
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/session"
)

func newSess(g *Grid) *session.Session {
	return session.New(g, g.Kind, nil, nil)
}

func fakeStat(sizes map[string]int64) Stat {
	return func(name string) (int64, error) {
		sz, ok := sizes[name]
		if !ok {
			return 0, fmt.Errorf("no such file: %s", name)
		}
		return sz, nil
	}
}

func TestTypeNameByKind(t *testing.T) {
	cases := map[editflag.PrimitiveKind]string{
		editflag.KindEBM: "EBM",
		editflag.KindVOL: "VOL",
		editflag.KindDSP: "DSP",
		editflag.KindHF:  "HF",
	}
	for kind, want := range cases {
		g := &Grid{Kind: kind}
		if got := g.TypeName(); got != want {
			t.Errorf("Kind %v: TypeName() = %q, want %q", kind, got, want)
		}
	}
}

func TestApplyMatrixScalesCellAndHeight(t *testing.T) {
	g := &Grid{Kind: editflag.KindEBM, CellSize: vecmat.Vec3{X: 1, Y: 1}, Height: 2}
	m := vecmat.Identity()
	m[15] = 2
	if err := g.ApplyMatrix(m); err != nil {
		t.Fatalf("ApplyMatrix: %v", err)
	}
	if g.CellSize.X != 2 || g.Height != 4 {
		t.Errorf("CellSize=%+v Height=%v, want X=2 Height=4", g.CellSize, g.Height)
	}
}

func TestSetFileRejectsUndersizedFile(t *testing.T) {
	g := &Grid{Kind: editflag.KindEBM, XDim: 10, YDim: 10, Stat: fakeStat(map[string]int64{"small.bin": 5})}
	sess := newSess(g)
	sess.Callbacks.Set(callback.GetFilename, callback.During, func(any) any { return "small.bin" })
	if err := setFile(sess, g); err == nil {
		t.Fatal("expected rejection of an undersized file")
	}
}

func TestSetFileAcceptsSufficientlyLargeFile(t *testing.T) {
	g := &Grid{Kind: editflag.KindEBM, XDim: 2, YDim: 2, Stat: fakeStat(map[string]int64{"ok.bin": 100})}
	sess := newSess(g)
	sess.Callbacks.Set(callback.GetFilename, callback.During, func(any) any { return "ok.bin" })
	if err := setFile(sess, g); err != nil {
		t.Fatalf("setFile: %v", err)
	}
	if g.FileName != "ok.bin" {
		t.Errorf("FileName = %q, want ok.bin", g.FileName)
	}
}

func TestSetDimsRejectsNonPositive(t *testing.T) {
	g := &Grid{Kind: editflag.KindEBM}
	sess := newSess(g)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindEBM, Op: editflag.GridSetDims}
	sess.SetParams(0, 10)
	if err := Apply(sess, g); err == nil {
		t.Fatal("expected rejection of a non-positive dimension")
	}
}

func TestSetDimsCommitsValidDims(t *testing.T) {
	g := &Grid{Kind: editflag.KindEBM}
	sess := newSess(g)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindEBM, Op: editflag.GridSetDims}
	sess.SetParams(16, 32)
	if err := Apply(sess, g); err != nil {
		t.Fatalf("setDims: %v", err)
	}
	if g.XDim != 16 || g.YDim != 32 {
		t.Errorf("XDim=%d YDim=%d, want 16 32", g.XDim, g.YDim)
	}
}

func TestSetDimsRejectsWhenBoundFileTooSmall(t *testing.T) {
	g := &Grid{Kind: editflag.KindEBM, FileName: "data.bin", Stat: fakeStat(map[string]int64{"data.bin": 4})}
	sess := newSess(g)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindEBM, Op: editflag.GridSetDims}
	sess.SetParams(10, 10)
	if err := Apply(sess, g); err == nil {
		t.Fatal("expected rejection: bound file too small for requested dims")
	}
	if g.XDim != 0 {
		t.Errorf("XDim should remain unchanged on rejection, got %d", g.XDim)
	}
}

func TestSetCellRecordsUpToThreeValues(t *testing.T) {
	g := &Grid{Kind: editflag.KindVOL}
	sess := newSess(g)
	sess.Local2Base = 1
	sess.EditFlag = editflag.Flag{Kind: editflag.KindVOL, Op: editflag.GridSetCell}
	sess.SetParams(1, 2, 3)
	if err := Apply(sess, g); err != nil {
		t.Fatalf("setCell: %v", err)
	}
	if g.CellSize != (vecmat.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("CellSize = %+v, want {1 2 3}", g.CellSize)
	}
}

func TestSetScaleMultipliesEBMHeight(t *testing.T) {
	g := &Grid{Kind: editflag.KindEBM, Height: 2}
	sess := newSess(g)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindEBM, Op: editflag.GridSetScl}
	sess.SetParams(3)
	if err := Apply(sess, g); err != nil {
		t.Fatalf("setScale: %v", err)
	}
	if g.Height != 6 {
		t.Errorf("Height = %v, want 6", g.Height)
	}
}

func TestSetScaleRejectsNonPositiveFactor(t *testing.T) {
	g := &Grid{Kind: editflag.KindEBM, Height: 2}
	sess := newSess(g)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindEBM, Op: editflag.GridSetScl}
	sess.SetParams(-1)
	if err := Apply(sess, g); err == nil {
		t.Fatal("expected rejection of a non-positive scale factor")
	}
}

func TestSetScaleDSPTargetsSelectedAxis(t *testing.T) {
	g := &Grid{Kind: editflag.KindDSP, CellSize: vecmat.Vec3{X: 1, Y: 1, Z: 1}}
	sess := newSess(g)
	sess.SubState = &EditState{Axis: AxisY}
	sess.EditFlag = editflag.Flag{Kind: editflag.KindDSP, Op: editflag.GridSetScl}
	sess.SetParams(5)
	if err := Apply(sess, g); err != nil {
		t.Fatalf("setScale: %v", err)
	}
	if g.CellSize.Y != 5 || g.CellSize.X != 1 {
		t.Errorf("CellSize = %+v, want Y=5 X=1 unchanged", g.CellSize)
	}
}
