package arb

import (
	"math"
	"testing"

	"github.com/csgedit/csgedit/internal/geom/vecmat"
)

func cubePts() [8]vecmat.Vec3 {
	return [8]vecmat.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
}

func assertPlanarFaces(t *testing.T, a *ARB, typ Type) {
	t.Helper()
	for i := 0; i < 6; i++ {
		pts := facePoints(typ, i)
		if len(pts) < 4 {
			continue
		}
		if !vecmat.Coplanar(a.Pts[pts[0]], a.Pts[pts[1]], a.Pts[pts[2]], a.Pts[pts[3]], a.Tol) {
			t.Fatalf("face %d not planar: %v", i, pts)
		}
	}
}

func TestNewARB8ClassifiesAndPlanes(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Classify() != ARB8 {
		t.Fatalf("expected ARB8, got %v", a.Classify())
	}
	assertPlanarFaces(t, a, ARB8)
}

func TestClassifyARB6(t *testing.T) {
	pts := cubePts()
	pts[5] = pts[4]
	pts[7] = pts[6]
	a, err := New(pts, vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Classify() != ARB6 {
		t.Fatalf("expected ARB6, got %v", a.Classify())
	}
}

func TestClassifyARB4(t *testing.T) {
	pts := cubePts()
	pts[3] = pts[0]
	pts[5] = pts[4]
	pts[6] = pts[4]
	pts[7] = pts[4]
	a, err := New(pts, vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Classify() != ARB4 {
		t.Fatalf("expected ARB4, got %v", a.Classify())
	}
}

func TestApplyMatrixTranslatesAllPoints(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.ApplyMatrix(vecmat.Translation(vecmat.Vec3{X: 5, Y: 0, Z: 0})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Pts[0].X != 5 {
		t.Fatalf("expected point 0 translated to x=5, got %v", a.Pts[0])
	}
	assertPlanarFaces(t, a, ARB8)
}

func TestMovePointRecomputesFacesAndStaysPlanar(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.MovePoint(ARB8, 0, vecmat.Vec3{X: -0.5, Y: -0.5, Z: -0.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPlanarFaces(t, a, ARB8)
	if math.Abs(a.Pts[0].X+0.5) > 1e-9 {
		t.Fatalf("point 0 should have moved, got %v", a.Pts[0])
	}
}

func TestMoveEdgeKeepsBoundingFacesFixed(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Edge 4-5 (top face, y=0 side): push it down in Z only.
	thru := vecmat.Vec3{X: 0, Y: 0, Z: 0.5}
	dir := vecmat.Sub(a.Pts[5], a.Pts[4])
	if err := a.MoveEdge(ARB8, 4, 5, thru, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPlanarFaces(t, a, ARB8)
	if math.Abs(a.Pts[4].Z-0.5) > 1e-6 {
		t.Fatalf("expected point 4 at z=0.5, got %v", a.Pts[4])
	}
}

func TestMoveFaceTranslatesAlongNormal(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Face 1 is the top (5678): move it up to z=2.
	if err := a.MoveFace(ARB8, 1, vecmat.Vec3{X: 0, Y: 0, Z: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPlanarFaces(t, a, ARB8)
	for _, i := range []int{4, 5, 6, 7} {
		if math.Abs(a.Pts[i].Z-2) > 1e-6 {
			t.Fatalf("expected point %d at z=2, got %v", i, a.Pts[i])
		}
	}
}

func TestExtrudeARB4ToARB6(t *testing.T) {
	pts := cubePts()
	pts[3] = pts[0]
	pts[5] = pts[4]
	pts[6] = pts[4]
	pts[7] = pts[4]
	a, err := New(pts, vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	newType, err := a.Extrude(ARB4, 234, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newType != ARB6 {
		t.Fatalf("expected ARB6 after extruding an ARB4 face, got %v", newType)
	}
}

func TestExtrudeARB8Face1234(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := a.Pts[4]
	if _, err := a.Extrude(ARB8, 1234, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Pts[4] == before {
		t.Fatalf("expected top face to move after extruding the base")
	}
	assertPlanarFaces(t, a, ARB8)
}

func TestMirrorFaceAxisX(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.MirrorFaceAxis(ARB8, 2367, "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Pts[0].X != -a.Pts[1].X {
		t.Fatalf("expected mirrored point across x, got %v vs %v", a.Pts[0], a.Pts[1])
	}
}

func TestPermuteARB8RotatesVertexNaming(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orig := a.Pts
	if err := a.Permute(ARB8, "21436587"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Pts[0] != orig[1] {
		t.Fatalf("expected new point 1 to be old point 2, got %v want %v", a.Pts[0], orig[1])
	}
	if a.Pts[1] != orig[0] {
		t.Fatalf("expected new point 2 to be old point 1, got %v want %v", a.Pts[1], orig[0])
	}
}

func TestPermuteRejectsUnreachablePermutation(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Permute(ARB8, "11111111"); err == nil {
		t.Fatal("expected rejection of an invalid permutation string")
	}
}

func TestCalcPointsRejectsParallelPlanes(t *testing.T) {
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Faces 0 and 3 both bound vertex 0; making them parallel makes
	// that vertex's three-plane intersection singular.
	a.Planes[3] = a.Planes[0]
	if err := a.CalcPoints(ARB8); err == nil {
		t.Fatal("expected an error when face planes no longer bound a solid")
	}
}
