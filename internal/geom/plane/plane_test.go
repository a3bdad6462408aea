package plane

import (
	"testing"

	"github.com/csgedit/csgedit/internal/geom/vecmat"
)

var tol = vecmat.NewTol(0.0005, 1e-6)

func TestFromPointsUnitNormal(t *testing.T) {
	p, err := FromPoints(
		vecmat.Vec3{0, 0, 0},
		vecmat.Vec3{1, 0, 0},
		vecmat.Vec3{0, 1, 0},
		tol,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vecmat.Equal(p.N, vecmat.Vec3{0, 0, 1}, 1e-9) {
		t.Fatalf("unexpected normal: %+v", p.N)
	}
}

func TestFromPointsDegenerate(t *testing.T) {
	_, err := FromPoints(
		vecmat.Vec3{0, 0, 0},
		vecmat.Vec3{1, 0, 0},
		vecmat.Vec3{2, 0, 0},
		tol,
	)
	if err != ErrDegenerate {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
}

func TestIsect3CubeCorner(t *testing.T) {
	px, _ := FromPoints(vecmat.Vec3{1, 0, 0}, vecmat.Vec3{1, 1, 0}, vecmat.Vec3{1, 0, 1}, tol)
	py, _ := FromPoints(vecmat.Vec3{0, 1, 0}, vecmat.Vec3{1, 1, 0}, vecmat.Vec3{0, 1, 1}, tol)
	pz, _ := FromPoints(vecmat.Vec3{0, 0, 1}, vecmat.Vec3{1, 0, 1}, vecmat.Vec3{0, 1, 1}, tol)

	got, err := Isect3(px, py, pz, tol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vecmat.Equal(got, vecmat.Vec3{1, 1, 1}, 1e-9) {
		t.Fatalf("unexpected intersection point: %+v", got)
	}
}

func TestIsectLinePlaneParallel(t *testing.T) {
	p := Plane{N: vecmat.Vec3{0, 0, 1}, D: 5}
	_, err := IsectLinePlane(vecmat.Vec3{0, 0, 0}, vecmat.Vec3{1, 0, 0}, p, tol)
	if err != ErrParallel {
		t.Fatalf("expected ErrParallel, got %v", err)
	}
}

func TestAnchorThroughKeepsNormal(t *testing.T) {
	p := Plane{N: vecmat.Vec3{0, 0, 1}, D: 0}
	anchored := p.AnchorThrough(vecmat.Vec3{3, 4, 7})
	if !vecmat.Equal(anchored.N, p.N, 1e-12) {
		t.Fatalf("normal changed: %+v", anchored.N)
	}
	if anchored.SignedDistance(vecmat.Vec3{3, 4, 7}) > 1e-9 {
		t.Fatalf("anchor point not on plane: dist=%v", anchored.SignedDistance(vecmat.Vec3{3, 4, 7}))
	}
}
