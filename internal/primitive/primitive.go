// Package primitive defines the contract every typed geometric
// primitive (ARB, NMG, ARS, TGC, ...) implements so the generic edit
// engine and dispatch layer can operate on it without knowing its
// concrete type: the ft_mat matrix-application hook and keypoint
// lookup from spec §3.1 and §4.1.
package primitive

import "github.com/csgedit/csgedit/internal/geom/vecmat"

// Primitive is the contract a typed geometric variant exposes to the
// generic edit engine.
type Primitive interface {
	// ApplyMatrix transforms the primitive's internal form by m (the
	// ft_mat hook every rt_functab entry provides). Implementations
	// either mutate vertices/vectors directly or, in matrix-edit
	// mode, fold m into a pending model_changes matrix upstream.
	ApplyMatrix(m vecmat.Mat4) error

	// Keypoint returns the default model-space pivot point for scale
	// and rotation (spec GLOSSARY "Keypoint"). Sessions may override
	// this with a more specific sub-feature point.
	Keypoint() vecmat.Vec3

	// TypeName returns a short label used in menu titles and
	// diagnostics (e.g. "ARB8", "TGC").
	TypeName() string
}
