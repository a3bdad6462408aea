package nmg

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Nmg wraps a Model as the editable primitive form (spec §4.3).
type Nmg struct {
	*Model
}

// TypeName implements primitive.Primitive.
func (n *Nmg) TypeName() string { return "NMG" }

// Keypoint implements primitive.Primitive (rt_solid_edit_nmg_keypoint):
// the position of the model's first vertex, or the origin when the
// model has no vertices. No selected-edge, face, loop or wire-edge
// search is made.
func (n *Nmg) Keypoint() vecmat.Vec3 {
	if len(n.Vertices) == 0 {
		return vecmat.Vec3{}
	}
	return n.Vertices[0].Pos
}

// ApplyMatrix implements primitive.Primitive, transforming every
// vertex position in place.
func (n *Nmg) ApplyMatrix(m vecmat.Mat4) error {
	for i := range n.Vertices {
		n.Vertices[i].Pos = vecmat.TransformPoint(m, n.Vertices[i].Pos)
	}
	return nil
}

// EditState is the NMG sub-state allocated into Session.SubState
// (struct rt_nmg_edit): the selected edgeuse, and the throwaway
// extrusion-basis model kept alive between LEXTRU invocations.
type EditState struct {
	Selected  EdgeUseID
	HasSelect bool

	// LuCopy/LuKeypoint/ExtrudeShell mirror lu_copy/lu_keypoint/es_s:
	// the copied basis loop for an in-progress extrusion, its first
	// vertex, and the shell the extruded solid will land in.
	LuCopy       *Model
	LuCopyLoop   LoopUseID
	LuKeypoint   vecmat.Vec3
	ExtrudeShell ShellID
}

// Menu builds NMG's edit menu (nmg_menu).
func (n *Nmg) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	set := func(op editflag.SubOp) func() error {
		return func() error { setFlag(op); return nil }
	}
	return primitive.Menu{
		{Label: "NMG MENU", Handler: nil},
		{Label: "Pick Edge", Handler: set(editflag.NmgEpick)},
		{Label: "Move Edge", Handler: set(editflag.NmgEmove)},
		{Label: "Split Edge", Handler: set(editflag.NmgEsplit)},
		{Label: "Delete Edge", Handler: set(editflag.NmgEkill)},
		{Label: "Next EU", Handler: set(editflag.NmgForw)},
		{Label: "Prev EU", Handler: set(editflag.NmgBack)},
		{Label: "Radial EU", Handler: set(editflag.NmgRadial)},
		{Label: "Extrude Loop", Handler: set(editflag.NmgLextru)},
		{Label: "Debug EU", Handler: set(editflag.NmgEdebug)},
	}
}
