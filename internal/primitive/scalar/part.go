package scalar

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/paramio"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Part is a particle: a sphere-capped cylinder/cone from V (radius
// VRad) to V+H (radius HRad); HRad may be zero for a sphere-tipped
// cone.
type Part struct {
	V, H       vecmat.Vec3
	VRad, HRad float64
}

// TypeName implements primitive.Primitive.
func (p *Part) TypeName() string { return "PART" }

// Keypoint implements primitive.Primitive.
func (p *Part) Keypoint() vecmat.Vec3 { return p.V }

// ApplyMatrix implements primitive.Primitive.
func (p *Part) ApplyMatrix(m vecmat.Mat4) error {
	p.V = vecmat.TransformPoint(m, p.V)
	p.H = vecmat.TransformVec(m, p.H)
	return nil
}

// Fields builds the PART scalar-scale table (§4.9): independent
// scale of the radius at V and the radius at H's tip.
func (p *Part) Fields() Fields {
	return Fields{
		editflag.PartV: {Name: "v_end radius", Scale: func(factor float64) error {
			p.VRad *= factor
			return nil
		}},
		editflag.PartH: {Name: "h_end radius", Scale: func(factor float64) error {
			if p.HRad == 0 {
				return primitive.Newf(primitive.GeometryRejected, "h_end radius is zero and cannot be scaled; use the uniform scale instead")
			}
			p.HRad *= factor
			return nil
		}},
	}
}

// Menu builds PART's edit menu.
func (p *Part) Menu(setFlag func(editflag.SubOp)) primitive.Menu {
	return primitive.Menu{
		{Label: "PARTICLE MENU", Handler: nil},
		{Label: "Set v_end radius", Handler: func() error { setFlag(editflag.PartV); return nil }},
		{Label: "Set h_end radius", Handler: func() error { setFlag(editflag.PartH); return nil }},
	}
}

// WriteParams renders the round-trip text form: Vertex, Height,
// v_end_radius, h_end_radius.
func (p *Part) WriteParams(base2local float64) string {
	out := paramio.WriteVec3("Vertex", vecmat.Scale(p.V, base2local)) + "\n"
	out += paramio.WriteVec3("Height", vecmat.Scale(p.H, base2local)) + "\n"
	out += paramio.WriteScalar("v_end_radius", p.VRad*base2local) + "\n"
	out += paramio.WriteScalar("h_end_radius", p.HRad*base2local) + "\n"
	return out
}

// ReadPartParams parses PART's round-trip text form.
func ReadPartParams(text string, local2base float64) (*Part, error) {
	lines := paramio.Lines(text)
	if err := paramio.Require(lines, 4); err != nil {
		return nil, err
	}
	v, err := paramio.ParseVec3(lines[0], local2base)
	if err != nil {
		return nil, err
	}
	h, err := paramio.ParseVec3(lines[1], local2base)
	if err != nil {
		return nil, err
	}
	vr, err := paramio.ParseScalar(lines[2], local2base)
	if err != nil {
		return nil, err
	}
	hr, err := paramio.ParseScalar(lines[3], local2base)
	if err != nil {
		return nil, err
	}
	return &Part{V: v, H: h, VRad: vr, HRad: hr}, nil
}
