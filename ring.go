package meshgen

import (
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// Ring is a closed ribbon sector with thickness. The outer and inner rings sit
// at depth 0 and are joined through two middle rings placed halfway between
// them at -Height/2 and +Height/2.
//
// Vertex layout: outer, middle bottom, middle top, inner.
type Ring struct {
	ShapeBase

	Sides       int     `json:"sides"`
	InnerRadius float32 `json:"innerRadius"`
	OuterRadius float32 `json:"outerRadius"`
	Angle       float32 `json:"angle"`
	Height      float32 `json:"height"`
}

func NewRing() *Ring {
	r := &Ring{}
	r.Defaults()
	return r
}

func (r *Ring) Defaults() {
	r.Sides = DEFAULT_SIDES
	r.InnerRadius = DEFAULT_INNER_RADIUS
	r.OuterRadius = DEFAULT_OUTER_RADIUS
	r.Angle = 315
	r.Height = DEFAULT_HEIGHT
	r.FlipNormals = false
}

func (r *Ring) Vertices() ([]vec3.T, error) {
	outer, err := Circumference(r.Sides, r.OuterRadius, r.Angle, 0)
	if err != nil {
		return nil, err
	}
	inner, err := Circumference(r.Sides, r.InnerRadius, r.Angle, 0)
	if err != nil {
		return nil, err
	}

	n := len(outer)
	verts := make([]vec3.T, 4*n)
	copy(verts, outer)
	copy(verts[3*n:], inner)
	for i := 0; i < n; i++ {
		x := (inner[i][0] + outer[i][0]) / 2
		y := (inner[i][1] + outer[i][1]) / 2
		verts[n+i] = vec3.T{x, y, -r.Height / 2}
		verts[2*n+i] = vec3.T{x, y, r.Height / 2}
	}
	return verts, nil
}

func (r *Ring) Triangles(verts []vec3.T) ([]uint32, error) {
	sides, err := ringSides(verts, 4)
	if err != nil {
		return nil, err
	}
	outer, bottom, top, inner := 0, sides, 2*sides, 3*sides
	flip := r.FlipNormals
	tris := make([]uint32, 0, TriangleCount(sides, 4)*3)
	for i := 0; i < sides-1; i++ {
		tris = quad(tris, outer, bottom, i, flip)
		tris = quad(tris, outer, top, i, !flip)
		tris = quad(tris, bottom, inner, i, flip)
		tris = quad(tris, top, inner, i, !flip)
	}
	return tris, nil
}

func (r *Ring) UVs(verts []vec3.T) ([]vec2.T, error) {
	sides, err := ringSides(verts, 4)
	if err != nil {
		return nil, err
	}
	uvs := make([]vec2.T, 0, len(verts))
	for _, u := range [4]float32{1, 0.5, 0.5, 0} {
		uvs = ringUVs(uvs, u, sides)
	}
	return uvs, nil
}

func (r *Ring) Draw(sink MeshSink) error {
	return Draw(r, sink)
}

func (r *Ring) Properties() Properties {
	return Properties{
		"shape":       StringProp(SHAPE_RING),
		"sides":       IntProp(int64(r.Sides)),
		"innerRadius": FloatProp(float64(r.InnerRadius)),
		"outerRadius": FloatProp(float64(r.OuterRadius)),
		"angle":       FloatProp(float64(r.Angle)),
		"height":      FloatProp(float64(r.Height)),
		"flipNormals": BoolProp(r.FlipNormals),
	}
}
