package meshgen

import (
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// HalfRing is an open ring sector: a single outer edge at depth 0 fanned out
// to an inner edge doubled at -Height/2 and +Height/2. It has no caps.
//
// Vertex layout: outer, inner bottom, inner top.
type HalfRing struct {
	ShapeBase

	Sides       int     `json:"sides"`
	InnerRadius float32 `json:"innerRadius"`
	OuterRadius float32 `json:"outerRadius"`
	Angle       float32 `json:"angle"`

	// thickness of the inner edge
	Height float32 `json:"height"`
}

func NewHalfRing() *HalfRing {
	h := &HalfRing{}
	h.Defaults()
	return h
}

func (h *HalfRing) Defaults() {
	h.Sides = DEFAULT_SIDES
	h.InnerRadius = DEFAULT_INNER_RADIUS
	h.OuterRadius = DEFAULT_OUTER_RADIUS
	h.Angle = 315
	h.Height = DEFAULT_HEIGHT
	h.FlipNormals = false
}

func (h *HalfRing) Vertices() ([]vec3.T, error) {
	outer, err := Circumference(h.Sides, h.OuterRadius, h.Angle, 0)
	if err != nil {
		return nil, err
	}
	bottom, err := Circumference(h.Sides, h.InnerRadius, h.Angle, -h.Height/2)
	if err != nil {
		return nil, err
	}
	top, err := Circumference(h.Sides, h.InnerRadius, h.Angle, h.Height/2)
	if err != nil {
		return nil, err
	}
	verts := make([]vec3.T, 0, len(outer)*3)
	verts = append(verts, outer...)
	verts = append(verts, bottom...)
	return append(verts, top...), nil
}

func (h *HalfRing) Triangles(verts []vec3.T) ([]uint32, error) {
	sides, err := ringSides(verts, 3)
	if err != nil {
		return nil, err
	}
	outer, bottom, top := 0, sides, 2*sides
	tris := make([]uint32, 0, TriangleCount(sides, 2)*3)
	for i := 0; i < sides-1; i++ {
		tris = quad(tris, outer, bottom, i, h.FlipNormals)
		tris = quad(tris, outer, top, i, !h.FlipNormals)
	}
	return tris, nil
}

func (h *HalfRing) UVs(verts []vec3.T) ([]vec2.T, error) {
	sides, err := ringSides(verts, 3)
	if err != nil {
		return nil, err
	}
	uvs := make([]vec2.T, 0, len(verts))
	uvs = ringUVs(uvs, 1, sides)
	uvs = ringUVs(uvs, 0, sides)
	uvs = ringUVs(uvs, 0, sides)
	return uvs, nil
}

func (h *HalfRing) Draw(sink MeshSink) error {
	return Draw(h, sink)
}

func (h *HalfRing) Properties() Properties {
	return Properties{
		"shape":       StringProp(SHAPE_HALF_RING),
		"sides":       IntProp(int64(h.Sides)),
		"innerRadius": FloatProp(float64(h.InnerRadius)),
		"outerRadius": FloatProp(float64(h.OuterRadius)),
		"angle":       FloatProp(float64(h.Angle)),
		"height":      FloatProp(float64(h.Height)),
		"flipNormals": BoolProp(h.FlipNormals),
	}
}
