package meshgen

import (
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// ConeRing is a flat ring sector made of an outer and an inner ring at depth 0.
type ConeRing struct {
	ShapeBase

	Sides       int     `json:"sides"`
	InnerRadius float32 `json:"innerRadius"`
	OuterRadius float32 `json:"outerRadius"`

	// sweep in degrees, 0 - 360
	Angle float32 `json:"angle"`
}

// NewConeRing returns a ConeRing with default parameters.
func NewConeRing() *ConeRing {
	c := &ConeRing{}
	c.Defaults()
	return c
}

func (c *ConeRing) Defaults() {
	c.Sides = DEFAULT_SIDES
	c.InnerRadius = DEFAULT_INNER_RADIUS
	c.OuterRadius = DEFAULT_OUTER_RADIUS
	c.Angle = 45
	c.FlipNormals = false
}

func (c *ConeRing) Vertices() ([]vec3.T, error) {
	outer, err := Circumference(c.Sides, c.OuterRadius, c.Angle, 0)
	if err != nil {
		return nil, err
	}
	inner, err := Circumference(c.Sides, c.InnerRadius, c.Angle, 0)
	if err != nil {
		return nil, err
	}
	return append(outer, inner...), nil
}

func (c *ConeRing) Triangles(verts []vec3.T) ([]uint32, error) {
	sides, err := ringSides(verts, 2)
	if err != nil {
		return nil, err
	}
	tris := make([]uint32, 0, TriangleCount(sides, 1)*3)
	for i := 0; i < sides-1; i++ {
		tris = quad(tris, 0, sides, i, c.FlipNormals)
	}
	return tris, nil
}

func (c *ConeRing) UVs(verts []vec3.T) ([]vec2.T, error) {
	sides, err := ringSides(verts, 2)
	if err != nil {
		return nil, err
	}
	uvs := make([]vec2.T, 0, len(verts))
	uvs = ringUVs(uvs, 1, sides)
	uvs = ringUVs(uvs, 0, sides)
	return uvs, nil
}

func (c *ConeRing) Draw(sink MeshSink) error {
	return Draw(c, sink)
}

func (c *ConeRing) Properties() Properties {
	return Properties{
		"shape":       StringProp(SHAPE_CONE_RING),
		"sides":       IntProp(int64(c.Sides)),
		"innerRadius": FloatProp(float64(c.InnerRadius)),
		"outerRadius": FloatProp(float64(c.OuterRadius)),
		"angle":       FloatProp(float64(c.Angle)),
		"flipNormals": BoolProp(c.FlipNormals),
	}
}
