package meshgen

import (
	"fmt"

	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// Level is one ring of a LoftedCone.
type Level struct {
	Height float32 `json:"height"`
	Radius float32 `json:"radius"`
}

// LoftedCone stacks one ring per level and joins every pair of consecutive
// levels. Levels need not be sorted by height.
type LoftedCone struct {
	ShapeBase

	Sides  int      `json:"sides"`
	Angle  float32  `json:"angle"`
	Levels []*Level `json:"levels"`

	// height range used by EditByEquation only
	StartHeight float32 `json:"startHeight"`
	EndHeight   float32 `json:"endHeight"`
}

func NewLoftedCone() *LoftedCone {
	l := &LoftedCone{}
	l.Defaults()
	return l
}

func (l *LoftedCone) Defaults() {
	l.Sides = DEFAULT_SIDES
	l.Angle = 360
	l.Levels = []*Level{
		{Height: 0.5, Radius: 0.1},
		{Height: 0.38, Radius: 0.3},
		{Height: 0.1, Radius: 0.5},
	}
	l.StartHeight = 0
	l.EndHeight = 1
	l.FlipNormals = false
}

func (l *LoftedCone) levelCount() (int, error) {
	n := len(l.Levels)
	if n < 2 {
		return 0, fmt.Errorf("lofted cone with %d levels: %w", n, ErrInvalidParameter)
	}
	return n, nil
}

func (l *LoftedCone) Vertices() ([]vec3.T, error) {
	n, err := l.levelCount()
	if err != nil {
		return nil, err
	}
	if l.Sides < 2 {
		return nil, fmt.Errorf("lofted cone with %d sides: %w", l.Sides, ErrInvalidParameter)
	}
	verts := make([]vec3.T, 0, n*l.Sides)
	for j, lv := range l.Levels {
		if lv == nil {
			return nil, fmt.Errorf("lofted cone level %d is nil: %w", j, ErrInvalidParameter)
		}
		ring, err := Circumference(l.Sides, lv.Radius, l.Angle, lv.Height)
		if err != nil {
			return nil, err
		}
		verts = append(verts, ring...)
	}
	return verts, nil
}

func (l *LoftedCone) Triangles(verts []vec3.T) ([]uint32, error) {
	n, err := l.levelCount()
	if err != nil {
		return nil, err
	}
	sides, err := ringSides(verts, n)
	if err != nil {
		return nil, err
	}
	tris := make([]uint32, 0, TriangleCount(sides, n-1)*3)
	for j := 0; j < n-1; j++ {
		for i := 0; i < sides-1; i++ {
			tris = quad(tris, j*sides, (j+1)*sides, i, !l.FlipNormals)
		}
	}
	return tris, nil
}

func (l *LoftedCone) UVs(verts []vec3.T) ([]vec2.T, error) {
	n, err := l.levelCount()
	if err != nil {
		return nil, err
	}
	sides, err := ringSides(verts, n)
	if err != nil {
		return nil, err
	}
	uvs := make([]vec2.T, 0, len(verts))
	for j := 0; j < n; j++ {
		uvs = ringUVs(uvs, float32(j)/float32(n-1), sides)
	}
	return uvs, nil
}

func (l *LoftedCone) Draw(sink MeshSink) error {
	return Draw(l, sink)
}

// EditByEquation spreads the level heights evenly from StartHeight to
// EndHeight, sets each radius to equation(height) and redraws into sink.
func (l *LoftedCone) EditByEquation(equation func(height float32) float32, sink MeshSink) error {
	n, err := l.levelCount()
	if err != nil {
		return err
	}
	for j, lv := range l.Levels {
		if lv == nil {
			lv = &Level{}
			l.Levels[j] = lv
		}
		t := float32(j) / float32(n-1)
		lv.Height = l.StartHeight + (l.EndHeight-l.StartHeight)*t
		lv.Radius = equation(lv.Height)
	}
	return l.Draw(sink)
}

// AddLevel appends a level on top of the stack.
func (l *LoftedCone) AddLevel(height, radius float32) {
	l.Levels = append(l.Levels, &Level{Height: height, Radius: radius})
}

// RemoveLevel removes the level at index i.
func (l *LoftedCone) RemoveLevel(i int) error {
	if i < 0 || i >= len(l.Levels) {
		return fmt.Errorf("remove level %d of %d: %w", i, len(l.Levels), ErrInvalidParameter)
	}
	l.Levels = append(l.Levels[:i], l.Levels[i+1:]...)
	return nil
}

func (l *LoftedCone) Properties() Properties {
	levels := make([]PropsValue, 0, len(l.Levels))
	for _, lv := range l.Levels {
		if lv == nil {
			continue
		}
		levels = append(levels, PropsValue{Type: PROP_TYPE_ARRAY, Value: []PropsValue{
			FloatProp(float64(lv.Height)),
			FloatProp(float64(lv.Radius)),
		}})
	}
	return Properties{
		"shape":       StringProp(SHAPE_LOFTED_CONE),
		"sides":       IntProp(int64(l.Sides)),
		"angle":       FloatProp(float64(l.Angle)),
		"levels":      {Type: PROP_TYPE_ARRAY, Value: levels},
		"startHeight": FloatProp(float64(l.StartHeight)),
		"endHeight":   FloatProp(float64(l.EndHeight)),
		"flipNormals": BoolProp(l.FlipNormals),
	}
}
