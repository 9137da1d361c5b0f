package meshgen

import (
	"fmt"

	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// MeshSink receives the buffers produced by a Generator. Draw always clears
// the sink before writing, there is no partial update.
type MeshSink interface {
	Clear()
	SetVertices(verts []vec3.T)
	SetTriangles(tris []uint32)
	SetUVs(uvs []vec2.T)
	RecalculateNormals()
}

// Generator is implemented by every shape: ConeRing, HalfRing, Ring and
// LoftedCone.
type Generator interface {
	Vertices() ([]vec3.T, error)
	Triangles(verts []vec3.T) ([]uint32, error)
	UVs(verts []vec3.T) ([]vec2.T, error)
	Draw(sink MeshSink) error
	Properties() Properties
}

// ShapeBase holds the parameters shared by all shapes.
type ShapeBase struct {
	FlipNormals bool `json:"flipNormals"`
}

// Draw computes vertices, triangles and uvs of g and replaces the content of
// sink with them. Nothing is written to sink when any stage fails.
func Draw(g Generator, sink MeshSink) error {
	verts, err := g.Vertices()
	if err != nil {
		return err
	}
	tris, err := g.Triangles(verts)
	if err != nil {
		return err
	}
	uvs, err := g.UVs(verts)
	if err != nil {
		return err
	}

	sink.Clear()
	sink.SetVertices(verts)
	sink.SetTriangles(tris)
	sink.SetUVs(uvs)
	sink.RecalculateNormals()
	return nil
}

// ringSides returns the number of points per ring of a buffer holding rings
// rings back to back.
func ringSides(verts []vec3.T, rings int) (int, error) {
	if rings < 1 || len(verts)%rings != 0 {
		return 0, fmt.Errorf("%d vertices do not split into %d rings: %w", len(verts), rings, ErrInvalidParameter)
	}
	sides := len(verts) / rings
	if sides < 2 {
		return 0, fmt.Errorf("ring of %d points: %w", sides, ErrInvalidParameter)
	}
	return sides, nil
}

// quad appends the two triangles joining column i and i+1 of the rings
// starting at a and b.
//
// The plain winding is {b+i+1, a+i+1, a+i}, {b+i, b+i+1, a+i}; reversed emits
// the same triples in opposite order.
func quad(tris []uint32, a, b, i int, reversed bool) []uint32 {
	ai, an := uint32(a+i), uint32(a+i+1)
	bi, bn := uint32(b+i), uint32(b+i+1)
	if !reversed {
		return append(tris,
			bn, an, ai,
			bi, bn, ai,
		)
	}
	return append(tris,
		ai, an, bn,
		ai, bn, bi,
	)
}

// ringUVs appends one ring of uvs at the given u. v ramps over sides-1
// columns and the last point gets v = 1, which duplicates the seam.
func ringUVs(uvs []vec2.T, u float32, sides int) []vec2.T {
	cols := sides - 1
	for i := 0; i < cols; i++ {
		uvs = append(uvs, vec2.T{u, float32(i) / float32(cols)})
	}
	return append(uvs, vec2.T{u, 1})
}

// TriangleCount returns the number of triangles a shape with the given number
// of ring pairs (bands) produces for sides points per ring.
func TriangleCount(sides, bands int) int {
	if sides < 2 {
		return 0
	}
	return (sides - 1) * bands * 2
}
