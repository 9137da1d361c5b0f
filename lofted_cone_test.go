package meshgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoftedConeEditByEquation(t *testing.T) {
	l := NewLoftedCone()
	l.StartHeight = 0
	l.EndHeight = 1
	node := NewMeshNode()

	require.NoError(t, l.EditByEquation(func(h float32) float32 { return h }, node))

	require.Len(t, l.Levels, 3)
	for j, want := range []float32{0, 0.5, 1} {
		assert.Equal(t, want, l.Levels[j].Height)
		assert.Equal(t, want, l.Levels[j].Radius)
	}
	assert.Len(t, node.Vertices, 3*l.Sides)
	assert.Equal(t, float32(0.5), node.Vertices[l.Sides][0])
	assert.Equal(t, float32(0.5), node.Vertices[l.Sides][2])
}

func TestLoftedConeEditByEquationReversedRange(t *testing.T) {
	l := loftedWith(8, 5)
	l.StartHeight = 2
	l.EndHeight = 0

	require.NoError(t, l.EditByEquation(func(h float32) float32 { return 2 * h }, &recordingSink{}))
	for j, want := range []float32{2, 1.5, 1, 0.5, 0} {
		assert.Equal(t, want, l.Levels[j].Height)
		assert.Equal(t, 2*want, l.Levels[j].Radius)
	}
}

func TestLoftedConeLevelCountChange(t *testing.T) {
	l := loftedWith(6, 3)
	node := NewMeshNode()
	require.NoError(t, l.Draw(node))
	assert.Len(t, node.Vertices, 18)
	assert.Len(t, node.TexCoords, 18)

	l.AddLevel(3, 0.1)
	l.AddLevel(4, 0.05)
	require.NoError(t, l.Draw(node))
	assert.Len(t, node.Vertices, 30)
	assert.Len(t, node.TexCoords, 30)
	assert.Len(t, node.Triangles(), TriangleCount(6, 4)*3)
	assert.Len(t, node.Normals, 30)
}

func TestLoftedConeUVsRampAcrossLevels(t *testing.T) {
	l := loftedWith(4, 5)
	verts, err := l.Vertices()
	require.NoError(t, err)
	uvs, err := l.UVs(verts)
	require.NoError(t, err)
	for j, want := range []float32{0, 0.25, 0.5, 0.75, 1} {
		for i := 0; i < 4; i++ {
			assert.Equal(t, want, uvs[j*4+i][0])
		}
	}
}

func TestLoftedConeTriangles(t *testing.T) {
	l := loftedWith(3, 3)
	verts, err := l.Vertices()
	require.NoError(t, err)
	tris, err := l.Triangles(verts)
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		0, 1, 4, 0, 4, 3,
		1, 2, 5, 1, 5, 4,
		3, 4, 7, 3, 7, 6,
		4, 5, 8, 4, 8, 7,
	}, tris)
}

func TestLoftedConeRemoveLevel(t *testing.T) {
	l := loftedWith(4, 3)
	require.NoError(t, l.RemoveLevel(1))
	assert.Len(t, l.Levels, 2)
	assert.Equal(t, float32(2), l.Levels[1].Height)

	assert.ErrorIs(t, l.RemoveLevel(5), ErrInvalidParameter)
	require.NoError(t, l.RemoveLevel(0))

	_, err := l.Vertices()
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.ErrorIs(t, l.EditByEquation(func(h float32) float32 { return h }, &recordingSink{}), ErrInvalidParameter)
}
