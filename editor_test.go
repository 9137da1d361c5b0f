package meshgen

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorUpdateClampsAndDraws(t *testing.T) {
	logger := &recordingLogger{}
	c := NewConeRing()
	c.Sides = 1
	c.Angle = 720
	e := NewEditor(c, nil, logger)

	require.NoError(t, e.Update())
	assert.Equal(t, 3, c.Sides)
	assert.Equal(t, float32(360), c.Angle)
	assert.Len(t, logger.warnings, 2)
	assert.Len(t, e.Node.Vertices, 6)
}

func TestEditorWithoutRestrictionFails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RestrictUnsafeValues = false
	logger := &recordingLogger{}
	c := NewConeRing()
	e := NewEditor(c, cfg, logger)
	require.NoError(t, e.Update())
	drawn := len(e.Node.Vertices)

	c.Sides = 1
	assert.ErrorIs(t, e.Update(), ErrInvalidParameter)
	assert.Len(t, e.Node.Vertices, drawn)
	assert.Len(t, logger.errors, 1)
}

func TestEditorLevelCountForcesRedraw(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoUpdate = false
	l := loftedWith(8, 3)
	e := NewEditor(l, cfg, nil)

	require.NoError(t, e.Update())
	assert.Len(t, e.Node.Vertices, 24)

	// no level change and no auto update: stale mesh stays
	l.Sides = 4
	require.NoError(t, e.Update())
	assert.Len(t, e.Node.Vertices, 24)

	l.AddLevel(3, 0.2)
	l.AddLevel(4, 0.1)
	require.NoError(t, e.Update())
	assert.Len(t, e.Node.Vertices, 20)
	assert.Len(t, e.Node.TexCoords, 20)
	assert.Len(t, e.Node.Triangles(), TriangleCount(4, 4)*3)
}

func TestEditorSave(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	logger := NewWriterLogger(out, errOut, "test", false)
	e := NewEditor(NewRing(), nil, logger)
	require.NoError(t, e.Update())

	assert.False(t, e.Save(""))
	assert.Empty(t, out.String())

	path := filepath.Join(t.TempDir(), "assets", "ring")
	assert.True(t, e.Save(path))
	assert.True(t, strings.Contains(out.String(), "[test] INFO: Mesh saved successfully"))

	ms, err := MeshReadFrom(path + MSTEXT)
	require.NoError(t, err)
	require.Len(t, ms.Nodes, 1)
	assert.Equal(t, e.Node.Vertices, ms.Nodes[0].Vertices)

	assert.False(t, e.Save(filepath.Join(t.TempDir(), "ring.obj")))
	assert.True(t, strings.Contains(errOut.String(), "[test] ERROR: save mesh"))

	e.Node = nil
	assert.False(t, e.Save(path))
	assert.True(t, strings.Contains(errOut.String(), "Mesh is null!"))
}

func TestEditorClampsBeforeLevelRedraw(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoUpdate = false
	l := loftedWith(3, 3)
	l.Sides = -5
	e := NewEditor(l, cfg, &recordingLogger{})

	require.NoError(t, e.Update())
	assert.Equal(t, MIN_SIDES, l.Sides)
	assert.Len(t, e.Node.Vertices, 3*MIN_SIDES)
}

func TestEditorNegativeSidesUnrestricted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RestrictUnsafeValues = false
	l := loftedWith(3, 3)
	l.Sides = -1
	e := NewEditor(l, cfg, &recordingLogger{})

	assert.ErrorIs(t, e.Update(), ErrInvalidParameter)
	assert.Empty(t, e.Node.Vertices)
}
