package meshgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircumferenceSeam(t *testing.T) {
	pts, err := Circumference(5, 1, 360, 0)
	require.NoError(t, err)
	require.Len(t, pts, 5)

	assert.InDelta(t, pts[0][0], pts[4][0], 1e-6)
	assert.InDelta(t, pts[0][1], pts[4][1], 1e-6)

	// quarter turns
	assert.InDelta(t, 0, pts[1][0], 1e-6)
	assert.InDelta(t, 1, pts[1][1], 1e-6)
	assert.InDelta(t, -1, pts[2][0], 1e-6)
}

func TestCircumferencePoints(t *testing.T) {
	tests := []struct {
		name   string
		sides  int
		radius float32
		angle  float32
		depth  float32
		last   [3]float32
	}{
		{"quarter", 3, 2, 90, 0, [3]float32{0, 2, 0}},
		{"half", 2, 1, 180, 0.5, [3]float32{-1, 0, 0.5}},
		{"zero radius", 4, 0, 360, -1, [3]float32{0, 0, -1}},
		{"zero angle", 4, 1, 0, 0, [3]float32{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := Circumference(tt.sides, tt.radius, tt.angle, tt.depth)
			require.NoError(t, err)
			require.Len(t, pts, tt.sides)
			assert.InDelta(t, tt.radius, pts[0][0], 1e-6)
			last := pts[len(pts)-1]
			for k := 0; k < 3; k++ {
				assert.InDelta(t, tt.last[k], last[k], 1e-6)
			}
			for _, p := range pts {
				assert.Equal(t, tt.depth, p[2])
			}
		})
	}
}

func TestCircumferenceInvalidSides(t *testing.T) {
	for _, sides := range []int{-1, 0, 1} {
		_, err := Circumference(sides, 1, 360, 0)
		assert.ErrorIs(t, err, ErrInvalidParameter, "sides=%d", sides)
	}
}
