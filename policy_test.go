package meshgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyClampsConeRing(t *testing.T) {
	tests := []struct {
		name     string
		in       ConeRing
		want     ConeRing
		warnings int
	}{
		{
			"valid",
			ConeRing{Sides: 32, InnerRadius: 0.3, OuterRadius: 1, Angle: 45},
			ConeRing{Sides: 32, InnerRadius: 0.3, OuterRadius: 1, Angle: 45},
			0,
		},
		{
			"inner above outer is silent",
			ConeRing{Sides: 32, InnerRadius: 2, OuterRadius: 1, Angle: 45},
			ConeRing{Sides: 32, InnerRadius: 1, OuterRadius: 1, Angle: 45},
			0,
		},
		{
			"everything out of range",
			ConeRing{Sides: 1, InnerRadius: -1, OuterRadius: -2, Angle: 400},
			ConeRing{Sides: 3, InnerRadius: 0, OuterRadius: 0, Angle: 360},
			4,
		},
		{
			"negative inner",
			ConeRing{Sides: 5000, InnerRadius: -0.5, OuterRadius: 1, Angle: -10},
			ConeRing{Sides: 4096, InnerRadius: 0, OuterRadius: 1, Angle: 0},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			p := NewPolicy(DefaultBounds(), logger)
			c := tt.in
			n := p.Apply(&c)
			assert.Equal(t, tt.want, c)
			assert.Equal(t, tt.warnings, n)
			assert.Len(t, logger.warnings, tt.warnings)
		})
	}
}

func TestPolicyAppliesToEveryShape(t *testing.T) {
	p := NewPolicy(Bounds{MinSides: 4, MaxSides: 16, MinAngle: 10, MaxAngle: 180}, nil)

	h := &HalfRing{Sides: 2, InnerRadius: -1, OuterRadius: 1, Angle: 0}
	assert.Equal(t, 3, p.Apply(h))
	assert.Equal(t, 4, h.Sides)
	assert.Equal(t, float32(10), h.Angle)
	assert.Equal(t, float32(0), h.InnerRadius)

	r := &Ring{Sides: 20, InnerRadius: 0.5, OuterRadius: 0.1, Angle: 270}
	assert.Equal(t, 2, p.Apply(r))
	assert.Equal(t, 16, r.Sides)
	assert.Equal(t, float32(180), r.Angle)
	assert.Equal(t, float32(0.1), r.InnerRadius)

	l := &LoftedCone{Sides: 100, Angle: 500}
	assert.Equal(t, 2, p.Apply(l))
	assert.Equal(t, 16, l.Sides)
	assert.Equal(t, float32(180), l.Angle)
}
