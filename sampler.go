package meshgen

import (
	"fmt"
	"math"

	"github.com/flywave/go3d/vec3"
)

// Circumference returns sides points evenly spaced along an arc of the given
// radius, starting at angle 0 and ending at angle (degrees) inclusive, all at
// the given depth on the z axis.
//
// The step is angle/(sides-1), so a full 360 degree sweep produces a first and
// last point that coincide. The UV seam of every shape relies on that.
func Circumference(sides int, radius, angle, depth float32) ([]vec3.T, error) {
	if sides < 2 {
		return nil, fmt.Errorf("circumference with %d sides: %w", sides, ErrInvalidParameter)
	}
	step := float64(angle) * math.Pi / 180 / float64(sides-1)
	points := make([]vec3.T, sides)
	for i := range points {
		rad := step * float64(i)
		points[i] = vec3.T{
			float32(math.Cos(rad)) * radius,
			float32(math.Sin(rad)) * radius,
			depth,
		}
	}
	return points, nil
}
