package meshgen

import (
	"fmt"
	"sync"

	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
	infos    []string
}

func (l *recordingLogger) DebugEnabled() bool                { return false }
func (l *recordingLogger) SetDebug(enabled bool)             {}
func (l *recordingLogger) Debugf(format string, args ...any) {}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// recordingSink remembers the order of calls made by Draw.
type recordingSink struct {
	calls []string
	verts []vec3.T
	tris  []uint32
	uvs   []vec2.T
}

func (s *recordingSink) Clear() {
	s.calls = append(s.calls, "clear")
}

func (s *recordingSink) SetVertices(verts []vec3.T) {
	s.calls = append(s.calls, "vertices")
	s.verts = verts
}

func (s *recordingSink) SetTriangles(tris []uint32) {
	s.calls = append(s.calls, "triangles")
	s.tris = tris
}

func (s *recordingSink) SetUVs(uvs []vec2.T) {
	s.calls = append(s.calls, "uvs")
	s.uvs = uvs
}

func (s *recordingSink) RecalculateNormals() {
	s.calls = append(s.calls, "normals")
}

// sameWinding reports whether triangle b is a cyclic rotation of a.
func sameWinding(a, b [3]uint32) bool {
	for r := 0; r < 3; r++ {
		if a[0] == b[r] && a[1] == b[(r+1)%3] && a[2] == b[(r+2)%3] {
			return true
		}
	}
	return false
}

func triangleAt(tris []uint32, k int) [3]uint32 {
	return [3]uint32{tris[3*k], tris[3*k+1], tris[3*k+2]}
}
