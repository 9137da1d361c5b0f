package meshgen

import (
	"math"

	dvec3 "github.com/flywave/go3d/float64/vec3"

	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// MeshNode 网格节点, the in-memory mesh that generators draw into.
type MeshNode struct {
	Vertices  []vec3.T        `json:"vertices"`
	Normals   []vec3.T        `json:"normals,omitempty"`
	TexCoords []vec2.T        `json:"texCoords,omitempty"`
	FaceGroup []*MeshTriangle `json:"faceGroup,omitempty"`
}

func NewMeshNode() *MeshNode {
	return &MeshNode{}
}

func (n *MeshNode) Clear() {
	n.Vertices = nil
	n.Normals = nil
	n.TexCoords = nil
	n.FaceGroup = nil
}

func (n *MeshNode) SetVertices(verts []vec3.T) {
	n.Vertices = verts
}

// SetTriangles stores tris as a single face group. A trailing partial triple
// is dropped.
func (n *MeshNode) SetTriangles(tris []uint32) {
	faces := make([]*Face, 0, len(tris)/3)
	for i := 0; i+2 < len(tris); i += 3 {
		faces = append(faces, &Face{Vertex: [3]uint32{tris[i], tris[i+1], tris[i+2]}})
	}
	n.FaceGroup = []*MeshTriangle{{Batchid: 0, Faces: faces}}
}

func (n *MeshNode) SetUVs(uvs []vec2.T) {
	n.TexCoords = uvs
}

// Triangles flattens the face groups back into an index buffer.
func (n *MeshNode) Triangles() []uint32 {
	var tris []uint32
	for _, g := range n.FaceGroup {
		for _, f := range g.Faces {
			tris = append(tris, f.Vertex[0], f.Vertex[1], f.Vertex[2])
		}
	}
	return tris
}

// RecalculateNormals sets every vertex normal to the normalized sum of the
// unit normals of the faces using it. Degenerate faces are skipped.
func (n *MeshNode) RecalculateNormals() {
	normals := make([]vec3.T, len(n.Vertices))
	for _, g := range n.FaceGroup {
		for _, f := range g.Faces {
			pt1 := n.Vertices[f.Vertex[0]]
			pt2 := n.Vertices[f.Vertex[1]]
			pt3 := n.Vertices[f.Vertex[2]]

			sub1 := vec3.Sub(&pt3, &pt2)
			sub2 := vec3.Sub(&pt1, &pt2)

			cro := vec3.Cross(&sub1, &sub2)
			l := cro.Length()
			if l == 0 {
				continue
			}
			weighted := cro.Scale(1 / l)

			normals[f.Vertex[0]].Add(weighted)
			normals[f.Vertex[1]].Add(weighted)
			normals[f.Vertex[2]].Add(weighted)
		}
	}

	for i := range normals {
		if normals[i].Length() > 0 {
			normals[i].Normalize()
		}
	}
	n.Normals = normals
}

func (n *MeshNode) GetBoundbox() *[6]float64 {
	minX := math.MaxFloat64
	minY := math.MaxFloat64
	minZ := math.MaxFloat64
	maxX := -math.MaxFloat64
	maxY := -math.MaxFloat64
	maxZ := -math.MaxFloat64
	for i := range n.Vertices {
		minX = math.Min(minX, float64(n.Vertices[i][0]))
		minY = math.Min(minY, float64(n.Vertices[i][1]))
		minZ = math.Min(minZ, float64(n.Vertices[i][2]))

		maxX = math.Max(maxX, float64(n.Vertices[i][0]))
		maxY = math.Max(maxY, float64(n.Vertices[i][1]))
		maxZ = math.Max(maxZ, float64(n.Vertices[i][2]))
	}
	return &[6]float64{minX, minY, minZ, maxX, maxY, maxZ}
}

// Mesh 网格, what gets persisted: the drawn nodes plus the generator
// parameters in Props.
type Mesh struct {
	Version   uint32         `json:"version"`
	Materials []MeshMaterial `json:"materials,omitempty"`
	Nodes     []*MeshNode    `json:"nodes,omitempty"`
	Props     Properties     `json:"props,omitempty"`
}

func NewMesh() *Mesh {
	return &Mesh{Version: V5, Props: Properties{}}
}

func (m *Mesh) ComputeBBox() dvec3.Box {
	if len(m.Nodes) == 0 {
		return dvec3.Box{}
	}

	bbox := dvec3.MinBox
	for _, nd := range m.Nodes {
		bx := nd.GetBoundbox()
		min := dvec3.T{bx[0], bx[1], bx[2]}
		max := dvec3.T{bx[3], bx[4], bx[5]}
		bbx := dvec3.Box{Min: min, Max: max}
		bbox.Join(&bbx)
	}
	return bbox
}
