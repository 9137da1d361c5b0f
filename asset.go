package meshgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNilMesh = errors.New("mesh is nil")

const (
	GLBEXT  = ".glb"
	GLTFEXT = ".gltf"
)

// NewAsset wraps node into a persistable Mesh tagged with props and a fresh
// asset id.
func NewAsset(node *MeshNode, props Properties) *Mesh {
	ms := NewMesh()
	ms.Materials = []MeshMaterial{DefaultMaterial()}
	ms.Nodes = []*MeshNode{node}
	ms.Props.Merge(props)
	ms.Props["uuid"] = StringProp(uuid.NewString())
	return ms
}

// SaveMesh writes node to path. The format follows the extension: .mst,
// .glb or .gltf; a path without extension gets .mst.
func SaveMesh(path string, node *MeshNode, props Properties) (string, error) {
	if node == nil {
		return "", ErrNilMesh
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		path += MSTEXT
		ext = MSTEXT
	}
	ms := NewAsset(node, props)

	switch ext {
	case MSTEXT:
		return path, MeshWriteTo(path, ms)
	case GLBEXT, GLTFEXT:
		doc, err := MeshToGltf(ms)
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return "", err
		}
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return path, WriteGltf(f, doc, ext == GLBEXT)
	}
	return "", fmt.Errorf("unsupported mesh format %q", ext)
}
