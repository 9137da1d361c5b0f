package meshgen

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// littleWriter writes little endian values and keeps the first error.
type littleWriter struct {
	wt  io.Writer
	err error
}

func (w *littleWriter) write(v interface{}) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.wt, binary.LittleEndian, v)
}

func readLittleByte(rd io.Reader, v interface{}) error {
	return binary.Read(rd, binary.LittleEndian, v)
}

func writeLittleUint32(wt io.Writer, v uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	_, err := wt.Write(buf)
	return err
}

func MaterialMarshal(wt io.Writer, mt MeshMaterial) error {
	w := &littleWriter{wt: wt}
	w.write(uint32(MESH_TRIANGLE_MATERIAL_TYPE_COLOR))
	color := mt.GetColor()
	w.write(color[:])
	w.write(mt.GetTransparency())
	return w.err
}

func MaterialUnMarshal(rd io.Reader) (MeshMaterial, error) {
	var ty uint32
	if err := readLittleByte(rd, &ty); err != nil {
		return nil, err
	}
	if ty != MESH_TRIANGLE_MATERIAL_TYPE_COLOR {
		return nil, fmt.Errorf("unsupported material type %d", ty)
	}
	mtl := &BaseMaterial{}
	if err := readLittleByte(rd, mtl.Color[:]); err != nil {
		return nil, err
	}
	if err := readLittleByte(rd, &mtl.Transparency); err != nil {
		return nil, err
	}
	return mtl, nil
}

// MeshNodeMarshal writes nd in the V5 node layout. Colors, transform and
// outlines are never produced by the generators and are written empty.
func MeshNodeMarshal(wt io.Writer, nd *MeshNode) error {
	w := &littleWriter{wt: wt}
	w.write(uint32(len(nd.Vertices)))
	w.write(nd.Vertices)
	w.write(uint32(len(nd.Normals)))
	w.write(nd.Normals)
	w.write(uint32(0)) // colors
	w.write(uint32(len(nd.TexCoords)))
	w.write(nd.TexCoords)
	w.write(uint8(0)) // no matrix

	w.write(uint32(len(nd.FaceGroup)))
	for _, fg := range nd.FaceGroup {
		w.write(fg.Batchid)
		w.write(uint32(len(fg.Faces)))
		for _, f := range fg.Faces {
			w.write(f.Vertex)
		}
	}
	w.write(uint32(0)) // outlines
	w.write(uint32(0)) // node props
	return w.err
}

func MeshNodeUnMarshal(rd io.Reader) (*MeshNode, error) {
	nd := &MeshNode{}
	var size uint32
	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	nd.Vertices = make([]vec3.T, size)
	if err := readLittleByte(rd, nd.Vertices); err != nil {
		return nil, err
	}
	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	nd.Normals = make([]vec3.T, size)
	if err := readLittleByte(rd, nd.Normals); err != nil {
		return nil, err
	}
	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	colors := make([][3]byte, size)
	if err := readLittleByte(rd, colors); err != nil {
		return nil, err
	}
	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	nd.TexCoords = make([]vec2.T, size)
	if err := readLittleByte(rd, nd.TexCoords); err != nil {
		return nil, err
	}
	var isMat uint8
	if err := readLittleByte(rd, &isMat); err != nil {
		return nil, err
	}
	if isMat == 1 {
		var mat [16]float64
		if err := readLittleByte(rd, &mat); err != nil {
			return nil, err
		}
	}

	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	nd.FaceGroup = make([]*MeshTriangle, size)
	for i := range nd.FaceGroup {
		g := &MeshTriangle{}
		var count uint32
		if err := readLittleByte(rd, &g.Batchid); err != nil {
			return nil, err
		}
		if err := readLittleByte(rd, &count); err != nil {
			return nil, err
		}
		g.Faces = make([]*Face, count)
		for j := range g.Faces {
			f := &Face{}
			if err := readLittleByte(rd, &f.Vertex); err != nil {
				return nil, err
			}
			g.Faces[j] = f
		}
		nd.FaceGroup[i] = g
	}

	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	for i := 0; i < int(size); i++ {
		var batch int32
		var count uint32
		if err := readLittleByte(rd, &batch); err != nil {
			return nil, err
		}
		if err := readLittleByte(rd, &count); err != nil {
			return nil, err
		}
		edges := make([][2]uint32, count)
		if err := readLittleByte(rd, edges); err != nil {
			return nil, err
		}
	}
	if _, err := PropertiesUnMarshal(rd); err != nil {
		return nil, err
	}
	return nd, nil
}

func MeshMarshal(wt io.Writer, ms *Mesh) error {
	if _, err := wt.Write([]byte(MESH_SIGNATURE)); err != nil {
		return err
	}
	w := &littleWriter{wt: wt}
	w.write(ms.Version)
	w.write(uint32(0)) // code
	w.write(uint32(len(ms.Materials)))
	if w.err != nil {
		return w.err
	}
	for _, mtl := range ms.Materials {
		if err := MaterialMarshal(wt, mtl); err != nil {
			return err
		}
	}
	if err := writeLittleUint32(wt, uint32(len(ms.Nodes))); err != nil {
		return err
	}
	for _, nd := range ms.Nodes {
		if err := MeshNodeMarshal(wt, nd); err != nil {
			return err
		}
	}
	if err := writeLittleUint32(wt, 0); err != nil { // instances
		return err
	}
	if len(ms.Props) == 0 {
		return writeLittleUint32(wt, 0)
	}
	if err := writeLittleUint32(wt, 1); err != nil {
		return err
	}
	return PropertiesMarshal(wt, ms.Props)
}

func MeshUnMarshal(rd io.Reader) (*Mesh, error) {
	sig := make([]byte, len(MESH_SIGNATURE))
	if _, err := io.ReadFull(rd, sig); err != nil {
		return nil, err
	}
	if !bytes.Equal(sig, []byte(MESH_SIGNATURE)) {
		return nil, fmt.Errorf("bad mesh signature %q", sig)
	}
	ms := &Mesh{}
	if err := readLittleByte(rd, &ms.Version); err != nil {
		return nil, err
	}
	if ms.Version != V5 {
		return nil, fmt.Errorf("unsupported mesh version %d", ms.Version)
	}
	var code, size uint32
	if err := readLittleByte(rd, &code); err != nil {
		return nil, err
	}
	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	ms.Materials = make([]MeshMaterial, size)
	for i := range ms.Materials {
		mtl, err := MaterialUnMarshal(rd)
		if err != nil {
			return nil, err
		}
		ms.Materials[i] = mtl
	}
	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	ms.Nodes = make([]*MeshNode, size)
	for i := range ms.Nodes {
		nd, err := MeshNodeUnMarshal(rd)
		if err != nil {
			return nil, err
		}
		ms.Nodes[i] = nd
	}
	if err := readLittleByte(rd, &size); err != nil {
		return nil, err
	}
	if size != 0 {
		return nil, fmt.Errorf("instanced meshes are not supported")
	}
	var hasProps uint32
	if err := readLittleByte(rd, &hasProps); err != nil {
		return nil, err
	}
	if hasProps > 0 {
		props, err := PropertiesUnMarshal(rd)
		if err != nil {
			return nil, err
		}
		ms.Props = props
	}
	return ms, nil
}

func MeshReadFrom(path string) (*Mesh, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()
	return MeshUnMarshal(f)
}

func MeshWriteTo(path string, ms *Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()
	return MeshMarshal(f, ms)
}
