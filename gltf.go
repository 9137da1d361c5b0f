package meshgen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
)

const GLTF_VERSION = "2.0"

// MeshToGltf builds a glTF document holding one glTF mesh per node of ms.
func MeshToGltf(ms *Mesh) (*gltf.Document, error) {
	doc := CreateDoc()
	if err := BuildGltf(doc, ms); err != nil {
		return nil, err
	}
	return doc, nil
}

func CreateDoc() *gltf.Document {
	doc := &gltf.Document{}
	doc.Asset.Version = GLTF_VERSION
	doc.Asset.Generator = "go-meshgen"
	srcIndex := uint32(0)
	doc.Scene = &srcIndex
	doc.Scenes = append(doc.Scenes, &gltf.Scene{})
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{})
	return doc
}

func calcPadding(offset, paddingUnit int) int {
	padding := offset % paddingUnit
	if padding != 0 {
		padding = paddingUnit - padding
	}
	return padding
}

// GetGltfBinary encodes doc as GLB, padded with spaces to a multiple of
// paddingUnit bytes.
func GetGltfBinary(doc *gltf.Document, paddingUnit int) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := gltf.NewEncoder(buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if padding := calcPadding(buf.Len(), paddingUnit); padding > 0 {
		buf.Write(bytes.Repeat([]byte{0x20}, padding))
	}
	return buf.Bytes(), nil
}

// WriteGltf encodes doc to wt, as GLB when asBinary is set and as JSON with
// an embedded buffer otherwise.
func WriteGltf(wt io.Writer, doc *gltf.Document, asBinary bool) error {
	if !asBinary {
		for _, b := range doc.Buffers {
			if b.URI == "" && len(b.Data) > 0 {
				b.EmbeddedResource()
			}
		}
	}
	enc := gltf.NewEncoder(wt)
	enc.AsBinary = asBinary
	return enc.Encode(doc)
}

func BuildGltf(doc *gltf.Document, ms *Mesh) error {
	if len(doc.Buffers) == 0 {
		return fmt.Errorf("gltf document has no buffer")
	}
	mtlBase := uint32(len(doc.Materials))
	buffer := doc.Buffers[0]

	for _, nd := range ms.Nodes {
		if len(nd.Vertices) == 0 {
			continue
		}
		buf := &bytes.Buffer{}
		startLen := buffer.ByteLength

		w := &littleWriter{wt: buf}
		indices := &gltf.BufferView{Buffer: 0, ByteOffset: startLen, Target: gltf.TargetElementArrayBuffer}
		for _, g := range nd.FaceGroup {
			for _, f := range g.Faces {
				w.write(f.Vertex)
			}
		}
		indices.ByteLength = uint32(buf.Len())
		bvIndex := uint32(len(doc.BufferViews))
		doc.BufferViews = append(doc.BufferViews, indices)

		bvPos := appendView(doc, w, buf, startLen, nd.Vertices)
		var bvTexc, bvNl uint32
		if len(nd.TexCoords) > 0 {
			bvTexc = appendView(doc, w, buf, startLen, nd.TexCoords)
		}
		if len(nd.Normals) > 0 {
			bvNl = appendView(doc, w, buf, startLen, nd.Normals)
		}
		if w.err != nil {
			return fmt.Errorf("encode gltf buffer: %w", w.err)
		}
		buffer.ByteLength += uint32(buf.Len())
		buffer.Data = append(buffer.Data, buf.Bytes()...)

		posacc := uint32(len(doc.Accessors))
		box := nd.GetBoundbox()
		doc.Accessors = append(doc.Accessors, &gltf.Accessor{
			BufferView:    &bvPos,
			ComponentType: gltf.ComponentFloat,
			Type:          gltf.AccessorVec3,
			Count:         uint32(len(nd.Vertices)),
			Min:           []float32{float32(box[0]), float32(box[1]), float32(box[2])},
			Max:           []float32{float32(box[3]), float32(box[4]), float32(box[5])},
		})
		attrs := gltf.Attribute{"POSITION": posacc}
		if len(nd.TexCoords) > 0 {
			attrs["TEXCOORD_0"] = uint32(len(doc.Accessors))
			doc.Accessors = append(doc.Accessors, &gltf.Accessor{
				BufferView:    &bvTexc,
				ComponentType: gltf.ComponentFloat,
				Type:          gltf.AccessorVec2,
				Count:         uint32(len(nd.TexCoords)),
			})
		}
		if len(nd.Normals) > 0 {
			attrs["NORMAL"] = uint32(len(doc.Accessors))
			doc.Accessors = append(doc.Accessors, &gltf.Accessor{
				BufferView:    &bvNl,
				ComponentType: gltf.ComponentFloat,
				Type:          gltf.AccessorVec3,
				Count:         uint32(len(nd.Normals)),
			})
		}

		mesh := &gltf.Mesh{}
		var start uint32
		for _, patch := range nd.FaceGroup {
			index := uint32(len(doc.Accessors))
			doc.Accessors = append(doc.Accessors, &gltf.Accessor{
				BufferView:    &bvIndex,
				ByteOffset:    start * 12,
				ComponentType: gltf.ComponentUint,
				Type:          gltf.AccessorScalar,
				Count:         uint32(len(patch.Faces)) * 3,
			})
			start += uint32(len(patch.Faces))

			ps := &gltf.Primitive{Attributes: attrs, Indices: &index, Mode: gltf.PrimitiveTriangles}
			if len(ms.Materials) > 0 {
				mtlId := mtlBase + uint32(patch.Batchid)
				ps.Material = &mtlId
			}
			mesh.Primitives = append(mesh.Primitives, ps)
		}

		meshId := uint32(len(doc.Meshes))
		doc.Meshes = append(doc.Meshes, mesh)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
		doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: &meshId})
	}

	fillMaterials(doc, ms.Materials)
	return nil
}

// appendView writes data to buf through w and registers a vertex buffer view
// for it.
func appendView(doc *gltf.Document, w *littleWriter, buf *bytes.Buffer, startLen uint32, data interface{}) uint32 {
	view := &gltf.BufferView{Buffer: 0, ByteOffset: uint32(buf.Len()) + startLen, Target: gltf.TargetArrayBuffer}
	w.write(data)
	view.ByteLength = uint32(buf.Len()) + startLen - view.ByteOffset
	id := uint32(len(doc.BufferViews))
	doc.BufferViews = append(doc.BufferViews, view)
	return id
}

func fillMaterials(doc *gltf.Document, mts []MeshMaterial) {
	for _, mtl := range mts {
		cl := mtl.GetColor()
		gm := &gltf.Material{DoubleSided: true, AlphaMode: gltf.AlphaOpaque}
		gm.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{float32(cl[0]) / 255, float32(cl[1]) / 255, float32(cl[2]) / 255, 1 - mtl.GetTransparency()},
		}
		if mtl.GetTransparency() > 0 {
			gm.AlphaMode = gltf.AlphaBlend
		}
		doc.Materials = append(doc.Materials, gm)
	}
}
