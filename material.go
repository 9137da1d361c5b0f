package meshgen

const (
	MESH_TRIANGLE_MATERIAL_TYPE_COLOR = 0
)

// MeshMaterial 材质接口
type MeshMaterial interface {
	GetColor() [3]byte
	GetTransparency() float32
}

// BaseMaterial 基础材质. Generated meshes carry a single one so that exported
// files render without further setup.
type BaseMaterial struct {
	Color        [3]byte `json:"color"`
	Transparency float32 `json:"transparency"`
}

func DefaultMaterial() *BaseMaterial {
	return &BaseMaterial{Color: [3]byte{255, 255, 255}}
}

func (m *BaseMaterial) GetColor() [3]byte {
	return m.Color
}

func (m *BaseMaterial) GetTransparency() float32 {
	return m.Transparency
}
