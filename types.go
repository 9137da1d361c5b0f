package meshgen

import "errors"

const MESH_SIGNATURE string = "fwtm"
const MSTEXT string = ".mst"
const V5 uint32 = 5

const (
	SHAPE_CONE_RING   = "cone_ring"
	SHAPE_HALF_RING   = "half_ring"
	SHAPE_RING        = "ring"
	SHAPE_LOFTED_CONE = "lofted_cone"
)

const (
	DEFAULT_SIDES        = 32
	DEFAULT_INNER_RADIUS = 0.3
	DEFAULT_OUTER_RADIUS = 1
	DEFAULT_HEIGHT       = 0.3
)

const (
	MIN_SIDES = 3
	MAX_SIDES = 4096
	MIN_ANGLE = 0
	MAX_ANGLE = 360
)

var ErrInvalidParameter = errors.New("invalid parameter")

// Face 三角面
type Face struct {
	Vertex [3]uint32
}

// MeshTriangle 网格三角形
type MeshTriangle struct {
	Batchid int32   `json:"batchid"`
	Faces   []*Face `json:"faces"`
}
