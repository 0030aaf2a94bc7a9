package meshing

import (
	"slices"
	"testing"

	"VoxelMesh/shared/util"
)

func TestMeshesSplitsAtMaxVertices(t *testing.T) {
	m := NewMeshes(nil)
	pos := util.NewBlockPos(0, 0, 0)
	for i := 0; i < MaxVertices/4; i++ {
		m.ExtendWith(pos, texA, FaceTop)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d after exactly MaxVertices, want 1", m.Len())
	}

	m.ExtendWith(pos, texB, FaceTop)
	m.ExtendWith(pos, texA, FaceTop)
	if m.Len() != 3 {
		t.Fatalf("Len() = %d after overflow, want 3", m.Len())
	}

	meshes := slices.Collect(m.All())
	if got := meshes[0].VertexCount(); got != MaxVertices {
		t.Errorf("first mesh VertexCount() = %d, want %d", got, MaxVertices)
	}
	if got := slices.Max(meshes[0].Geometry.Indices); got != MaxVertices-1 {
		t.Errorf("max index = %d, want %d", got, MaxVertices-1)
	}
	if meshes[1].Texture != texB || meshes[2].Texture != texA {
		t.Errorf("split mesh order = [%v %v], want [texB texA]", meshes[1].Texture, meshes[2].Texture)
	}
	if !slices.Equal(meshes[2].Geometry.Indices, []uint16{0, 1, 2, 0, 2, 3}) {
		t.Errorf("split mesh indices = %v, want to restart at 0", meshes[2].Geometry.Indices)
	}
}

func TestMeshesAppendGeometryOffsetsIndices(t *testing.T) {
	src := NewMeshes(nil)
	src.ExtendWith(util.NewBlockPos(0, 0, 0), texA, FacePx, FaceNx)
	part := slices.Collect(src.All())[0].Geometry

	m := NewMeshes(nil)
	m.AppendGeometry(texA, part)
	m.AppendGeometry(texA, part)
	m.AppendGeometry(texB, GeometryData{})

	meshes := slices.Collect(m.All())
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1 (empty geometry is ignored)", len(meshes))
	}
	idx := meshes[0].Geometry.Indices
	if len(idx) != 24 || idx[12] != 8 || idx[23] != 15 {
		t.Errorf("Indices = %v, want second copy offset by 8", idx)
	}
}

func TestMeshesAllResetsAccumulator(t *testing.T) {
	m := NewMeshes(nil)
	m.ExtendWith(util.NewBlockPos(0, 0, 0), texA, FaceTop)
	first := slices.Collect(m.All())

	if m.Len() != 0 {
		t.Errorf("Len() = %d after All, want 0", m.Len())
	}
	// O buffer volta ao pool; a malha entregue não pode ser afetada
	m.ExtendWith(util.NewBlockPos(5, 5, 5), texA, FaceTop)
	_ = slices.Collect(m.All())
	if got := first[0].Geometry.Position(0); got.X() != 0 {
		t.Errorf("emitted mesh changed after reuse: %v", got)
	}
}
