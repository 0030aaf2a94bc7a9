package meshing

import (
	"sync"

	"VoxelMesh/shared/atlas"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxVertices é o limite de vértices endereçáveis por índices uint16.
const MaxVertices = 1 << 16

// White é a cor padrão dos vértices (a textura define a cor final).
var White = [4]uint8{255, 255, 255, 255}

// GeometryData contém os buffers de vértices para uma malha.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	UVs      []float32
	Indices  []uint16
}

// VertexCount retorna a quantidade de vértices.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna a quantidade de triângulos indexados.
func (g GeometryData) TriangleCount() int {
	return len(g.Indices) / 3
}

// Position retorna a posição do vértice i.
func (g GeometryData) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{g.Vertices[i*3], g.Vertices[i*3+1], g.Vertices[i*3+2]}
}

// UV retorna a coordenada de textura do vértice i.
func (g GeometryData) UV(i int) mgl32.Vec2 {
	return mgl32.Vec2{g.UVs[i*2], g.UVs[i*2+1]}
}

// Normal retorna a normal do vértice i.
func (g GeometryData) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2]}
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (g GeometryData) Clone() GeometryData {
	return GeometryData{
		Vertices: cloneSlice(g.Vertices),
		Normals:  cloneSlice(g.Normals),
		Colors:   cloneSlice(g.Colors),
		UVs:      cloneSlice(g.UVs),
		Indices:  cloneSlice(g.Indices),
	}
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Mesh é a saída do builder: a geometria de uma textura do atlas.
type Mesh struct {
	Texture  atlas.UvTexture
	Atlas    *atlas.Atlas // Atlas compartilhado por todas as malhas (pode ser nil)
	Geometry GeometryData
}

// VertexCount retorna a quantidade de vértices da malha.
func (m Mesh) VertexCount() int {
	return m.Geometry.VertexCount()
}

// Clone realiza uma cópia profunda da malha.
func (m Mesh) Clone() Mesh {
	return Mesh{Texture: m.Texture, Atlas: m.Atlas, Geometry: m.Geometry.Clone()}
}

// Pool global para reciclar MeshBuffers e evitar alocação excessiva (GC Pressure)
var meshBufferPool = sync.Pool{
	New: func() interface{} {
		return &MeshBuffer{
			Geometry: GeometryData{
				Vertices: make([]float32, 0, 4096),
				Normals:  make([]float32, 0, 4096),
				Colors:   make([]uint8, 0, 4096),
				UVs:      make([]float32, 0, 2048),
				Indices:  make([]uint16, 0, 2048),
			},
		}
	},
}

// GetMeshBuffer aloca ou recicla um buffer vazio para meshing.
func GetMeshBuffer() *MeshBuffer {
	return meshBufferPool.Get().(*MeshBuffer)
}

// PutMeshBuffer zera os buffers e devolve a memória para o Pool.
func PutMeshBuffer(b *MeshBuffer) {
	if b == nil {
		return
	}
	b.Geometry.Vertices = b.Geometry.Vertices[:0]
	b.Geometry.Normals = b.Geometry.Normals[:0]
	b.Geometry.Colors = b.Geometry.Colors[:0]
	b.Geometry.UVs = b.Geometry.UVs[:0]
	b.Geometry.Indices = b.Geometry.Indices[:0]
	meshBufferPool.Put(b)
}

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry GeometryData
}

// VertexCount retorna a quantidade de vértices já escritos.
func (b *MeshBuffer) VertexCount() int {
	return b.Geometry.VertexCount()
}

// AddQuad adiciona uma face retangular com 4 vértices e 2 triângulos (0,1,2) e (0,2,3).
func (b *MeshBuffer) AddQuad(v [4]Vertex, n mgl32.Vec3, c [4]uint8) {
	base := uint16(b.VertexCount())
	for _, vert := range v {
		b.addVertex(vert, n, c)
	}
	b.Geometry.Indices = append(b.Geometry.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func (b *MeshBuffer) addVertex(v Vertex, n mgl32.Vec3, c [4]uint8) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v.Position[0], v.Position[1], v.Position[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.Colors = append(b.Geometry.Colors, c[0], c[1], c[2], c[3])
	b.Geometry.UVs = append(b.Geometry.UVs, v.UV[0], v.UV[1])
}

// AppendGeometry concatena outra geometria, deslocando seus índices.
func (b *MeshBuffer) AppendGeometry(g GeometryData) {
	base := uint16(b.VertexCount())
	b.Geometry.Vertices = append(b.Geometry.Vertices, g.Vertices...)
	b.Geometry.Normals = append(b.Geometry.Normals, g.Normals...)
	b.Geometry.Colors = append(b.Geometry.Colors, g.Colors...)
	b.Geometry.UVs = append(b.Geometry.UVs, g.UVs...)
	for _, idx := range g.Indices {
		b.Geometry.Indices = append(b.Geometry.Indices, base+idx)
	}
}
