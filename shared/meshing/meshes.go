package meshing

import (
	"iter"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/util"
)

type meshEntry struct {
	texture atlas.UvTexture
	buf     *MeshBuffer
}

// Meshes acumula geometria por textura durante um build.
// A ordem de saída é a ordem em que cada textura apareceu pela primeira vez.
// Não é thread-safe: cada build possui o seu.
type Meshes struct {
	atlas   *atlas.Atlas
	entries []*meshEntry
	current map[atlas.UvTexture]*meshEntry // Malha ativa de cada textura
}

// NewMeshes cria um acumulador vazio ligado ao atlas (que pode ser nil).
func NewMeshes(atl *atlas.Atlas) *Meshes {
	return &Meshes{
		atlas:   atl,
		current: make(map[atlas.UvTexture]*meshEntry),
	}
}

// Len retorna quantas malhas serão emitidas.
func (m *Meshes) Len() int {
	return len(m.entries)
}

// bufferFor retorna o buffer da textura com espaço para n vértices,
// abrindo uma nova malha quando os índices uint16 estourariam.
func (m *Meshes) bufferFor(tex atlas.UvTexture, n int) *MeshBuffer {
	e, ok := m.current[tex]
	if ok && e.buf.VertexCount()+n <= MaxVertices {
		return e.buf
	}
	e = &meshEntry{texture: tex, buf: GetMeshBuffer()}
	m.entries = append(m.entries, e)
	m.current[tex] = e
	return e.buf
}

// ExtendWith adiciona as faces do bloco em pos à malha da textura.
func (m *Meshes) ExtendWith(pos util.BlockPos, tex atlas.UvTexture, faces ...Face) {
	for _, f := range faces {
		buf := m.bufferFor(tex, 4)
		buf.AddQuad(f.Vertices(pos, tex), f.Normal(), White)
	}
}

// AppendGeometry concatena uma geometria pronta (ex: resultado de outro chunk).
// A geometria precisa caber em índices uint16.
func (m *Meshes) AppendGeometry(tex atlas.UvTexture, g GeometryData) {
	n := g.VertexCount()
	if n == 0 {
		return
	}
	m.bufferFor(tex, n).AppendGeometry(g)
}

// All esvazia o acumulador e retorna a sequência de malhas.
// A sequência só pode ser percorrida uma vez.
func (m *Meshes) All() iter.Seq[Mesh] {
	out := m.flush()
	return func(yield func(Mesh) bool) {
		items := out
		out = nil
		for _, mesh := range items {
			if !yield(mesh) {
				return
			}
		}
	}
}

func (m *Meshes) flush() []Mesh {
	out := make([]Mesh, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, Mesh{
			Texture:  e.texture,
			Atlas:    m.atlas,
			Geometry: e.buf.Geometry.Clone(),
		})
		PutMeshBuffer(e.buf)
	}
	m.entries = nil
	m.current = make(map[atlas.UvTexture]*meshEntry)
	return out
}
