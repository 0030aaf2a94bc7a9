package meshing

import (
	"slices"
	"testing"
	"time"

	"VoxelMesh/shared/mapdata"
	"VoxelMesh/shared/util"
)

func collectResults(t *testing.T, m *ChunkMesher, n int) []Result {
	t.Helper()
	var out []Result
	timeout := time.After(5 * time.Second)
	for len(out) < n {
		select {
		case res := <-m.Results():
			out = append(out, res)
		case <-timeout:
			t.Fatalf("timeout: received %d of %d results", len(out), n)
		}
	}
	return out
}

func TestChunkMesherProcessesAll(t *testing.T) {
	m := NewChunkMesher(4, nil, NewResultStore())
	defer m.Stop()

	const n = 20
	for i := 0; i < n; i++ {
		m.Enqueue(Request{
			Pos:   util.NewChunkPos(i, 0, 0),
			Model: singleBlock(0, 0, 0, mapdata.KindTop, texA),
			MTime: 1,
		})
	}

	results := collectResults(t, m, n)
	SortResults(results)
	for i, res := range results {
		if res.Pos.X != i {
			t.Errorf("results[%d].Pos = %v", i, res.Pos)
		}
		if res.VertexCount() != 4 {
			t.Errorf("results[%d].VertexCount() = %d, want 4", i, res.VertexCount())
		}
	}
}

// idleMesher monta um mesher sem workers, para inspecionar a fila.
func idleMesher() *ChunkMesher {
	return &ChunkMesher{
		queue:   util.NewUniqueQueue[util.ChunkPos, Request](),
		wake:    make(chan struct{}, 1),
		results: make(chan Result, 1),
		stop:    make(chan struct{}),
	}
}

func TestChunkMesherDeduplicates(t *testing.T) {
	m := idleMesher()

	pos := util.NewChunkPos(3, 0, 0)
	if !m.Enqueue(Request{Pos: pos, MTime: 1}) {
		t.Error("first Enqueue should report a new position")
	}
	if m.Enqueue(Request{Pos: pos, MTime: 2}) {
		t.Error("second Enqueue for the same position should report an update")
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}

	_, req, _ := m.queue.Dequeue()
	if req.MTime != 2 {
		t.Errorf("queued MTime = %d, want the newest request (2)", req.MTime)
	}
}

func TestChunkMesherNonPositiveWorkers(t *testing.T) {
	for _, workers := range []int{0, -3} {
		m := NewChunkMesher(workers, nil, nil)
		m.Enqueue(Request{Pos: util.NewChunkPos(0, 0, 0), Model: singleBlock(0, 0, 0, mapdata.KindTop, texA), MTime: 1})
		res := collectResults(t, m, 1)[0]
		if res.VertexCount() != 4 {
			t.Errorf("workers=%d: VertexCount() = %d, want 4", workers, res.VertexCount())
		}
		m.Stop()
	}
}

func TestChunkMesherUsesCache(t *testing.T) {
	cache := NewResultStore()
	pos := util.NewChunkPos(0, 0, 0)
	cached := Result{Pos: pos, MTime: 7, Meshes: []Mesh{{Texture: texB}}}
	cache.Store(cached)

	m := NewChunkMesher(1, nil, cache)
	defer m.Stop()

	// Mesma versão: o cache vence, mesmo com outro modelo
	m.Enqueue(Request{Pos: pos, Model: singleBlock(0, 0, 0, mapdata.KindTop, texA), MTime: 7})
	res := collectResults(t, m, 1)[0]
	if len(res.Meshes) != 1 || res.Meshes[0].Texture != texB {
		t.Errorf("cache hit returned %+v", res.Meshes)
	}

	// Versão nova: gera de novo e atualiza o cache
	m.Enqueue(Request{Pos: pos, Model: singleBlock(0, 0, 0, mapdata.KindTop, texA), MTime: 8})
	res = collectResults(t, m, 1)[0]
	if len(res.Meshes) != 1 || res.Meshes[0].Texture != texA {
		t.Errorf("regenerated result = %+v", res.Meshes)
	}
	if _, ok := cache.Get(pos, 8); !ok {
		t.Error("new result should be stored in the cache")
	}
}

func TestChunkMesherEmptyChunk(t *testing.T) {
	m := NewChunkMesher(1, nil, nil)
	defer m.Stop()

	m.Enqueue(Request{Pos: util.NewChunkPos(0, 0, 0), Model: mapdata.NewChunkModel()})
	res := collectResults(t, m, 1)[0]
	if len(res.Meshes) != 0 {
		t.Errorf("empty chunk produced %d meshes", len(res.Meshes))
	}
}

func TestChunkMesherStop(t *testing.T) {
	m := NewChunkMesher(2, nil, nil)
	m.Stop()
	m.Stop()
	if m.Enqueue(Request{Pos: util.NewChunkPos(0, 0, 0)}) {
		t.Error("Enqueue after Stop should be rejected")
	}
}

func TestResultStoreClones(t *testing.T) {
	s := NewResultStore()
	pos := util.NewChunkPos(1, 2, 3)
	res := Result{Pos: pos, MTime: 1, Meshes: []Mesh{{Texture: texA, Geometry: GeometryData{Indices: []uint16{0, 1, 2}}}}}
	s.Store(res)

	res.Meshes[0].Geometry.Indices[0] = 99
	got, ok := s.Get(pos, 1)
	if !ok || got.Meshes[0].Geometry.Indices[0] != 0 {
		t.Errorf("stored result shares memory with the caller: %+v", got)
	}
	if _, ok := s.Get(pos, 2); ok {
		t.Error("Get with another MTime should miss")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear", s.Len())
	}
}

func TestMergeResultsMatchesDirectBuild(t *testing.T) {
	a := mapdata.NewChunkModel()
	a.Set(0, 0, 0, mapdata.NewBlock(mapdata.KindTopPx, texA))
	a.Set(1, 0, 0, mapdata.NewBlock(mapdata.KindNz, texB))
	b := mapdata.NewChunkModel()
	b.Set(4, 4, 4, mapdata.NewBlock(mapdata.KindBottom, texB))
	b.Set(5, 4, 4, mapdata.NewBlock(mapdata.KindPz, texA))

	entries := []chunkEntry{
		{util.NewChunkPos(0, 0, 0), a},
		{util.NewChunkPos(1, 0, 0), b},
	}
	direct := build(entries...)

	gen := &ChunkMesher{}
	results := []Result{
		gen.Generate(Request{Pos: entries[1].pos, Model: b}),
		gen.Generate(Request{Pos: entries[0].pos, Model: a}),
	}
	SortResults(results)
	merged := MergeResults(results, nil)

	if len(merged) != len(direct) {
		t.Fatalf("merged %d meshes, direct %d", len(merged), len(direct))
	}
	for i := range direct {
		if merged[i].Texture != direct[i].Texture {
			t.Errorf("mesh %d texture = %v, want %v", i, merged[i].Texture, direct[i].Texture)
		}
		dg, mg := direct[i].Geometry, merged[i].Geometry
		if !slices.Equal(dg.Vertices, mg.Vertices) || !slices.Equal(dg.Indices, mg.Indices) || !slices.Equal(dg.UVs, mg.UVs) {
			t.Errorf("mesh %d geometry differs from direct build", i)
		}
	}
}
