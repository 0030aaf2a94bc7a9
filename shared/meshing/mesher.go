package meshing

import (
	"log"
	"sync"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/mapdata"
	"VoxelMesh/shared/util"
)

// Request representa um pedido de meshing para um chunk.
type Request struct {
	Pos   util.ChunkPos
	Model *mapdata.ChunkModel
	MTime int64 // Versão dos dados no momento da requisição
}

// Result contém as malhas geradas para um chunk.
type Result struct {
	Pos    util.ChunkPos
	MTime  int64 // Versão dos dados processados
	Meshes []Mesh
}

// VertexCount soma os vértices de todas as malhas do resultado.
func (r Result) VertexCount() int {
	total := 0
	for _, m := range r.Meshes {
		total += m.VertexCount()
	}
	return total
}

// Clone realiza uma cópia profunda de um Result.
func (r Result) Clone() Result {
	clone := Result{Pos: r.Pos, MTime: r.MTime}
	if len(r.Meshes) > 0 {
		clone.Meshes = make([]Mesh, len(r.Meshes))
		for i, m := range r.Meshes {
			clone.Meshes[i] = m.Clone()
		}
	}
	return clone
}

// Mesher é a interface para geradores de malha.
type Mesher interface {
	Enqueue(req Request) bool
	Results() <-chan Result
	Stop()
}

// ChunkMesher distribui o meshing de chunks entre vários workers.
// Cada chunk é gerado com seu próprio acumulador; o consumidor junta os
// resultados com MergeResults.
type ChunkMesher struct {
	Atlas       *atlas.Atlas
	ResultStore *ResultStore

	queue    *util.UniqueQueue[util.ChunkPos, Request]
	wake     chan struct{}
	results  chan Result
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewChunkMesher cria e inicia um novo mesher. cache pode ser nil.
// Sempre inicia ao menos um worker.
func NewChunkMesher(workers int, atl *atlas.Atlas, cache *ResultStore) *ChunkMesher {
	workers = max(workers, 1)
	m := &ChunkMesher{
		Atlas:       atl,
		ResultStore: cache,
		queue:       util.NewUniqueQueue[util.ChunkPos, Request](),
		wake:        make(chan struct{}, workers),
		results:     make(chan Result, 256),
		stop:        make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}

	log.Printf("[Meshing] %d workers iniciados", workers)
	return m
}

// Enqueue agenda um chunk. Um pedido pendente para a mesma posição é
// substituído pelo novo. Retorna true se a posição entrou na fila agora.
func (m *ChunkMesher) Enqueue(req Request) bool {
	select {
	case <-m.stop:
		return false
	default:
	}

	added := m.queue.Enqueue(req.Pos, req)
	select {
	case m.wake <- struct{}{}:
	default:
		// Já existem workers acordados que vão esvaziar a fila
	}
	return added
}

// Pending retorna quantos chunks aguardam processamento.
func (m *ChunkMesher) Pending() int {
	return m.queue.Len()
}

func (m *ChunkMesher) Results() <-chan Result {
	return m.results
}

// Stop encerra os workers e aguarda sua saída. Pode ser chamado mais de uma vez.
func (m *ChunkMesher) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
	m.wg.Wait()
}

func (m *ChunkMesher) worker() {
	defer m.wg.Done()

	for {
		select {
		case <-m.stop:
			return
		case <-m.wake:
		}

		for {
			_, req, ok := m.queue.Dequeue()
			if !ok {
				break
			}
			res, ok := m.process(req)
			if !ok {
				continue
			}
			select {
			case m.results <- res:
			case <-m.stop:
				return
			}
		}
	}
}

// process gera (ou busca no cache) o resultado de um pedido.
// Um panic durante o meshing descarta apenas este pedido.
func (m *ChunkMesher) process(req Request) (res Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro no Mesher Worker em %v: %v", req.Pos, r)
			res, ok = Result{}, false
		}
	}()

	// 1. Verificar Cache antes de processar
	if m.ResultStore != nil {
		if cached, hit := m.ResultStore.Get(req.Pos, req.MTime); hit {
			return cached, true
		}
	}

	// 2. Gerar geometria se não estiver no cache
	res = m.Generate(req)

	// 3. Salvar no cache para uso futuro
	if m.ResultStore != nil {
		m.ResultStore.Store(res)
	}
	return res, true
}

// Generate transforma um único chunk em malhas por textura.
func (m *ChunkMesher) Generate(req Request) Result {
	res := Result{Pos: req.Pos, MTime: req.MTime}
	single := func(yield func(util.ChunkPos, *mapdata.ChunkModel) bool) {
		yield(req.Pos, req.Model)
	}
	for mesh := range BuildChunkMeshes(single, m.Atlas) {
		res.Meshes = append(res.Meshes, mesh)
	}
	return res
}
