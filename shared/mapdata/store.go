package mapdata

import (
	"iter"
	"sort"
	"sync"

	"VoxelMesh/shared/util"
)

// Chunk é uma entrada do repositório: o modelo do chunk e sua versão.
type Chunk struct {
	Pos   util.ChunkPos
	Model *ChunkModel
	MTime int64 // Contador de modificações / versão
}

// Store guarda os chunks do mundo em memória.
// Não há persistência: é apenas a fonte de chunks para o mesher.
type Store struct {
	mu     sync.RWMutex
	chunks map[util.ChunkPos]*Chunk
	clock  int64
}

// NewStore cria um novo repositório vazio.
func NewStore() *Store {
	return &Store{
		chunks: make(map[util.ChunkPos]*Chunk),
	}
}

// Put grava (ou substitui) um chunk e retorna sua nova versão.
func (s *Store) Put(pos util.ChunkPos, model *ChunkModel) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock++
	s.chunks[pos] = &Chunk{Pos: pos, Model: model, MTime: s.clock}
	return s.clock
}

// Touch incrementa a versão de um chunk existente, forçando novo meshing.
func (s *Store) Touch(pos util.ChunkPos) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chunks[pos]
	if !ok {
		return 0, false
	}
	s.clock++
	c.MTime = s.clock
	return c.MTime, true
}

// Get retorna um chunk de forma segura (thread-safe).
func (s *Store) Get(pos util.ChunkPos) (Chunk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.chunks[pos]
	if !ok {
		return Chunk{}, false
	}
	return *c, true
}

// Remove apaga um chunk do repositório.
func (s *Store) Remove(pos util.ChunkPos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chunks, pos)
}

// Len retorna a quantidade de chunks guardados.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Entries retorna uma cópia das entradas ordenadas por posição (X, Y, Z).
func (s *Store) Entries() []Chunk {
	s.mu.RLock()
	out := make([]Chunk, 0, len(s.chunks))
	for _, c := range s.chunks {
		out = append(out, *c)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Pos.Less(out[j].Pos) })
	return out
}

// Chunks itera os pares (posição, modelo) em ordem determinística.
// A iteração usa um snapshot, então o repositório pode ser alterado durante o laço.
func (s *Store) Chunks() iter.Seq2[util.ChunkPos, *ChunkModel] {
	entries := s.Entries()
	return func(yield func(util.ChunkPos, *ChunkModel) bool) {
		for _, c := range entries {
			if !yield(c.Pos, c.Model) {
				return
			}
		}
	}
}

// NonEmpty filtra chunks vazios de uma sequência.
func NonEmpty(seq iter.Seq2[util.ChunkPos, *ChunkModel]) iter.Seq2[util.ChunkPos, *ChunkModel] {
	return func(yield func(util.ChunkPos, *ChunkModel) bool) {
		for pos, model := range seq {
			if model == nil || model.IsEmpty() {
				continue
			}
			if !yield(pos, model) {
				return
			}
		}
	}
}
