package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/mapdata"
	"VoxelMesh/shared/meshing"
)

// buildMeshes gera as malhas da cena. Com workers > 0 cada chunk é gerado
// num ChunkMesher e os resultados são ordenados e juntados; a saída é a
// mesma do build sequencial.
func buildMeshes(store *mapdata.Store, atl *atlas.Atlas, workers int, keepEmpty bool) []meshing.Mesh {
	chunks := store.Chunks()
	if !keepEmpty {
		chunks = mapdata.NonEmpty(chunks)
	}
	if workers <= 0 {
		return slices.Collect(meshing.BuildChunkMeshes(chunks, atl))
	}

	m := meshing.NewChunkMesher(workers, atl, nil)
	defer m.Stop()

	n := 0
	for pos, model := range chunks {
		// Mesmo corte do build sequencial
		if model == nil || model.IsEmpty() {
			break
		}
		m.Enqueue(meshing.Request{Pos: pos, Model: model})
		n++
	}

	results := make([]meshing.Result, 0, n)
	for len(results) < n {
		results = append(results, <-m.Results())
	}
	meshing.SortResults(results)
	return meshing.MergeResults(results, atl)
}

// compressScene grava uma cópia zstd do arquivo de cena em dst.
func compressScene(src, dst string) error {
	if strings.HasSuffix(src, ".zst") {
		return fmt.Errorf("cena %s já está comprimida", src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("falha ao ler cena: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("falha ao criar %s: %w", dst, err)
	}
	if err := mapdata.CompressScene(f, data); err != nil {
		f.Close()
		return fmt.Errorf("falha ao comprimir %s: %w", dst, err)
	}
	return f.Close()
}
