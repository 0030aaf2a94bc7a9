package meshing

import (
	"slices"
	"sort"

	"VoxelMesh/shared/atlas"
)

// MergeResults junta as malhas de vários chunks em malhas por textura.
// A ordem das texturas segue a primeira aparição na ordem dos resultados,
// então o merge de resultados ordenados equivale a um build direto.
func MergeResults(results []Result, atl *atlas.Atlas) []Mesh {
	meshes := NewMeshes(atl)
	for _, res := range results {
		for _, mesh := range res.Meshes {
			meshes.AppendGeometry(mesh.Texture, mesh.Geometry)
		}
	}
	return slices.Collect(meshes.All())
}

// SortResults ordena os resultados por posição do chunk (X, Y, Z).
func SortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool { return results[i].Pos.Less(results[j].Pos) })
}
