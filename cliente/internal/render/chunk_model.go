package render

import (
	"VoxelMesh/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ChunkModel representa a geometria renderizável de um chunk.
type ChunkModel struct {
	Pos      util.ChunkPos
	Models   []rl.Model // Um modelo por malha (textura) do chunk
	MTime    int64      // Versão dos dados (para cache)
	Vertices int
}

func (cm *ChunkModel) unload() {
	for _, m := range cm.Models {
		rl.UnloadModel(m)
	}
	cm.Models = nil
}
