package meshing

import (
	"iter"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/mapdata"
	"VoxelMesh/shared/util"
)

// BuildChunkMeshes gera as malhas de todos os chunks, agrupadas por textura.
//
// Toda a geometria é calculada antes do retorno; a sequência devolvida só
// entrega as malhas prontas e pode ser percorrida uma única vez.
//
// O primeiro chunk vazio (ou nil) encerra o build: os chunks seguintes não
// são lidos. Quem precisa processar tudo deve filtrar antes com
// mapdata.NonEmpty.
func BuildChunkMeshes(chunks iter.Seq2[util.ChunkPos, *mapdata.ChunkModel], atl *atlas.Atlas) iter.Seq[Mesh] {
	meshes := NewMeshes(atl)

	for pos, model := range chunks {
		if model == nil || model.IsEmpty() {
			break
		}
		buildChunk(meshes, pos, model)
	}

	return meshes.All()
}

func buildChunk(meshes *Meshes, pos util.ChunkPos, model *mapdata.ChunkModel) {
	origin := pos.BlockPos()
	for y := 0; y < util.ChunkSize; y++ {
		for x := 0; x < util.ChunkSize; x++ {
			for z := 0; z < util.ChunkSize; z++ {
				processBlockModel(meshes, origin.Offset(x, y, z), model.Get(x, y, z))
			}
		}
	}
}

func processBlockModel(meshes *Meshes, pos util.BlockPos, b mapdata.BlockModel) {
	tex := b.Texture
	switch b.Kind {
	case mapdata.KindTop:
		meshes.ExtendWith(pos, tex, FaceTop)
	case mapdata.KindBottom:
		meshes.ExtendWith(pos, tex, FaceBottom)
	case mapdata.KindPx:
		meshes.ExtendWith(pos, tex, FacePx)
	case mapdata.KindNx:
		meshes.ExtendWith(pos, tex, FaceNx)
	case mapdata.KindPz:
		meshes.ExtendWith(pos, tex, FacePz)
	case mapdata.KindNz:
		meshes.ExtendWith(pos, tex, FaceNz)

	case mapdata.KindTopPx:
		meshes.ExtendWith(pos, tex, FaceTop, FacePx)
	case mapdata.KindTopNx:
		meshes.ExtendWith(pos, tex, FaceTop, FaceNx)
	case mapdata.KindTopPz:
		meshes.ExtendWith(pos, tex, FaceTop, FacePz)
	case mapdata.KindTopNz:
		meshes.ExtendWith(pos, tex, FaceTop, FaceNz)

	case mapdata.KindBottomPx:
		meshes.ExtendWith(pos, tex, FaceBottom, FacePx)
	case mapdata.KindBottomNx:
		meshes.ExtendWith(pos, tex, FaceBottom, FaceNx)
	case mapdata.KindBottomPz:
		meshes.ExtendWith(pos, tex, FaceBottom, FacePz)
	case mapdata.KindBottomNz:
		meshes.ExtendWith(pos, tex, FaceBottom, FaceNz)

	case mapdata.KindPxPz:
		meshes.ExtendWith(pos, tex, FacePx, FacePz)
	case mapdata.KindPxNz:
		meshes.ExtendWith(pos, tex, FacePx, FaceNz)
	case mapdata.KindNxPz:
		meshes.ExtendWith(pos, tex, FaceNx, FacePz)
	case mapdata.KindNxNz:
		meshes.ExtendWith(pos, tex, FaceNx, FaceNz)

	default:
		// Empty, NonCube e combinações sem geometria não geram nada
	}
}
