package mapdata

import "VoxelMesh/shared/util"

const chunkVolume = util.ChunkSize * util.ChunkSize * util.ChunkSize

// ChunkModel é a grade 16x16x16 de modelos de bloco de um chunk.
type ChunkModel struct {
	blocks [chunkVolume]BlockModel
	filled int // Quantidade de células diferentes de Empty
}

// NewChunkModel cria um chunk vazio.
func NewChunkModel() *ChunkModel {
	return &ChunkModel{}
}

func index(x, y, z int) int {
	return (y*util.ChunkSize+x)*util.ChunkSize + z
}

// Get retorna o bloco na posição local. Fora da grade retorna Empty.
func (c *ChunkModel) Get(x, y, z int) BlockModel {
	if !util.InChunk(x, y, z) {
		return Empty
	}
	return c.blocks[index(x, y, z)]
}

// Set grava um bloco na posição local. Fora da grade é ignorado.
func (c *ChunkModel) Set(x, y, z int, b BlockModel) {
	if !util.InChunk(x, y, z) {
		return
	}
	i := index(x, y, z)
	wasEmpty := c.blocks[i].Kind.IsEmpty()
	c.blocks[i] = b
	switch {
	case wasEmpty && !b.Kind.IsEmpty():
		c.filled++
	case !wasEmpty && b.Kind.IsEmpty():
		c.filled--
	}
}

// Fill preenche a caixa [from, to] (inclusiva, coordenadas locais) com o bloco.
// A caixa é recortada à grade do chunk.
func (c *ChunkModel) Fill(from, to util.BlockPos, b BlockModel) {
	x0, x1 := span(from.X, to.X)
	y0, y1 := span(from.Y, to.Y)
	z0, z1 := span(from.Z, to.Z)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for z := z0; z <= z1; z++ {
				c.Set(x, y, z, b)
			}
		}
	}
}

// IsEmpty indica que o chunk não possui nenhum bloco.
func (c *ChunkModel) IsEmpty() bool {
	return c.filled == 0
}

// Count retorna a quantidade de blocos não vazios.
func (c *ChunkModel) Count() int {
	return c.filled
}

// Clone cria uma cópia independente do chunk.
func (c *ChunkModel) Clone() *ChunkModel {
	clone := *c
	return &clone
}

// span ordena o intervalo [a, b] e o recorta a [0, ChunkSize).
// Um intervalo todo fora da grade fica vazio (lo > hi).
func span(a, b int) (int, int) {
	if a > b {
		a, b = b, a
	}
	return max(a, 0), min(b, util.ChunkSize-1)
}
