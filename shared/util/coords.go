package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkSize é a aresta de um chunk em blocos (16x16x16).
const ChunkSize = 16

// ChunkPos identifica a célula de um chunk na grade do mundo.
type ChunkPos struct {
	X, Y, Z int
}

// BlockPos representa a posição de um bloco em unidades de mundo.
type BlockPos struct {
	X, Y, Z int
}

// NewChunkPos cria uma nova coordenada de chunk.
func NewChunkPos(x, y, z int) ChunkPos {
	return ChunkPos{X: x, Y: y, Z: z}
}

// NewBlockPos cria uma nova coordenada de bloco.
func NewBlockPos(x, y, z int) BlockPos {
	return BlockPos{X: x, Y: y, Z: z}
}

// BlockPos retorna a origem do chunk no mundo (coordenada x 16 em cada eixo).
func (c ChunkPos) BlockPos() BlockPos {
	return BlockPos{
		X: c.X * ChunkSize,
		Y: c.Y * ChunkSize,
		Z: c.Z * ChunkSize,
	}
}

// Less define a ordem (X, Y, Z) usada para iterações determinísticas.
func (c ChunkPos) Less(other ChunkPos) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.Z < other.Z
}

// String retorna a representação em string da coordenada.
func (c ChunkPos) String() string {
	return fmt.Sprintf("chunk(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Add soma duas coordenadas.
func (b BlockPos) Add(other BlockPos) BlockPos {
	return BlockPos{
		X: b.X + other.X,
		Y: b.Y + other.Y,
		Z: b.Z + other.Z,
	}
}

// Offset desloca a posição pelos valores locais informados.
func (b BlockPos) Offset(x, y, z int) BlockPos {
	return BlockPos{X: b.X + x, Y: b.Y + y, Z: b.Z + z}
}

// ChunkPos retorna o chunk que contém este bloco (divisão com arredondamento para baixo).
func (b BlockPos) ChunkPos() ChunkPos {
	return ChunkPos{
		X: floorDiv(b.X, ChunkSize),
		Y: floorDiv(b.Y, ChunkSize),
		Z: floorDiv(b.Z, ChunkSize),
	}
}

// Local retorna a posição dentro do chunk, sempre em [0, 16).
func (b BlockPos) Local() BlockPos {
	return b.Add(negate(b.ChunkPos().BlockPos()))
}

// Vec3 converte a posição para um vetor float32 usado pela geometria.
func (b BlockPos) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(b.X), float32(b.Y), float32(b.Z)}
}

// String retorna a representação em string da coordenada.
func (b BlockPos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", b.X, b.Y, b.Z)
}

func negate(b BlockPos) BlockPos {
	return BlockPos{X: -b.X, Y: -b.Y, Z: -b.Z}
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}
	return q
}
