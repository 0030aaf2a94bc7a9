package meshing

import (
	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex é um canto de face: posição no mundo e coordenada no atlas.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Face identifica uma das 6 faces de um cubo.
type Face uint8

const (
	FaceTop    Face = iota // +Y
	FaceBottom             // -Y
	FacePx                 // +X
	FaceNx                 // -X
	FacePz                 // +Z
	FaceNz                 // -Z
)

var faceNames = [...]string{"top", "bottom", "px", "nx", "pz", "nz"}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "face?"
}

var faceNormals = [...]mgl32.Vec3{
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
	FacePx:     {1, 0, 0},
	FaceNx:     {-1, 0, 0},
	FacePz:     {0, 0, 1},
	FaceNz:     {0, 0, -1},
}

// Normal retorna a normal unitária da face.
func (f Face) Normal() mgl32.Vec3 {
	return faceNormals[f]
}

type faceTemplate func(pos util.BlockPos, tex atlas.UvTexture) [4]Vertex

var faceTemplates = [...]faceTemplate{
	FaceTop:    topVert,
	FaceBottom: bottomVert,
	FacePx:     pxVert,
	FaceNx:     nxVert,
	FacePz:     pzVert,
	FaceNz:     nzVert,
}

// Vertices retorna os 4 cantos da face do bloco em pos.
func (f Face) Vertices(pos util.BlockPos, tex atlas.UvTexture) [4]Vertex {
	return faceTemplates[f](pos, tex)
}

func vertex(p mgl32.Vec3, dx, dy, dz float32, uv mgl32.Vec2) Vertex {
	return Vertex{Position: mgl32.Vec3{p[0] + dx, p[1] + dy, p[2] + dz}, UV: uv}
}

// Top e Bottom repetem LowRight no 4º canto, não UpLeft.
func topVert(pos util.BlockPos, tex atlas.UvTexture) [4]Vertex {
	p := pos.Vec3()
	return [4]Vertex{
		vertex(p, 0, 1, 0, tex.LowLeft()),
		vertex(p, 1, 1, 0, tex.LowRight()),
		vertex(p, 1, 1, 1, tex.UpRight()),
		vertex(p, 0, 1, 1, tex.LowRight()),
	}
}

func bottomVert(pos util.BlockPos, tex atlas.UvTexture) [4]Vertex {
	p := pos.Vec3()
	return [4]Vertex{
		vertex(p, 0, 0, 0, tex.LowLeft()),
		vertex(p, 1, 0, 0, tex.LowRight()),
		vertex(p, 1, 0, 1, tex.UpRight()),
		vertex(p, 0, 0, 1, tex.LowRight()),
	}
}

func pxVert(pos util.BlockPos, tex atlas.UvTexture) [4]Vertex {
	p := pos.Vec3()
	return [4]Vertex{
		vertex(p, 1, 0, 0, tex.LowLeft()),
		vertex(p, 1, 0, 1, tex.LowRight()),
		vertex(p, 1, 1, 1, tex.UpRight()),
		vertex(p, 1, 1, 0, tex.UpLeft()),
	}
}

func nxVert(pos util.BlockPos, tex atlas.UvTexture) [4]Vertex {
	p := pos.Vec3()
	return [4]Vertex{
		vertex(p, 0, 0, 0, tex.LowRight()),
		vertex(p, 0, 0, 1, tex.LowLeft()),
		vertex(p, 0, 1, 1, tex.UpLeft()),
		vertex(p, 0, 1, 0, tex.UpRight()),
	}
}

func pzVert(pos util.BlockPos, tex atlas.UvTexture) [4]Vertex {
	p := pos.Vec3()
	return [4]Vertex{
		vertex(p, 0, 0, 1, tex.LowRight()),
		vertex(p, 1, 0, 1, tex.LowLeft()),
		vertex(p, 1, 1, 1, tex.UpLeft()),
		vertex(p, 0, 1, 1, tex.UpRight()),
	}
}

func nzVert(pos util.BlockPos, tex atlas.UvTexture) [4]Vertex {
	p := pos.Vec3()
	return [4]Vertex{
		vertex(p, 0, 0, 0, tex.LowRight()),
		vertex(p, 1, 0, 0, tex.LowLeft()),
		vertex(p, 1, 1, 0, tex.UpLeft()),
		vertex(p, 0, 1, 0, tex.UpRight()),
	}
}
