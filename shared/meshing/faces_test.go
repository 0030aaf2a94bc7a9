package meshing

import (
	"testing"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFaceTemplates(t *testing.T) {
	tex := atlas.NewUvTexture(0.25, 0.5, 0.5, 0.75)
	ll, lr, ul, ur := tex.LowLeft(), tex.LowRight(), tex.UpLeft(), tex.UpRight()

	tests := []struct {
		face    Face
		offsets [4]mgl32.Vec3
		uvs     [4]mgl32.Vec2
	}{
		{FaceTop, [4]mgl32.Vec3{{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}}, [4]mgl32.Vec2{ll, lr, ur, lr}},
		{FaceBottom, [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, [4]mgl32.Vec2{ll, lr, ur, lr}},
		{FacePx, [4]mgl32.Vec3{{1, 0, 0}, {1, 0, 1}, {1, 1, 1}, {1, 1, 0}}, [4]mgl32.Vec2{ll, lr, ur, ul}},
		{FaceNx, [4]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, [4]mgl32.Vec2{lr, ll, ul, ur}},
		{FacePz, [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, [4]mgl32.Vec2{lr, ll, ul, ur}},
		{FaceNz, [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, [4]mgl32.Vec2{lr, ll, ul, ur}},
	}

	pos := util.NewBlockPos(-3, 10, 7)
	base := pos.Vec3()
	for _, tt := range tests {
		verts := tt.face.Vertices(pos, tex)
		for i, v := range verts {
			if want := base.Add(tt.offsets[i]); v.Position != want {
				t.Errorf("%v corner %d position = %v, want %v", tt.face, i, v.Position, want)
			}
			if v.UV != tt.uvs[i] {
				t.Errorf("%v corner %d uv = %v, want %v", tt.face, i, v.UV, tt.uvs[i])
			}
		}
	}
}

func TestFaceNormalsAreUnitAxes(t *testing.T) {
	for f := FaceTop; f <= FaceNz; f++ {
		n := f.Normal()
		if n.Len() != 1 {
			t.Errorf("%v normal %v is not unit length", f, n)
		}
		verts := f.Vertices(util.NewBlockPos(0, 0, 0), atlas.FullTexture)
		// Todos os cantos ficam no plano perpendicular à normal
		d := verts[0].Position.Dot(n)
		for i, v := range verts {
			if v.Position.Dot(n) != d {
				t.Errorf("%v corner %d is off the face plane", f, i)
			}
		}
	}
}
