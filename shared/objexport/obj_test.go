package objexport

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/mapdata"
	"VoxelMesh/shared/meshing"
	"VoxelMesh/shared/util"
)

func testAtlas(t *testing.T) *atlas.Atlas {
	t.Helper()
	a, err := atlas.Parse([]byte("image: atlas.png\ncolumns: 2\nrows: 2\ntiles:\n  grass: 0\n"))
	if err != nil {
		t.Fatalf("atlas.Parse: %v", err)
	}
	return a
}

func buildMeshes(t *testing.T, atl *atlas.Atlas, blocks map[util.BlockPos]mapdata.BlockModel) []meshing.Mesh {
	t.Helper()
	store := mapdata.NewStore()
	model := mapdata.NewChunkModel()
	for p, b := range blocks {
		model.Set(p.X, p.Y, p.Z, b)
	}
	store.Put(util.NewChunkPos(1, 0, 0), model)
	return slices.Collect(meshing.BuildChunkMeshes(store.Chunks(), atl))
}

func TestWriteOBJSingleFace(t *testing.T) {
	atl := testAtlas(t)
	grass, _ := atl.Region("grass")
	meshes := buildMeshes(t, atl, map[util.BlockPos]mapdata.BlockModel{
		util.NewBlockPos(0, 0, 0): mapdata.NewBlock(mapdata.KindPx, grass),
	})

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, meshes, "scene.mtl"); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	want := strings.Join([]string{
		"mtllib scene.mtl",
		"o mesh_0",
		"usemtl grass",
		"v 17 0 0",
		"v 17 0 1",
		"v 17 1 1",
		"v 17 1 0",
		"vt 0 0.5",
		"vt 0.5 0.5",
		"vt 0.5 1",
		"vt 0 1",
		"vn 1 0 0",
		"vn 1 0 0",
		"vn 1 0 0",
		"vn 1 0 0",
		"f 1/1/1 2/2/2 3/3/3",
		"f 1/1/1 3/3/3 4/4/4",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteOBJ output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteOBJGlobalIndices(t *testing.T) {
	other := atlas.NewUvTexture(0.5, 0.5, 1, 1)
	meshes := buildMeshes(t, nil, map[util.BlockPos]mapdata.BlockModel{
		util.NewBlockPos(0, 0, 0): mapdata.NewBlock(mapdata.KindTop, atlas.FullTexture),
		util.NewBlockPos(0, 1, 0): mapdata.NewBlock(mapdata.KindTop, other),
	})
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2", len(meshes))
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, meshes, ""); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "mtllib") {
		t.Error("empty mtllib should not be written")
	}
	for _, line := range []string{"usemtl tex_0", "usemtl tex_1", "o mesh_1", "f 5/5/5 6/6/6 7/7/7"} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing %q", line)
		}
	}
}

func TestWriteMTL(t *testing.T) {
	atl := testAtlas(t)
	grass, _ := atl.Region("grass")
	meshes := []meshing.Mesh{
		{Texture: grass, Atlas: atl},
		{Texture: grass, Atlas: atl}, // malha dividida da mesma textura
		{Texture: atlas.NewUvTexture(0, 0, 0.25, 0.25), Atlas: atl},
	}

	var buf bytes.Buffer
	if err := WriteMTL(&buf, meshes, atl, ""); err != nil {
		t.Fatalf("WriteMTL: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, "newmtl "); n != 2 {
		t.Errorf("got %d materials, want 2:\n%s", n, out)
	}
	for _, line := range []string{"newmtl grass", "newmtl tex_1", "Kd 1 1 1", "map_Kd atlas.png"} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing %q", line)
		}
	}
}

func TestMaterialName(t *testing.T) {
	atl := testAtlas(t)
	grass, _ := atl.Region("grass")
	tests := []struct {
		mesh meshing.Mesh
		i    int
		want string
	}{
		{meshing.Mesh{Texture: grass, Atlas: atl}, 3, "grass"},
		{meshing.Mesh{Texture: grass}, 3, "tex_3"},
		{meshing.Mesh{Texture: atlas.FullTexture, Atlas: atl}, 0, "tex_0"},
	}
	for _, tt := range tests {
		if got := MaterialName(tt.mesh, tt.i); got != tt.want {
			t.Errorf("MaterialName(%v, %d) = %q, want %q", tt.mesh.Texture, tt.i, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	meshes := buildMeshes(t, nil, map[util.BlockPos]mapdata.BlockModel{
		util.NewBlockPos(0, 0, 0): mapdata.NewBlock(mapdata.KindNz, atlas.FullTexture),
	})
	base := filepath.Join(t.TempDir(), "out")
	if err := Export(base, meshes, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	obj, err := os.ReadFile(base + ".obj")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(obj), "mtllib out.mtl\n") {
		t.Errorf("obj header = %q", strings.SplitN(string(obj), "\n", 2)[0])
	}
	if _, err := os.Stat(base + ".mtl"); err != nil {
		t.Errorf("mtl file not written: %v", err)
	}
}

func TestExportImageRelativeToMTL(t *testing.T) {
	root := t.TempDir()
	atl, err := atlas.New(filepath.Join(root, "assets", "atlas.png"), 0, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	meshes := []meshing.Mesh{{Texture: atlas.FullTexture, Atlas: atl}}

	tests := []struct {
		name string
		base string
		want string
	}{
		{"beside atlas", filepath.Join(root, "assets", "out"), "map_Kd atlas.png"},
		{"sibling dir", filepath.Join(root, "build", "out"), "map_Kd ../assets/atlas.png"},
		{"parent dir", filepath.Join(root, "out"), "map_Kd assets/atlas.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.MkdirAll(filepath.Dir(tt.base), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := Export(tt.base, meshes, atl); err != nil {
				t.Fatalf("Export: %v", err)
			}
			mtl, err := os.ReadFile(tt.base + ".mtl")
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(mtl), tt.want+"\n") {
				t.Errorf("mtl missing %q:\n%s", tt.want, mtl)
			}
		})
	}
}
