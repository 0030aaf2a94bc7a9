// Package objexport grava malhas no formato Wavefront OBJ/MTL.
package objexport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/meshing"
)

// MaterialName retorna o nome do material de uma malha: o nome do tile no
// atlas quando conhecido, senão "tex_<i>".
func MaterialName(m meshing.Mesh, i int) string {
	if name, ok := m.Atlas.NameOf(m.Texture); ok {
		return name
	}
	return fmt.Sprintf("tex_%d", i)
}

// materialNames associa cada malha ao seu material. Malhas divididas da
// mesma textura compartilham o material.
func materialNames(meshes []meshing.Mesh) []string {
	names := make([]string, len(meshes))
	seen := make(map[atlas.UvTexture]string)
	for i, m := range meshes {
		name, ok := seen[m.Texture]
		if !ok {
			name = MaterialName(m, len(seen))
			seen[m.Texture] = name
		}
		names[i] = name
	}
	return names
}

// WriteOBJ grava as malhas em w. mtllib pode ser vazio.
// Índices de face são globais e começam em 1; V é invertido (OBJ usa origem embaixo).
func WriteOBJ(w io.Writer, meshes []meshing.Mesh, mtllib string) error {
	out := bufio.NewWriter(w)
	names := materialNames(meshes)

	if mtllib != "" {
		fmt.Fprintln(out, "mtllib", mtllib)
	}

	base := 1
	for i, m := range meshes {
		g := m.Geometry
		n := g.VertexCount()

		fmt.Fprintf(out, "o mesh_%d\n", i)
		fmt.Fprintln(out, "usemtl", names[i])
		for v := 0; v < n; v++ {
			p := g.Position(v)
			fmt.Fprintf(out, "v %g %g %g\n", p.X(), p.Y(), p.Z())
		}
		for v := 0; v < n; v++ {
			uv := g.UV(v)
			fmt.Fprintf(out, "vt %g %g\n", uv.X(), 1-uv.Y())
		}
		for v := 0; v < n; v++ {
			nn := g.Normal(v)
			fmt.Fprintf(out, "vn %g %g %g\n", nn.X(), nn.Y(), nn.Z())
		}
		for t := 0; t+2 < len(g.Indices); t += 3 {
			a := base + int(g.Indices[t])
			b := base + int(g.Indices[t+1])
			c := base + int(g.Indices[t+2])
			fmt.Fprintf(out, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		base += n
	}

	return out.Flush()
}

// Export grava <base>.obj e <base>.mtl.
func Export(base string, meshes []meshing.Mesh, atl *atlas.Atlas) error {
	objPath := base + ".obj"
	mtlPath := base + ".mtl"

	if err := writeFile(mtlPath, func(w io.Writer) error {
		return WriteMTL(w, meshes, atl, filepath.Dir(mtlPath))
	}); err != nil {
		return err
	}
	return writeFile(objPath, func(w io.Writer) error {
		return WriteOBJ(w, meshes, filepath.Base(mtlPath))
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("falha ao criar %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("falha ao gravar %s: %w", path, err)
	}
	return f.Close()
}
