package objexport

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/meshing"
)

// WriteMTL grava um material por nome distinto, na ordem de aparição.
// Com atlas, todos os materiais apontam para a imagem do atlas; dir é o
// diretório onde o .mtl fica e o caminho da imagem é escrito relativo a ele.
// dir vazio mantém o caminho como está.
func WriteMTL(w io.Writer, meshes []meshing.Mesh, atl *atlas.Atlas, dir string) error {
	out := bufio.NewWriter(w)

	var image string
	if atl != nil && atl.Image != "" {
		image = imageRef(atl.Image, dir)
	}

	written := make(map[string]bool)
	for i, name := range materialNames(meshes) {
		if written[name] {
			continue
		}
		written[name] = true

		fmt.Fprintf(out, "# %s\n", meshes[i].Texture)
		fmt.Fprintf(out, "newmtl %s\nKd 1 1 1\nd 1\nillum 1\n", name)
		if image != "" {
			fmt.Fprintln(out, "map_Kd", image)
		}
		fmt.Fprintln(out)
	}

	return out.Flush()
}

// imageRef expressa image relativo a dir. Se não houver caminho relativo
// (ex: volumes diferentes), usa o absoluto.
func imageRef(image, dir string) string {
	if dir == "" {
		return image
	}
	absImage, err := filepath.Abs(image)
	if err != nil {
		return image
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return absImage
	}
	rel, err := filepath.Rel(absDir, absImage)
	if err != nil {
		return filepath.ToSlash(absImage)
	}
	return filepath.ToSlash(rel)
}
