package mapdata

import (
	"fmt"

	"VoxelMesh/shared/atlas"
)

// Kind identifica quais faces de cubo um bloco expõe.
type Kind uint8

const (
	KindEmpty   Kind = iota // Ar
	KindNonCube             // Modelos especiais, ignorados pelo mesher de cubos

	KindTop
	KindBottom
	KindPx
	KindNx
	KindPz
	KindNz

	KindTopPx
	KindTopNx
	KindTopPz
	KindTopNz
	KindBottomPx
	KindBottomNx
	KindBottomPz
	KindBottomNz
	KindPxPz
	KindPxNz
	KindNxPz
	KindNxNz

	// Combinações declaradas mas ainda sem geometria: o mesher as ignora.
	KindTopBottom
	KindPxNx
	KindPzNz
	KindTopPxPz
	KindTopPxNz
	KindTopNxPz
	KindTopNxNz
	KindBottomPxPz
	KindBottomPxNz
	KindBottomNxPz
	KindBottomNxNz
	KindDoubleSided

	kindCount
)

var kindNames = [kindCount]string{
	KindEmpty:       "empty",
	KindNonCube:     "non_cube",
	KindTop:         "top",
	KindBottom:      "bottom",
	KindPx:          "px",
	KindNx:          "nx",
	KindPz:          "pz",
	KindNz:          "nz",
	KindTopPx:       "top_px",
	KindTopNx:       "top_nx",
	KindTopPz:       "top_pz",
	KindTopNz:       "top_nz",
	KindBottomPx:    "bottom_px",
	KindBottomNx:    "bottom_nx",
	KindBottomPz:    "bottom_pz",
	KindBottomNz:    "bottom_nz",
	KindPxPz:        "px_pz",
	KindPxNz:        "px_nz",
	KindNxPz:        "nx_pz",
	KindNxNz:        "nx_nz",
	KindTopBottom:   "top_bottom",
	KindPxNx:        "px_nx",
	KindPzNz:        "pz_nz",
	KindTopPxPz:     "top_px_pz",
	KindTopPxNz:     "top_px_nz",
	KindTopNxPz:     "top_nx_pz",
	KindTopNxNz:     "top_nx_nz",
	KindBottomPxPz:  "bottom_px_pz",
	KindBottomPxNz:  "bottom_px_nz",
	KindBottomNxPz:  "bottom_nx_pz",
	KindBottomNxNz:  "bottom_nx_nz",
	KindDoubleSided: "double_sided",
}

// String retorna o nome snake_case usado nos arquivos de cena.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind converte um nome snake_case para Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindEmpty, fmt.Errorf("modelo de bloco desconhecido: %q", name)
}

// IsEmpty indica ar.
func (k Kind) IsEmpty() bool {
	return k == KindEmpty
}

// BlockModel descreve as faces visíveis de um bloco e a textura que elas usam.
type BlockModel struct {
	Kind    Kind
	Texture atlas.UvTexture
}

// Empty é o bloco de ar.
var Empty = BlockModel{}

// NonCube marca um bloco que não é desenhado como cubo.
var NonCube = BlockModel{Kind: KindNonCube}

// NewBlock cria um modelo de bloco.
func NewBlock(kind Kind, texture atlas.UvTexture) BlockModel {
	return BlockModel{Kind: kind, Texture: texture}
}
