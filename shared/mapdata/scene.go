package mapdata

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/util"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// SceneFile é o root de um arquivo de cena (ex: scenes/demo.yaml).
type SceneFile struct {
	Atlas  string       `yaml:"atlas,omitempty"` // Descritor de atlas, relativo ao arquivo da cena
	Chunks []SceneChunk `yaml:"chunks"`
}

// SceneChunk define um chunk da cena.
type SceneChunk struct {
	Pos    []int        `yaml:"pos"`
	Fill   []SceneFill  `yaml:"fill,omitempty"`
	Blocks []SceneBlock `yaml:"blocks,omitempty"`
}

// SceneFill preenche uma caixa (inclusiva) de coordenadas locais.
type SceneFill struct {
	From    []int     `yaml:"from"`
	To      []int     `yaml:"to"`
	Model   string    `yaml:"model"`
	Texture string    `yaml:"texture,omitempty"`
	UV      []float32 `yaml:"uv,omitempty"`
}

// SceneBlock define um único bloco em coordenadas locais.
type SceneBlock struct {
	At      []int     `yaml:"at"`
	Model   string    `yaml:"model"`
	Texture string    `yaml:"texture,omitempty"`
	UV      []float32 `yaml:"uv,omitempty"`
}

// ReadScene lê um arquivo de cena. Arquivos terminados em .zst são descomprimidos.
func ReadScene(path string) (*SceneFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir cena: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("falha ao iniciar zstd: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler cena %s: %w", path, err)
	}

	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("cena %s: %w", path, err)
	}
	if scene.Atlas != "" && !filepath.IsAbs(scene.Atlas) {
		scene.Atlas = filepath.Join(filepath.Dir(path), scene.Atlas)
	}
	return scene, nil
}

// ParseScene interpreta o YAML de uma cena.
func ParseScene(data []byte) (*SceneFile, error) {
	var scene SceneFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scene); err != nil && err != io.EOF {
		return nil, fmt.Errorf("falha ao parsear cena: %w", err)
	}
	return &scene, nil
}

// CompressScene grava os dados comprimidos com zstd (para gerar arquivos .yaml.zst).
func CompressScene(w io.Writer, data []byte) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Populate converte a cena em chunks e os grava no repositório.
// Nomes de textura são resolvidos pelo atlas; sem atlas apenas UVs literais são aceitos.
func (s *SceneFile) Populate(store *Store, atl *atlas.Atlas) error {
	for ci, sc := range s.Chunks {
		origin, err := vec3(sc.Pos)
		if err != nil {
			return fmt.Errorf("chunk %d: pos: %w", ci, err)
		}
		pos := util.ChunkPos(origin)
		model := NewChunkModel()

		for fi, fill := range sc.Fill {
			block, err := resolveBlock(fill.Model, fill.Texture, fill.UV, atl)
			if err != nil {
				return fmt.Errorf("chunk %d: fill %d: %w", ci, fi, err)
			}
			from, err := vec3(fill.From)
			if err != nil {
				return fmt.Errorf("chunk %d: fill %d: from: %w", ci, fi, err)
			}
			to, err := vec3(fill.To)
			if err != nil {
				return fmt.Errorf("chunk %d: fill %d: to: %w", ci, fi, err)
			}
			if !util.InChunk(from.X, from.Y, from.Z) || !util.InChunk(to.X, to.Y, to.Z) {
				return fmt.Errorf("chunk %d: fill %d: posição local fora do chunk: %v-%v", ci, fi, fill.From, fill.To)
			}
			model.Fill(from, to, block)
		}

		for bi, b := range sc.Blocks {
			block, err := resolveBlock(b.Model, b.Texture, b.UV, atl)
			if err != nil {
				return fmt.Errorf("chunk %d: block %d: %w", ci, bi, err)
			}
			at, err := vec3(b.At)
			if err != nil {
				return fmt.Errorf("chunk %d: block %d: at: %w", ci, bi, err)
			}
			if !util.InChunk(at.X, at.Y, at.Z) {
				return fmt.Errorf("chunk %d: block %d: posição local fora do chunk: %v", ci, bi, b.At)
			}
			model.Set(at.X, at.Y, at.Z, block)
		}

		store.Put(pos, model)
	}
	return nil
}

// LoadScene lê a cena e devolve um repositório populado.
func LoadScene(path string, atl *atlas.Atlas) (*Store, error) {
	scene, err := ReadScene(path)
	if err != nil {
		return nil, err
	}
	store := NewStore()
	if err := scene.Populate(store, atl); err != nil {
		return nil, fmt.Errorf("cena %s: %w", path, err)
	}
	log.Printf("[Scene] %d chunks carregados de %s", store.Len(), path)
	return store, nil
}

func resolveBlock(model, texture string, uv []float32, atl *atlas.Atlas) (BlockModel, error) {
	kind, err := ParseKind(model)
	if err != nil {
		return Empty, err
	}

	tex := atlas.FullTexture
	switch {
	case texture != "" && len(uv) > 0:
		return Empty, fmt.Errorf("texture e uv são exclusivos")
	case texture != "":
		if atl == nil {
			return Empty, fmt.Errorf("textura %q requer um atlas", texture)
		}
		region, ok := atl.Region(texture)
		if !ok {
			return Empty, fmt.Errorf("textura %q não existe no atlas", texture)
		}
		tex = region
	case len(uv) > 0:
		if len(uv) != 4 {
			return Empty, fmt.Errorf("uv precisa de 4 valores, recebeu %d", len(uv))
		}
		tex = atlas.NewUvTexture(uv[0], uv[1], uv[2], uv[3])
	}
	return NewBlock(kind, tex), nil
}

func vec3(v []int) (util.BlockPos, error) {
	if len(v) != 3 {
		return util.BlockPos{}, fmt.Errorf("esperados 3 valores, recebeu %d", len(v))
	}
	return util.NewBlockPos(v[0], v[1], v[2]), nil
}
