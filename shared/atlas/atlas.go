package atlas

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// UvTexture é uma região retangular do atlas em coordenadas UV normalizadas.
// V cresce para baixo, como no espaço da imagem: (U0, V0) é o canto superior esquerdo.
type UvTexture struct {
	U0, V0 float32
	U1, V1 float32
}

// NewUvTexture cria uma região a partir dos cantos superior esquerdo e inferior direito.
func NewUvTexture(u0, v0, u1, v1 float32) UvTexture {
	return UvTexture{U0: u0, V0: v0, U1: u1, V1: v1}
}

// FullTexture cobre a textura inteira (usada quando não há atlas).
var FullTexture = UvTexture{U0: 0, V0: 0, U1: 1, V1: 1}

func (t UvTexture) LowLeft() mgl32.Vec2  { return mgl32.Vec2{t.U0, t.V1} }
func (t UvTexture) LowRight() mgl32.Vec2 { return mgl32.Vec2{t.U1, t.V1} }
func (t UvTexture) UpLeft() mgl32.Vec2   { return mgl32.Vec2{t.U0, t.V0} }
func (t UvTexture) UpRight() mgl32.Vec2  { return mgl32.Vec2{t.U1, t.V0} }

// String retorna a representação da região.
func (t UvTexture) String() string {
	return fmt.Sprintf("uv(%.4f, %.4f)-(%.4f, %.4f)", t.U0, t.V0, t.U1, t.V1)
}

// Descriptor é o esquema YAML de um atlas (ex: assets/atlas.yaml).
type Descriptor struct {
	Image    string         `yaml:"image"`
	TileSize int            `yaml:"tile_size"`
	Columns  int            `yaml:"columns"`
	Rows     int            `yaml:"rows"`
	Tiles    map[string]int `yaml:"tiles"`
}

// Atlas é a folha de texturas compartilhada por todas as malhas geradas.
type Atlas struct {
	Image    string // Caminho da imagem, relativo ao diretório do descritor
	TileSize int
	Columns  int
	Rows     int

	tiles map[string]int
	names map[int]string
}

// New cria um atlas em grade sem nomes de tiles.
func New(image string, tileSize, columns, rows int) (*Atlas, error) {
	return fromDescriptor(Descriptor{Image: image, TileSize: tileSize, Columns: columns, Rows: rows})
}

// Load lê um descritor YAML do disco. O caminho da imagem é resolvido
// relativo ao diretório do arquivo.
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler atlas %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", path, err)
	}
	if a.Image != "" && !filepath.IsAbs(a.Image) {
		a.Image = filepath.Join(filepath.Dir(path), a.Image)
	}
	return a, nil
}

// Parse interpreta um descritor YAML.
func Parse(data []byte) (*Atlas, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("falha ao parsear descritor: %w", err)
	}
	return fromDescriptor(d)
}

func fromDescriptor(d Descriptor) (*Atlas, error) {
	if d.Columns <= 0 || d.Rows <= 0 {
		return nil, fmt.Errorf("grade inválida %dx%d", d.Columns, d.Rows)
	}
	if d.TileSize < 0 {
		return nil, fmt.Errorf("tile_size negativo: %d", d.TileSize)
	}

	a := &Atlas{
		Image:    d.Image,
		TileSize: d.TileSize,
		Columns:  d.Columns,
		Rows:     d.Rows,
		tiles:    make(map[string]int, len(d.Tiles)),
		names:    make(map[int]string, len(d.Tiles)),
	}
	for name, idx := range d.Tiles {
		if idx < 0 || idx >= a.Len() {
			return nil, fmt.Errorf("tile %q fora da grade: %d", name, idx)
		}
		a.tiles[name] = idx
		// Vários nomes podem apontar para o mesmo tile; o menor nome vence no reverso
		if prev, ok := a.names[idx]; !ok || name < prev {
			a.names[idx] = name
		}
	}
	return a, nil
}

// Len retorna o número de células da grade.
func (a *Atlas) Len() int {
	return a.Columns * a.Rows
}

// Size retorna as dimensões em pixels da imagem esperada.
func (a *Atlas) Size() (width, height int) {
	return a.Columns * a.TileSize, a.Rows * a.TileSize
}

// RegionAt retorna a região UV da célula i (ordem linha a linha).
func (a *Atlas) RegionAt(i int) (UvTexture, bool) {
	if i < 0 || i >= a.Len() {
		return UvTexture{}, false
	}
	col := i % a.Columns
	row := i / a.Columns
	cw := 1 / float32(a.Columns)
	rh := 1 / float32(a.Rows)
	return UvTexture{
		U0: float32(col) * cw,
		V0: float32(row) * rh,
		U1: float32(col+1) * cw,
		V1: float32(row+1) * rh,
	}, true
}

// Region retorna a região UV de um tile nomeado.
func (a *Atlas) Region(name string) (UvTexture, bool) {
	idx, ok := a.tiles[name]
	if !ok {
		return UvTexture{}, false
	}
	return a.RegionAt(idx)
}

// NameOf faz a busca reversa de uma região para o nome do tile.
func (a *Atlas) NameOf(t UvTexture) (string, bool) {
	if a == nil {
		return "", false
	}
	for idx, name := range a.names {
		if r, _ := a.RegionAt(idx); r == t {
			return name, true
		}
	}
	return "", false
}

// Names retorna os nomes de tiles em ordem alfabética.
func (a *Atlas) Names() []string {
	out := make([]string, 0, len(a.tiles))
	for name := range a.tiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
