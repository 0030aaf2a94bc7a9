package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do VoxelMesh.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Meshing
	MesherThreads int `json:"mesher_threads"`

	// Arquivos
	AtlasPath  string `json:"atlas_path"`
	ScenePath  string `json:"scene_path"`
	OutputPath string `json:"output_path"` // Base dos arquivos .obj/.mtl do exporter
	LogFile    string `json:"log_file"`    // Vazio = stderr

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "VoxelMesh",
		Fullscreen:   false,
		TargetFPS:    60,

		MesherThreads: 4,

		AtlasPath:  "assets/atlas.yaml",
		ScenePath:  "assets/scene.yaml",
		OutputPath: "scene",
		LogFile:    "debug_vm.log",

		ShowDebugInfo: true,
		ShowGrid:      true,
	}
}

// Path retorna o caminho do arquivo de configuração (ao lado do executável).
func Path() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do arquivo padrão.
func Load() *Config {
	return LoadFrom(Path())
}

// LoadFrom carrega as configurações de um arquivo JSON.
// Se o arquivo não existir ou for inválido, retorna as configurações padrão.
func LoadFrom(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	if cfg.MesherThreads < 1 {
		cfg.MesherThreads = 1
	}
	return cfg
}

// Save salva as configurações no arquivo padrão.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo salva as configurações em um arquivo JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
