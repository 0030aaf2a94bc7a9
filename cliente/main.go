package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"VoxelMesh/cliente/internal/app"
	"VoxelMesh/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	scene := flag.String("scene", "", "Arquivo de cena (.yaml ou .yaml.zst)")
	atlasPath := flag.String("atlas", "", "Descritor do atlas")
	threads := flag.Int("threads", 0, "Workers de meshing")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Carregar configurações
	cfg := config.Load()

	// Configurar Log em Arquivo
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
			log.Println("--- INICIANDO VOXELMESH ---")
		}
	}

	log.SetFlags(log.Ltime | log.Lshortfile)

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *scene != "" {
		cfg.ScenePath = *scene
	}
	if *atlasPath != "" {
		cfg.AtlasPath = *atlasPath
	}
	if *threads > 0 {
		cfg.MesherThreads = *threads
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	application := app.New(cfg)
	application.Run()
}
