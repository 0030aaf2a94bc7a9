package app

import (
	"log"

	"VoxelMesh/cliente/internal/camera"
	"VoxelMesh/cliente/internal/render"
	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/config"
	"VoxelMesh/shared/mapdata"
	"VoxelMesh/shared/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App é o visualizador de cenas do VoxelMesh.
type App struct {
	Config *config.Config

	// Controlador de Câmera
	Cam *camera.CameraController

	// Dados da cena e meshing
	atlas       *atlas.Atlas
	store       *mapdata.Store
	mesher      *meshing.ChunkMesher
	resultStore *meshing.ResultStore
	renderer    *render.Renderer

	// Informações de debug
	frameCount int
	enqueued   int
	uploaded   int
	statusLine string
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		store:  mapdata.NewStore(),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	if err := a.loadScene(); err != nil {
		log.Printf("[App] Cena não carregada: %v", err)
		a.statusLine = err.Error()
	}

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)

	log.Println("[App] Janela inicializada com sucesso")
	log.Printf("[App] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.Cam = camera.New()
	a.frameScene()

	a.renderer = render.NewRenderer(a.atlas)
	a.resultStore = meshing.NewResultStore()

	log.Printf("[App] Iniciando Mesher com %d workers", a.Config.MesherThreads)
	a.mesher = meshing.NewChunkMesher(a.Config.MesherThreads, a.atlas, a.resultStore)
	a.enqueueAll()

	// Loop principal
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++
	a.updateCamera()
	a.updateInput()
	a.processMesherResults()
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.mesher.Stop()
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
