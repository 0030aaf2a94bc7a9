package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()
	a.Cam.HandleInput(dt)
	a.Cam.Update(dt)
}

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}
	if rl.IsKeyPressed(rl.KeyR) {
		log.Println("[App] Re-meshing de todos os chunks")
		a.remesh()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.frameScene()
	}
}
