package app

import (
	"fmt"

	"VoxelMesh/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	a.drawScene()
	a.drawHUD()

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	// Grid de referência (1 célula = 1 chunk)
	if a.Config.ShowGrid {
		rl.DrawGrid(32, util.ChunkSize)
	}

	a.renderer.Draw()

	rl.EndMode3D()
}

type hudLine struct {
	text  string
	size  int32
	color rl.Color
}

// drawHUD desenha o painel de debug no canto superior direito.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	fps := rl.GetFPS()
	fpsColor := rl.Green
	switch {
	case fps < 30:
		fpsColor = rl.Red
	case fps < 50:
		fpsColor = rl.Yellow
	}

	chunks, models, vertices := a.renderer.Stats()
	look := a.Cam.CurrentLookAt
	lines := []hudLine{
		{fmt.Sprintf("FPS: %d", fps), 20, fpsColor},
		{"MESHING", 12, rl.Gray},
		{fmt.Sprintf("Chunks na GPU: %d / %d", chunks, a.store.Len()), 16, rl.White},
		{fmt.Sprintf("Malhas: %d  Vértices: %d", models, vertices), 14, rl.LightGray},
		{fmt.Sprintf("Fila: %d  Enviados: %d/%d", a.mesher.Pending(), a.uploaded, a.enqueued), 14, rl.LightGray},
		{"CÂMERA", 12, rl.Gray},
		{fmt.Sprintf("Alvo: (%.1f, %.1f, %.1f)  Zoom: %.0f", look.X(), look.Y(), look.Z(), a.Cam.CurrentZoom), 14, rl.White},
		{"R: re-mesh  G: grid  F: enquadrar  F3: HUD", 12, rl.Gray},
	}
	if a.statusLine != "" {
		lines = append(lines, hudLine{a.statusLine, 12, rl.Red})
	}

	const pad = int32(10)
	width := int32(340)
	height := pad
	for _, l := range lines {
		height += l.size + 6
	}
	height += pad

	x := int32(rl.GetScreenWidth()) - width - pad
	y := pad
	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	cy := y + pad
	for _, l := range lines {
		rl.DrawText(l.text, x+pad, cy, l.size, l.color)
		cy += l.size + 6
	}
}
