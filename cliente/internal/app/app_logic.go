package app

import (
	"fmt"
	"log"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/mapdata"
	"VoxelMesh/shared/meshing"
	"VoxelMesh/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// loadScene lê a cena e o atlas. O atlas declarado na cena tem prioridade.
func (a *App) loadScene() error {
	scene, err := mapdata.ReadScene(a.Config.ScenePath)
	if err != nil {
		return err
	}

	atlasPath := a.Config.AtlasPath
	if scene.Atlas != "" {
		atlasPath = scene.Atlas
	}
	if atlasPath != "" {
		atl, err := atlas.Load(atlasPath)
		if err != nil {
			log.Printf("[App] AVISO: atlas não carregado: %v", err)
		} else {
			a.atlas = atl
			log.Printf("[App] Atlas %s: %d tiles nomeados", atlasPath, len(atl.Names()))
		}
	}

	if err := scene.Populate(a.store, a.atlas); err != nil {
		return fmt.Errorf("cena %s: %w", a.Config.ScenePath, err)
	}
	log.Printf("[Scene] %d chunks carregados de %s", a.store.Len(), a.Config.ScenePath)
	return nil
}

// frameScene aponta a câmera para o centro dos chunks carregados.
func (a *App) frameScene() {
	entries := a.store.Entries()
	if len(entries) == 0 {
		return
	}

	lo := entries[0].Pos.BlockPos().Vec3()
	hi := lo
	for _, c := range entries {
		p := c.Pos.BlockPos().Vec3()
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	hi = hi.Add(mgl32.Vec3{util.ChunkSize, util.ChunkSize, util.ChunkSize})
	a.Cam.Frame(lo, hi)
}

// enqueueAll envia todos os chunks não vazios para o mesher.
// Chunks vazios nunca entram no build, que pararia no primeiro deles.
func (a *App) enqueueAll() {
	count := 0
	for _, c := range a.store.Entries() {
		if c.Model == nil || c.Model.IsEmpty() {
			continue
		}
		if a.renderer.GetModelVersion(c.Pos) == c.MTime {
			continue
		}
		if a.mesher.Enqueue(meshing.Request{Pos: c.Pos, Model: c.Model, MTime: c.MTime}) {
			count++
		}
	}
	a.enqueued += count
	log.Printf("[Meshing] %d chunks enfileirados", count)
}

// remesh força um novo meshing de todos os chunks.
func (a *App) remesh() {
	for _, c := range a.store.Entries() {
		a.store.Touch(c.Pos)
	}
	a.resultStore.Clear()
	a.enqueueAll()
}

// processMesherResults consome resultados da fila e envia para a GPU.
func (a *App) processMesherResults() {
	// Máximo de 4ms de upload por frame para evitar stutters
	timeBudget := 0.004
	startTime := rl.GetTime()

	for rl.GetTime()-startTime <= timeBudget {
		select {
		case res := <-a.mesher.Results():
			log.Printf("[Renderer] Upload de Geometria: %s (%d malhas, %d vértices)",
				res.Pos, len(res.Meshes), res.VertexCount())
			a.renderer.UploadResult(res)
			a.uploaded++
		default:
			return
		}
	}
}
