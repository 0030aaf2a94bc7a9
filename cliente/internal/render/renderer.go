package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"log"
	"sync"
	"unsafe"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/meshing"
	"VoxelMesh/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer mantém os modelos de GPU de cada chunk.
type Renderer struct {
	mu     sync.RWMutex
	Models map[util.ChunkPos]*ChunkModel

	TerrainShader rl.Shader
	lightDirLoc   int32
	LightDir      mgl32.Vec3

	Atlas        *atlas.Atlas
	AtlasTexture rl.Texture2D
}

// NewRenderer cria um novo renderizador. A janela precisa estar aberta para
// carregar shader e textura do atlas.
func NewRenderer(atl *atlas.Atlas) *Renderer {
	r := &Renderer{
		Models:   make(map[util.ChunkPos]*ChunkModel),
		Atlas:    atl,
		LightDir: mgl32.Vec3{-0.4, -1, -0.3}.Normalize(),
	}

	if rl.IsWindowReady() {
		r.TerrainShader = rl.LoadShaderFromMemory(terrainVertexShader, terrainFragmentShader)

		// Locs é um ponteiro bruto (*int32) que aponta para um array em C (32 ints)
		locs := unsafe.Slice(r.TerrainShader.Locs, 32)
		locs[15] = rl.GetShaderLocation(r.TerrainShader, "texture0")   // SHADER_LOC_MAP_DIFFUSE
		locs[12] = rl.GetShaderLocation(r.TerrainShader, "colDiffuse") // SHADER_LOC_COLOR_DIFFUSE
		r.lightDirLoc = rl.GetShaderLocation(r.TerrainShader, "lightDir")

		r.loadAtlasTexture()
	}

	log.Printf("[Renderer] NewRenderer() finalizado. Atlas carregado=%v", r.AtlasTexture.ID != 0)
	return r
}

func (r *Renderer) loadAtlasTexture() {
	if r.Atlas == nil || r.Atlas.Image == "" {
		log.Printf("[Renderer] Sem imagem de atlas, usando textura padrão")
		return
	}
	tex := rl.LoadTexture(r.Atlas.Image)
	if tex.ID == 0 {
		log.Printf("[Renderer] FALHA ao carregar textura: %s", r.Atlas.Image)
		return
	}
	// Atlas de pixel art: nearest evita vazamento entre tiles vizinhos
	rl.SetTextureFilter(tex, rl.FilterPoint)
	rl.SetTextureWrap(tex, rl.WrapClamp)
	r.AtlasTexture = tex
	log.Printf("[Renderer] Textura carregada: %s (%dx%d)", r.Atlas.Image, tex.Width, tex.Height)
}

// GetModelVersion retorna a versão do modelo carregado para o chunk, ou -1.
func (r *Renderer) GetModelVersion(pos util.ChunkPos) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cm, ok := r.Models[pos]; ok {
		return cm.MTime
	}
	return -1
}

// UploadResult converte um resultado de meshing em modelos Raylib na GPU.
// Um resultado sem malhas remove o chunk.
func (r *Renderer) UploadResult(res meshing.Result) {
	if !rl.IsWindowReady() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.Models[res.Pos]; ok {
		if old.MTime > res.MTime {
			return // Resultado atrasado de uma versão anterior
		}
		old.unload()
		delete(r.Models, res.Pos)
	}

	if len(res.Meshes) == 0 {
		return
	}

	cm := &ChunkModel{Pos: res.Pos, MTime: res.MTime}
	for _, m := range res.Meshes {
		if m.VertexCount() == 0 {
			continue
		}
		mesh := r.geometryToMesh(m.Geometry)
		rl.UploadMesh(&mesh, false)
		model := rl.LoadModelFromMesh(mesh)
		if model.MaterialCount > 0 {
			materials := unsafe.Slice(model.Materials, model.MaterialCount)
			if r.TerrainShader.ID != 0 {
				materials[0].Shader = r.TerrainShader
			}
			if r.AtlasTexture.ID != 0 {
				rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, r.AtlasTexture)
			}
		}
		cm.Models = append(cm.Models, model)
		cm.Vertices += m.VertexCount()
	}

	r.Models[res.Pos] = cm
}

func (r *Renderer) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(r.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(r.copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(r.copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	if len(data.Indices) > 0 {
		mesh.Indices = (*uint16)(r.copyToC(unsafe.Pointer(&data.Indices[0]), len(data.Indices)*2))
	}
	return mesh
}

// copyToC copia dados Go para memória C; UnloadModel libera com free().
func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// Draw renderiza todos os chunks carregados.
func (r *Renderer) Draw() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.TerrainShader.ID != 0 {
		rl.SetShaderValue(r.TerrainShader, r.lightDirLoc, r.LightDir[:], rl.ShaderUniformVec3)
	}

	for _, cm := range r.Models {
		for _, m := range cm.Models {
			if m.MeshCount > 0 {
				rl.DrawModel(m, rl.Vector3{}, 1.0, rl.White)
			}
		}
	}
}

// Stats retorna chunks, modelos e vértices carregados na GPU.
func (r *Renderer) Stats() (chunks, models, vertices int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cm := range r.Models {
		models += len(cm.Models)
		vertices += cm.Vertices
	}
	return len(r.Models), models, vertices
}

// Unload libera todos os modelos e recursos de GPU.
func (r *Renderer) Unload() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cm := range r.Models {
		cm.unload()
	}
	r.Models = make(map[util.ChunkPos]*ChunkModel)

	if r.AtlasTexture.ID != 0 {
		rl.UnloadTexture(r.AtlasTexture)
		r.AtlasTexture = rl.Texture2D{}
	}
	if r.TerrainShader.ID != 0 {
		rl.UnloadShader(r.TerrainShader)
		r.TerrainShader = rl.Shader{}
	}
}
