package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/config"
	"VoxelMesh/shared/mapdata"
	"VoxelMesh/shared/meshing"
	"VoxelMesh/shared/objexport"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	scenePath := flag.String("scene", cfg.ScenePath, "Arquivo de cena (.yaml ou .yaml.zst)")
	atlasPath := flag.String("atlas", "", "Descritor do atlas (padrão: o da cena ou do config)")
	outBase := flag.String("out", cfg.OutputPath, "Base dos arquivos de saída (<out>.obj e <out>.mtl)")
	keepEmpty := flag.Bool("keep-empty", false, "Não filtrar chunks vazios (o build para no primeiro vazio)")
	workers := flag.Int("workers", 0, "Gerar cada chunk em N workers e juntar os resultados (0 = sequencial)")
	compress := flag.Bool("compress", false, "Gravar também uma cópia zstd da cena em <out>.yaml.zst")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	start := time.Now()

	scene, err := mapdata.ReadScene(*scenePath)
	if err != nil {
		log.Fatalf("[Exporter] %v", err)
	}

	var atl *atlas.Atlas
	path := *atlasPath
	if path == "" {
		path = scene.Atlas
	}
	if path == "" {
		path = cfg.AtlasPath
	}
	if path != "" {
		if atl, err = atlas.Load(path); err != nil {
			if *atlasPath != "" || scene.Atlas != "" {
				log.Fatalf("[Exporter] %v", err)
			}
			// Atlas padrão do config é opcional
			log.Printf("[Exporter] AVISO: sem atlas: %v", err)
			atl = nil
		}
	}

	store := mapdata.NewStore()
	if err := scene.Populate(store, atl); err != nil {
		log.Fatalf("[Exporter] cena %s: %v", *scenePath, err)
	}

	meshes := buildMeshes(store, atl, *workers, *keepEmpty)

	if err := objexport.Export(*outBase, meshes, atl); err != nil {
		log.Fatalf("[Exporter] %v", err)
	}
	if *compress {
		dst := *outBase + ".yaml.zst"
		if err := compressScene(*scenePath, dst); err != nil {
			log.Fatalf("[Exporter] %v", err)
		}
		log.Printf("[Exporter] cena comprimida em %s", dst)
	}

	printSummary(store, meshes, *outBase, time.Since(start))
}

func printSummary(store *mapdata.Store, meshes []meshing.Mesh, out string, elapsed time.Duration) {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	vertices, triangles := 0, 0
	for _, m := range meshes {
		vertices += m.VertexCount()
		triangles += m.Geometry.TriangleCount()
	}

	header.Println("VoxelMesh Exporter")
	label.Print("  Chunks:     ")
	fmt.Println(store.Len())
	label.Print("  Malhas:     ")
	fmt.Println(len(meshes))
	label.Print("  Vértices:   ")
	fmt.Println(vertices)
	label.Print("  Triângulos: ")
	fmt.Println(triangles)

	if len(meshes) == 0 {
		color.Yellow("Nenhuma geometria gerada (cena vazia ou primeiro chunk vazio com -keep-empty)")
	}
	color.Green("%s.obj e %s.mtl gravados em %v", out, out, elapsed.Round(time.Millisecond))
}
