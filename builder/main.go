package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	title   = color.New(color.FgCyan, color.Bold)
	step    = color.New(color.FgYellow)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	title.Println("╔══════════════════════════════════════╗")
	title.Println("║        VoxelMesh Native Builder      ║")
	title.Println("╚══════════════════════════════════════╝")

	start := time.Now()
	exe := ""
	if runtime.GOOS == "windows" {
		exe = ".exe"
	}

	// 1. Configurar Ambiente
	setupEnvironment()

	// 2. Testes dos pacotes puros (sem CGO)
	if err := runTests(); err != nil {
		fatal(err)
	}

	// 3. Compilar Visualizador
	ldflags := "-s -w"
	if runtime.GOOS == "windows" {
		ldflags = "-extldflags=-static -s -w -H=windowsgui"
	}
	if err := buildComponent("VISUALIZADOR (CGO + raylib)", "cliente", "bin/viewer"+exe, true, ldflags); err != nil {
		fatal(err)
	}

	// 4. Compilar Exporter
	if err := buildComponent("EXPORTER (Pure Go)", "exporter", "bin/exporter"+exe, false, "-s -w"); err != nil {
		fatal(err)
	}

	title.Printf("\nBuild finalizada com sucesso em %v!\n", time.Since(start).Round(time.Second))
	step.Println("Dica: bin/exporter -scene assets/scene.yaml -out cena")
}

func setupEnvironment() {
	step.Println("\n[0/3] Configurando ambiente de compilação...")

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
}

func runTests() error {
	step.Println("\n[+] Rodando testes...")

	cmd := exec.Command("go", "test", "./shared/...", "./exporter/...")
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("testes falharam: %w", err)
	}
	success.Println("  - Testes OK")
	return nil
}

func buildComponent(name, dir, output string, useCgo bool, ldflags string) error {
	step.Printf("\n[+] Compilando %s...\n", name)

	cgoValue := "0"
	if useCgo {
		cgoValue = "1"
	}

	args := []string{"build", "-ldflags", ldflags, "-o", output, "./" + dir}
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(), "CGO_ENABLED="+cgoValue)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %w", name, err)
	}

	success.Printf("  - %s compilado com sucesso -> %s\n", name, output)
	return nil
}

func fatal(err error) {
	failure.Printf("\n[ERRO FATAL] %v\n", err)
	os.Exit(1)
}
